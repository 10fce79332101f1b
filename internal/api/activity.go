package api

import (
	"context"
	"fmt"

	"rota-cli/internal/model"
)

func (c *Client) ActivityStats(ctx context.Context) (model.ActivityStats, error) {
	var stats model.ActivityStats
	if err := c.get(ctx, "/user-activity/statistics", &stats); err != nil {
		return model.ActivityStats{}, err
	}
	return stats, nil
}

func (c *Client) TopVisitors(ctx context.Context) ([]model.UserActivity, error) {
	var visitors []model.UserActivity
	if err := c.get(ctx, "/user-activity/top-visitors", &visitors); err != nil {
		return nil, err
	}
	return visitors, nil
}

// InactiveUsers lists users with no visit in the last `days` days.
func (c *Client) InactiveUsers(ctx context.Context, days int) ([]model.UserActivity, error) {
	var users []model.UserActivity
	if err := c.get(ctx, fmt.Sprintf("/user-activity/inactive?days=%d", days), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DashboardStats fetches the admin landing-page counters.
func (c *Client) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.get(ctx, "/admin/dashboard", &stats); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}
