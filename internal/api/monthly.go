package api

import (
	"context"

	"rota-cli/internal/model"
)

type monthlyDesireRequest struct {
	Message string `json:"message"`
}

// CurrentMonthlyDesire returns this month's message, or nil when none has
// been set yet (the service answers success with null data).
func (c *Client) CurrentMonthlyDesire(ctx context.Context) (*model.MonthlyDesire, error) {
	var md *model.MonthlyDesire
	if err := c.get(ctx, "/monthly-desires/current", &md); err != nil {
		return nil, err
	}
	return md, nil
}

// SetMonthlyDesire replaces the month's message wholesale.
func (c *Client) SetMonthlyDesire(ctx context.Context, message string) error {
	return c.post(ctx, "/monthly-desires", monthlyDesireRequest{Message: message}, nil)
}
