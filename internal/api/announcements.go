package api

import (
	"context"
	"fmt"

	"rota-cli/internal/model"
)

// CreateAnnouncementRequest is the create payload. SpecificUserID is
// required when SendTo is SPECIFIC and ignored otherwise.
type CreateAnnouncementRequest struct {
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	SendTo         model.Audience `json:"sendTo"`
	SpecificUserID *int64         `json:"specificUserId,omitempty"`
}

func (c *Client) Announcements(ctx context.Context) ([]model.Announcement, error) {
	var anns []model.Announcement
	if err := c.get(ctx, "/announcements", &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

// MyAnnouncements returns the announcements addressed to the calling user
// (broadcasts plus ones targeted at them).
func (c *Client) MyAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	var anns []model.Announcement
	if err := c.get(ctx, "/announcements/my-announcements", &anns); err != nil {
		return nil, err
	}
	return anns, nil
}

func (c *Client) ActiveAnnouncementCount(ctx context.Context) (int, error) {
	var n int
	if err := c.get(ctx, "/announcements/active/count", &n); err != nil {
		return 0, err
	}
	return n, nil
}

// CreateAnnouncement publishes an announcement. Announcements are
// immutable once created; the only later operation is delete.
func (c *Client) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) error {
	return c.post(ctx, "/announcements", req, nil)
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/announcements/%d", id))
}
