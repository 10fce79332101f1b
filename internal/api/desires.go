package api

import (
	"context"
	"fmt"

	"rota-cli/internal/model"
)

type desireRequest struct {
	Description string               `json:"description"`
	Category    model.DesireCategory `json:"category"`
}

func (c *Client) ShortTermDesires(ctx context.Context) ([]model.Desire, error) {
	var desires []model.Desire
	if err := c.get(ctx, "/desires/short-term", &desires); err != nil {
		return nil, err
	}
	return desires, nil
}

func (c *Client) LongTermDesires(ctx context.Context) ([]model.Desire, error) {
	var desires []model.Desire
	if err := c.get(ctx, "/desires/long-term", &desires); err != nil {
		return nil, err
	}
	return desires, nil
}

func (c *Client) CreateDesire(ctx context.Context, description string, category model.DesireCategory) error {
	return c.post(ctx, "/desires", desireRequest{Description: description, Category: category}, nil)
}

func (c *Client) UpdateDesire(ctx context.Context, id int64, description string, category model.DesireCategory) error {
	return c.put(ctx, fmt.Sprintf("/desires/%d", id), desireRequest{Description: description, Category: category}, nil)
}

func (c *Client) DeleteDesire(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/desires/%d", id))
}
