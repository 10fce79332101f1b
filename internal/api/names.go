package api

import (
	"context"
	"fmt"

	"rota-cli/internal/model"
)

type nameRequest struct {
	Name string `json:"name"`
}

func (c *Client) Names(ctx context.Context) ([]model.Name, error) {
	var names []model.Name
	if err := c.get(ctx, "/names", &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ActiveNames lists names not currently bound to a task, used when
// replacing a task's assignee.
func (c *Client) ActiveNames(ctx context.Context) ([]model.Name, error) {
	var names []model.Name
	if err := c.get(ctx, "/names/active", &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *Client) CreateName(ctx context.Context, name string) error {
	return c.post(ctx, "/names", nameRequest{Name: name}, nil)
}

func (c *Client) UpdateName(ctx context.Context, id int64, name string) error {
	return c.put(ctx, fmt.Sprintf("/names/%d", id), nameRequest{Name: name}, nil)
}

func (c *Client) DeleteName(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/names/%d", id))
}
