package api

import (
	"context"
	"fmt"

	"rota-cli/internal/model"
)

type ideaRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *Client) Ideas(ctx context.Context) ([]model.Idea, error) {
	var ideas []model.Idea
	if err := c.get(ctx, "/ideas", &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// LatestIdeas returns the most recent submissions (the admin dashboard
// strip); the full collection comes from Ideas.
func (c *Client) LatestIdeas(ctx context.Context) ([]model.Idea, error) {
	var ideas []model.Idea
	if err := c.get(ctx, "/ideas/latest", &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// MyIdeas returns the calling user's own submissions, including any admin
// response.
func (c *Client) MyIdeas(ctx context.Context) ([]model.Idea, error) {
	var ideas []model.Idea
	if err := c.get(ctx, "/ideas/my-ideas", &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (c *Client) PendingIdeaCount(ctx context.Context) (int, error) {
	var n int
	if err := c.get(ctx, "/ideas/pending/count", &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *Client) SubmitIdea(ctx context.Context, title, content string) error {
	return c.post(ctx, "/ideas", ideaRequest{Title: title, Content: content}, nil)
}

// MarkIdeaViewed advances a PENDING idea to VIEWED. The progression is
// monotonic and enforced by the service; regressions are rejected there.
func (c *Client) MarkIdeaViewed(ctx context.Context, id int64) error {
	return c.put(ctx, fmt.Sprintf("/ideas/%d/view", id), nil, nil)
}

// RespondToIdea records the admin response and advances the idea to
// RESPONDED. The request body is the bare response string.
func (c *Client) RespondToIdea(ctx context.Context, id int64, response string) error {
	return c.put(ctx, fmt.Sprintf("/ideas/%d/respond", id), response, nil)
}

func (c *Client) DeleteIdea(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/ideas/%d", id))
}
