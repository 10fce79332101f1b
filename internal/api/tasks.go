package api

import (
	"context"
	"fmt"

	"rota-cli/internal/model"
)

// MinimumNames is the smallest roster the generator accepts. Checked
// locally so an undersized request is never sent; the service re-checks.
const MinimumNames = 4

// ErrTooFewNames rejects generation requests below MinimumNames before any
// request is made.
type ErrTooFewNames struct {
	Requested int
}

func (e *ErrTooFewNames) Error() string {
	return fmt.Sprintf("minimum %d names required for task generation (got %d)", MinimumNames, e.Requested)
}

type generateRequest struct {
	NumberOfNames int `json:"numberOfNames"`
}

type replaceNameRequest struct {
	NewNameID int64 `json:"newNameId"`
}

func (c *Client) NormalTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.get(ctx, "/tasks/normal", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) SpecialTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.get(ctx, "/tasks/special", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GenerateTasks asks the service to build today's assignments. This is
// destructive on the service side: existing tasks for the day are cleared.
func (c *Client) GenerateTasks(ctx context.Context, numberOfNames int) error {
	if numberOfNames < MinimumNames {
		return &ErrTooFewNames{Requested: numberOfNames}
	}
	return c.post(ctx, "/tasks/generate", generateRequest{NumberOfNames: numberOfNames}, nil)
}

// ReplaceTaskName swaps the assigned name on one task for another from the
// active roster.
func (c *Client) ReplaceTaskName(ctx context.Context, taskID, newNameID int64) error {
	return c.put(ctx, fmt.Sprintf("/tasks/%d", taskID), replaceNameRequest{NewNameID: newNameID}, nil)
}

func (c *Client) ClearTasks(ctx context.Context) error {
	return c.delete(ctx, "/tasks")
}
