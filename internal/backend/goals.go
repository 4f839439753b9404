package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/model"
)

func (c *Client) ListGoals(ctx context.Context) ([]*model.Goal, error) {
	var resp []*goalDTO
	if err := c.do(ctx, "ListGoals", http.MethodGet, "/api/goals", nil, &resp); err != nil {
		return nil, err
	}

	return mapGoals(resp)
}

func (c *Client) GetGoal(ctx context.Context, id int64) (*model.Goal, error) {
	resp := &goalDTO{}
	if err := c.do(ctx, "GetGoal", http.MethodGet, fmt.Sprintf("/api/goals/%d", id), nil, resp); err != nil {
		return nil, err
	}

	return resp.toModel()
}

func (c *Client) CreateGoal(ctx context.Context, goal *model.GoalCreate) (*model.Goal, error) {
	req := &goalCreateReq{Title: goal.Title, AnnualIncome: goal.AnnualIncome}

	resp := &goalDTO{}
	if err := c.do(ctx, "CreateGoal", http.MethodPost, "/api/goals", req, resp); err != nil {
		return nil, err
	}

	return resp.toModel()
}

func (c *Client) AchieveGoal(ctx context.Context, id int64) error {
	return c.do(ctx, "AchieveGoal", http.MethodPost, fmt.Sprintf("/api/goals/%d/achieve", id), nil, nil)
}

func (c *Client) ListTasks(ctx context.Context, goalID int64) ([]*model.Task, error) {
	var resp []*taskDTO
	if err := c.do(ctx, "ListTasks", http.MethodGet, fmt.Sprintf("/api/goals/%d/tasks", goalID), nil, &resp); err != nil {
		return nil, err
	}

	return mapTasks(resp)
}

func (c *Client) AddTask(ctx context.Context, goalID int64, title string) (*model.Task, error) {
	resp := &taskDTO{}
	if err := c.do(ctx, "AddTask", http.MethodPost, fmt.Sprintf("/api/goals/%d/tasks", goalID), &titleReq{Title: title}, resp); err != nil {
		return nil, err
	}

	return resp.toModel()
}

func (c *Client) DeleteTask(ctx context.Context, goalID, taskID int64) error {
	return c.do(ctx, "DeleteTask", http.MethodDelete, fmt.Sprintf("/api/goals/%d/tasks/%d", goalID, taskID), nil, nil)
}

// CompleteTask marks a task done and returns the reward it earned.
func (c *Client) CompleteTask(ctx context.Context, taskID int64) (*model.Reward, error) {
	resp := &rewardDTO{}
	if err := c.do(ctx, "CompleteTask", http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", taskID), nil, resp); err != nil {
		return nil, err
	}

	return &model.Reward{Amount: resp.RewardAmount, Currency: resp.Currency}, nil
}
