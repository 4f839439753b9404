package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/pkg/validator"
	"github.com/SergeyKozhin/liferabbit/internal/reward"
)

type TaskCompletion struct {
	Reward      *model.Reward
	Celebration *reward.Celebration
	Detail      *GoalDetail
}

func (s *Service) ListTasks(ctx context.Context, goalID int64) ([]*model.Task, error) {
	tasks, err := s.client.ListTasks(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("list tasks of goal %d: %w", goalID, err)
	}

	return tasks, nil
}

func (s *Service) AddTask(ctx context.Context, goalID int64, title string) (*GoalDetail, error) {
	v := validator.New()
	title = strings.TrimSpace(title)
	v.Check(title != "", "title", "must be provided")
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.client.AddTask(ctx, goalID, title); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	return s.GoalDetail(ctx, goalID)
}

func (s *Service) DeleteTask(ctx context.Context, goalID, taskID int64) (*GoalDetail, error) {
	if err := s.client.DeleteTask(ctx, goalID, taskID); err != nil {
		return nil, fmt.Errorf("delete task %d: %w", taskID, err)
	}

	return s.GoalDetail(ctx, goalID)
}

// CompleteTask completes a task and celebrates the reward it earned.
func (s *Service) CompleteTask(ctx context.Context, goalID, taskID int64) (*TaskCompletion, error) {
	rw, err := s.client.CompleteTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("complete task %d: %w", taskID, err)
	}

	res := &TaskCompletion{Reward: rw}
	if rw.Amount > 0 {
		res.Celebration = s.celebrate(rw.Amount)
	}

	if goalID > 0 {
		if res.Detail, err = s.GoalDetail(ctx, goalID); err != nil {
			return nil, err
		}
	}

	return res, nil
}
