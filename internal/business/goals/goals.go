package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/pkg/validator"
	"github.com/SergeyKozhin/liferabbit/internal/reward"
)

type GoalList struct {
	Goals       []*model.Goal
	TotalEarned float64
	Celebration *reward.Celebration
}

type GoalDetail struct {
	Goal       *model.Goal
	Tasks      []*model.Task
	CanAchieve bool
}

// ListGoals reloads every goal. A celebration is attached when the total
// earned amount grew since the previous reload of the same user.
func (s *Service) ListGoals(ctx context.Context) (*GoalList, error) {
	goals, err := s.client.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	res := &GoalList{Goals: goals}
	for _, g := range goals {
		res.TotalEarned += g.EarnedAmount
	}

	if delta, ok := s.earned.Observe(s.users.UserKey(), res.TotalEarned); ok {
		res.Celebration = s.celebrate(delta)
	}

	return res, nil
}

func (s *Service) CreateGoal(ctx context.Context, goal *model.GoalCreate) (*GoalList, error) {
	v := validator.New()
	goal.Title = strings.TrimSpace(goal.Title)
	v.Check(goal.Title != "", "title", "must be provided")
	v.Check(goal.AnnualIncome > 0, "annualIncome", "must be positive")
	if err := v.Err(); err != nil {
		return nil, err
	}

	created, err := s.client.CreateGoal(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	s.logger.Infow("goal created", "id", created.ID)

	return s.ListGoals(ctx)
}

func (s *Service) GoalDetail(ctx context.Context, goalID int64) (*GoalDetail, error) {
	goal, err := s.client.GetGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("get goal %d: %w", goalID, err)
	}

	tasks, err := s.client.ListTasks(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("list tasks of goal %d: %w", goalID, err)
	}

	return &GoalDetail{
		Goal:       goal,
		Tasks:      tasks,
		CanAchieve: canAchieve(goal),
	}, nil
}

// canAchieve holds once every task of a non-empty goal is completed.
func canAchieve(g *model.Goal) bool {
	return g.TaskCount > 0 && g.CompletedTaskCount == g.TaskCount
}

func (s *Service) AchieveGoal(ctx context.Context, goalID int64) (*GoalDetail, error) {
	if err := s.client.AchieveGoal(ctx, goalID); err != nil {
		return nil, fmt.Errorf("achieve goal %d: %w", goalID, err)
	}

	return s.GoalDetail(ctx, goalID)
}
