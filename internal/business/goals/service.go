package goals

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/reward"
	"go.uber.org/zap"
)

type backendClient interface {
	ListGoals(ctx context.Context) ([]*model.Goal, error)
	GetGoal(ctx context.Context, id int64) (*model.Goal, error)
	CreateGoal(ctx context.Context, goal *model.GoalCreate) (*model.Goal, error)
	AchieveGoal(ctx context.Context, id int64) error
	ListTasks(ctx context.Context, goalID int64) ([]*model.Task, error)
	AddTask(ctx context.Context, goalID int64, title string) (*model.Task, error)
	DeleteTask(ctx context.Context, goalID, taskID int64) error
	CompleteTask(ctx context.Context, taskID int64) (*model.Reward, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	CreateTag(ctx context.Context, name, color string) (*model.Tag, error)
	SetTaskTags(ctx context.Context, taskID int64, tagIDs []int64) error
	Calendar(ctx context.Context, from, to calendar.Date) ([]*model.CalendarItem, error)
	UpsertSchedule(ctx context.Context, s *model.ScheduleUpsert) error
	CompleteOccurrence(ctx context.Context, taskID int64, date calendar.Date) error
	History(ctx context.Context, from, to calendar.Date) ([]*model.HistoryEntry, error)
}

type userSession interface {
	UserKey() string
}

// Service runs the goal, task, tag and calendar flows against the backend.
// Every mutation is followed by a reload of what it touched; nothing is
// patched locally.
type Service struct {
	client backendClient
	users  userSession
	logger *zap.SugaredLogger
	earned reward.Tracker
	rndMu  sync.Mutex
	rnd    *rand.Rand
}

func NewService(client backendClient, users userSession, logger *zap.SugaredLogger) *Service {
	return &Service{
		client: client,
		users:  users,
		logger: logger,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) celebrate(amount float64) *reward.Celebration {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()

	return reward.NewCelebration(amount, s.rnd)
}
