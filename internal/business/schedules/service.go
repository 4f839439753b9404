package schedules

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	schedulesKeyPrefix = "liferabbit:schedules:v1:"
	historyKeyPrefix   = "liferabbit:scheduleHistory:v1:"
)

type stateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	SaveMany(ctx context.Context, entries map[string][]byte) error
}

type userSession interface {
	UserKey() string
}

// Service owns the local schedule list and completion history of the
// logged-in user. Every operation loads the whole list, changes it and
// writes it back, one operation at a time.
type Service struct {
	mu sync.Mutex

	store        stateStore
	session      userSession
	logger       *zap.SugaredLogger
	tagsUnlocked bool
	loc          *time.Location

	now   func() time.Time
	newID func() string
	rnd   *rand.Rand
}

func NewService(store stateStore, session userSession, logger *zap.SugaredLogger, tagsUnlocked bool, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		store:        store,
		session:      session,
		logger:       logger,
		tagsUnlocked: tagsUnlocked,
		loc:          loc,
		now:          time.Now,
		newID:        uuid.NewString,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) user() (string, error) {
	key := s.session.UserKey()
	if key == "" {
		return "", model.ErrNoSession
	}

	return key, nil
}

func (s *Service) loadSchedules(ctx context.Context, user string) ([]*model.ScheduleEvent, error) {
	var list []*model.ScheduleEvent
	if err := s.load(ctx, schedulesKeyPrefix+user, &list); err != nil {
		return nil, err
	}

	res := list[:0]
	for _, ev := range list {
		if ev != nil {
			res = append(res, ev)
		}
	}

	return res, nil
}

func (s *Service) saveSchedules(ctx context.Context, user string, list []*model.ScheduleEvent) error {
	return s.save(ctx, schedulesKeyPrefix+user, nonNilSchedules(list))
}

func nonNilSchedules(list []*model.ScheduleEvent) []*model.ScheduleEvent {
	if list == nil {
		return []*model.ScheduleEvent{}
	}
	return list
}

func (s *Service) loadHistory(ctx context.Context, user string) ([]*model.ScheduleHistoryItem, error) {
	var list []*model.ScheduleHistoryItem
	if err := s.load(ctx, historyKeyPrefix+user, &list); err != nil {
		return nil, err
	}

	res := list[:0]
	for _, h := range list {
		if h != nil {
			res = append(res, h)
		}
	}

	return res, nil
}

func (s *Service) saveHistory(ctx context.Context, user string, list []*model.ScheduleHistoryItem) error {
	return s.save(ctx, historyKeyPrefix+user, nonNilHistory(list))
}

func nonNilHistory(list []*model.ScheduleHistoryItem) []*model.ScheduleHistoryItem {
	if list == nil {
		return []*model.ScheduleHistoryItem{}
	}
	return list
}

// load decodes the blob under key into dst. A missing or unreadable blob
// leaves dst empty; only store failures are returned.
func (s *Service) load(ctx context.Context, key string, dst interface{}) error {
	data, err := s.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil
		}
		return fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warnw("discarding unreadable stored list", "key", key, "err", err)
		return nil
	}

	return nil
}

func (s *Service) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if err := s.store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	return nil
}

// saveAll marshals every value first and then writes them in one store
// call, so either all keys change or none do.
func (s *Service) saveAll(ctx context.Context, values map[string]interface{}) error {
	entries := make(map[string][]byte, len(values))
	for key, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		entries[key] = data
	}

	if err := s.store.SaveMany(ctx, entries); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}

func findIndex(list []*model.ScheduleEvent, id string) int {
	for i, ev := range list {
		if ev.ID == id {
			return i
		}
	}

	return -1
}
