package schedules

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/reward"
)

// ToggleDone marks or unmarks one occurrence date. The history log follows
// the change, and a celebration is returned only when the date becomes done.
func (s *Service) ToggleDone(ctx context.Context, id string, date calendar.Date, done bool) (*model.ScheduleEvent, *reward.Celebration, error) {
	user, err := s.user()
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadSchedules(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	i := findIndex(list, id)
	if i < 0 {
		return nil, nil, model.ErrNoRecord
	}

	wasDone := calendar.IsDone(list[i], date)
	updated := calendar.ToggleDone(*list[i], date, done)
	list[i] = &updated

	history, err := s.loadHistory(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	var synced []*model.ScheduleHistoryItem
	if done {
		synced = s.appendHistory(history, &updated, date)
	} else {
		synced = removeHistory(history, id, date)
	}

	if wasDone == done {
		// Nothing changed unless the log had drifted from completedDates.
		if len(synced) != len(history) {
			if err := s.saveHistory(ctx, user, synced); err != nil {
				return nil, nil, fmt.Errorf("history: %w", err)
			}
		}
		return &updated, nil, nil
	}

	err = s.saveAll(ctx, map[string]interface{}{
		schedulesKeyPrefix + user: nonNilSchedules(list),
		historyKeyPrefix + user:   nonNilHistory(synced),
	})
	if err != nil {
		return nil, nil, err
	}

	if !done {
		toggleCount.WithLabelValues("undone").Inc()
		return &updated, nil, nil
	}

	toggleCount.WithLabelValues("done").Inc()

	return &updated, reward.NewCelebration(0, s.rnd), nil
}

func (s *Service) appendHistory(history []*model.ScheduleHistoryItem, ev *model.ScheduleEvent, date calendar.Date) []*model.ScheduleHistoryItem {
	for _, h := range history {
		if h.ScheduleID == ev.ID && sameDay(h.Date, date) {
			return history
		}
	}

	return append(history, &model.ScheduleHistoryItem{
		ID:         s.newID(),
		ScheduleID: ev.ID,
		Date:       date.String(),
		DoneAt:     s.now().UTC(),
		Title:      ev.Title,
	})
}

func removeHistory(history []*model.ScheduleHistoryItem, id string, date calendar.Date) []*model.ScheduleHistoryItem {
	res := make([]*model.ScheduleHistoryItem, 0, len(history))
	for _, h := range history {
		if h.ScheduleID == id && sameDay(h.Date, date) {
			continue
		}
		res = append(res, h)
	}

	return res
}

func sameDay(s string, d calendar.Date) bool {
	parsed, err := calendar.ParseDate(s)
	return err == nil && parsed == d
}
