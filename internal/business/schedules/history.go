package schedules

import (
	"context"
	"sort"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

// History returns the completion log, most recent first.
func (s *Service) History(ctx context.Context) ([]*model.ScheduleHistoryItem, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	history, err := s.loadHistory(ctx, user)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].DoneAt.After(history[j].DoneAt)
	})

	return history, nil
}

// Due lists the schedules occurring on d that are not done yet.
func (s *Service) Due(ctx context.Context, d calendar.Date) ([]*model.ScheduleEvent, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var res []*model.ScheduleEvent
	for _, ev := range list {
		if calendar.OccursOn(ev, d) && !calendar.IsDone(ev, d) {
			res = append(res, ev)
		}
	}

	return res, nil
}
