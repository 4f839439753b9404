package schedules

import (
	"context"

	"github.com/SergeyKozhin/liferabbit/internal/model"
)

func (s *Service) List(ctx context.Context) ([]*model.ScheduleEvent, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadSchedules(ctx, user)
}

func (s *Service) Get(ctx context.Context, id string) (*model.ScheduleEvent, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	i := findIndex(list, id)
	if i < 0 {
		return nil, model.ErrNoRecord
	}

	return list[i], nil
}

func (s *Service) Create(ctx context.Context, form *model.ScheduleForm) (*model.ScheduleEvent, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}

	ev, err := s.fromForm(form)
	if err != nil {
		rejectedCount.Inc()
		return nil, err
	}
	ev.ID = s.newID()
	ev.CompletedDates = []string{}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadSchedules(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.saveSchedules(ctx, user, append(list, ev)); err != nil {
		return nil, err
	}

	s.logger.Debugw("schedule created", "id", ev.ID, "oneShot", ev.OneShot)

	return ev, nil
}

// Update replaces the editable fields of a schedule. Completed dates are kept.
func (s *Service) Update(ctx context.Context, id string, form *model.ScheduleForm) (*model.ScheduleEvent, error) {
	user, err := s.user()
	if err != nil {
		return nil, err
	}

	ev, err := s.fromForm(form)
	if err != nil {
		rejectedCount.Inc()
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadSchedules(ctx, user)
	if err != nil {
		return nil, err
	}

	i := findIndex(list, id)
	if i < 0 {
		return nil, model.ErrNoRecord
	}

	ev.ID = id
	ev.CompletedDates = list[i].CompletedDates
	list[i] = ev

	if err := s.saveSchedules(ctx, user, list); err != nil {
		return nil, err
	}

	return ev, nil
}

// Delete removes a schedule. Its history entries stay in the log.
func (s *Service) Delete(ctx context.Context, id string) error {
	user, err := s.user()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadSchedules(ctx, user)
	if err != nil {
		return err
	}

	i := findIndex(list, id)
	if i < 0 {
		return model.ErrNoRecord
	}

	list = append(list[:i], list[i+1:]...)

	return s.saveSchedules(ctx, user, list)
}
