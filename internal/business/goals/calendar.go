package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/pkg/validator"
)

type CalendarMonth struct {
	Month string
	Weeks [][]*CalendarCell
}

type CalendarCell struct {
	Date    calendar.Date
	InMonth bool
	Today   bool
	Items   []*model.CalendarItem
}

// CalendarMonth loads the backend occurrences of anchor's month and lays
// them on the 42-cell grid. Leading and trailing cells stay empty.
func (s *Service) CalendarMonth(ctx context.Context, anchor, today calendar.Date) (*CalendarMonth, error) {
	first, last := calendar.MonthBounds(anchor)

	items, err := s.client.Calendar(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}

	byDate := make(map[string][]*model.CalendarItem, len(items))
	for _, it := range items {
		byDate[it.Date] = append(byDate[it.Date], it)
	}

	res := &CalendarMonth{Month: fmt.Sprintf("%04d-%02d", anchor.Year, int(anchor.Month))}
	for _, week := range calendar.Weeks(calendar.BuildMonthGrid(anchor)) {
		row := make([]*CalendarCell, 0, len(week))
		for _, d := range week {
			cellItems := byDate[d.String()]
			if cellItems == nil {
				cellItems = []*model.CalendarItem{}
			}
			row = append(row, &CalendarCell{
				Date:    d,
				InMonth: calendar.InMonth(d, anchor),
				Today:   d == today,
				Items:   cellItems,
			})
		}
		res.Weeks = append(res.Weeks, row)
	}

	return res, nil
}

// ScheduleRequest is the user-facing form for a backend task schedule.
// Weekdays accepts "mon,wed,fri" and is turned into the backend mask.
type ScheduleRequest struct {
	TaskID    int64
	Type      model.ScheduleType
	Date      string
	StartDate string
	EndDate   string
	Weekdays  string
}

func (s *Service) UpsertSchedule(ctx context.Context, req *ScheduleRequest) (*model.ScheduleUpsert, error) {
	upsert, err := scheduleUpsert(req)
	if err != nil {
		return nil, err
	}

	if err := s.client.UpsertSchedule(ctx, upsert); err != nil {
		return nil, fmt.Errorf("upsert schedule: %w", err)
	}

	return upsert, nil
}

func scheduleUpsert(req *ScheduleRequest) (*model.ScheduleUpsert, error) {
	v := validator.New()
	v.Check(req.TaskID > 0, "taskId", "must be provided")

	res := &model.ScheduleUpsert{TaskID: req.TaskID, Type: model.ScheduleType(strings.ToUpper(string(req.Type)))}

	switch res.Type {
	case model.ScheduleTypeDate:
		d, err := calendar.ParseDate(req.Date)
		v.Check(err == nil, "date", "must be a YYYY-MM-DD date")
		res.Date = d.String()

	case model.ScheduleTypeRange, model.ScheduleTypeWeekly:
		start, err := calendar.ParseDate(req.StartDate)
		v.Check(err == nil, "startDate", "must be a YYYY-MM-DD date")

		var end calendar.Date
		if req.EndDate == "" && res.Type == model.ScheduleTypeWeekly && err == nil {
			end = calendar.DateOf(start.Time().AddDate(0, 1, 0))
		} else {
			end, err = calendar.ParseDate(req.EndDate)
			v.Check(err == nil, "endDate", "must be a YYYY-MM-DD date")
		}

		if v.Valid() {
			v.Check(!end.Before(start), "endDate", "must not be before the start date")
		}
		res.StartDate, res.EndDate = start.String(), end.String()

		if res.Type == model.ScheduleTypeWeekly {
			res.DaysOfWeekMask = calendar.WeekdayMask(calendar.ParseWeekdayList(req.Weekdays))
			v.Check(res.DaysOfWeekMask != 0, "weekdays", "must name at least one day")
		}

	default:
		v.AddError("type", "must be DATE, RANGE or WEEKLY")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *Service) CompleteOccurrence(ctx context.Context, taskID int64, date string) error {
	d, err := calendar.ParseDate(date)
	if err != nil {
		v := validator.New()
		v.AddError("date", "must be a YYYY-MM-DD date")
		return v.Err()
	}

	if err := s.client.CompleteOccurrence(ctx, taskID, d); err != nil {
		return fmt.Errorf("complete occurrence: %w", err)
	}

	return nil
}

func (s *Service) History(ctx context.Context, from, to calendar.Date) ([]*model.HistoryEntry, error) {
	if to.Before(from) {
		v := validator.New()
		v.AddError("to", "must not be before from")
		return nil, v.Err()
	}

	entries, err := s.client.History(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return entries, nil
}
