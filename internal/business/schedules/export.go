package schedules

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/emersion/go-ical"
)

const prodID = "-//liferabbit//schedules//EN"

// ExportICS writes the user's schedules as an iCalendar feed. Recurring
// schedules become weekly RRULE events.
func (s *Service) ExportICS(ctx context.Context, w io.Writer) error {
	list, err := s.List(ctx)
	if err != nil {
		return err
	}

	cal, err := s.buildCalendar(list)
	if err != nil {
		return err
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	return nil
}

func (s *Service) buildCalendar(list []*model.ScheduleEvent) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	stamp := s.now().UTC()
	for _, ev := range list {
		vevent, err := s.toVEvent(ev, stamp)
		if err != nil {
			if errors.Is(err, calendar.ErrNoOccurrence) {
				s.logger.Debugw("skipping schedule without occurrences", "id", ev.ID)
				continue
			}
			s.logger.Warnw("skipping schedule in export", "id", ev.ID, "err", err)
			continue
		}
		cal.Children = append(cal.Children, vevent.Component)
	}

	return cal, nil
}

func (s *Service) toVEvent(ev *model.ScheduleEvent, stamp time.Time) (*ical.Event, error) {
	rule, err := calendar.RecurrenceRule(ev)
	if err != nil {
		return nil, err
	}

	first, err := calendar.ParseDate(ev.StartDate)
	if err != nil {
		return nil, err
	}
	if rule != nil {
		first = calendar.DateOf(rule.Dtstart)
	}

	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, ev.ID)
	vevent.Props.SetText(ical.PropSummary, ev.Title)
	if ev.Memo != "" {
		vevent.Props.SetText(ical.PropDescription, ev.Memo)
	}
	if len(ev.Tags) > 0 {
		vevent.Props.SetTextList(ical.PropCategories, ev.Tags)
	}
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp)

	start, end, allDay := s.eventSpan(ev, first)
	if allDay {
		vevent.Props.SetDate(ical.PropDateTimeStart, start)
		vevent.Props.SetDate(ical.PropDateTimeEnd, end)
	} else {
		vevent.Props.SetDateTime(ical.PropDateTimeStart, start)
		vevent.Props.SetDateTime(ical.PropDateTimeEnd, end)
	}

	if rule != nil {
		// UNTIL is inclusive, so cover the whole last day.
		rule.Until = rule.Until.Add(24*time.Hour - time.Second)
		vevent.Props.SetRecurrenceRule(rule)
	}

	return vevent, nil
}

// eventSpan returns the start and end of the first instance. Schedules
// without a start time are all-day.
func (s *Service) eventSpan(ev *model.ScheduleEvent, day calendar.Date) (time.Time, time.Time, bool) {
	base := time.Date(day.Year, day.Month, day.Day, 0, 0, 0, 0, s.loc)

	startOffset, ok := clockOffset(ev.StartTime)
	if !ok {
		return base, base.AddDate(0, 0, 1), true
	}

	start := base.Add(startOffset)
	end := start.Add(time.Hour)
	if endOffset, ok := clockOffset(ev.EndTime); ok && endOffset > startOffset {
		end = base.Add(endOffset)
	}

	return start, end, false
}

func clockOffset(hhmm string) (time.Duration, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}

	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}
