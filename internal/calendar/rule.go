package calendar

import (
	"errors"

	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/teambition/rrule-go"
)

var ErrNoOccurrence = errors.New("schedule never occurs")

var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// RecurrenceRule describes a recurring event as a weekly RRULE anchored on its
// first real occurrence, so DTSTART is never an extra instance. One-shot
// events have no rule and yield nil.
func RecurrenceRule(ev *model.ScheduleEvent) (*rrule.ROption, error) {
	if IsOneShot(ev) {
		return nil, nil
	}

	first, ok := FirstOccurrence(ev)
	if !ok {
		return nil, ErrNoOccurrence
	}

	end, err := ParseDate(ev.EndDate)
	if err != nil {
		return nil, err
	}

	var days []rrule.Weekday
	for i, on := range ev.Weekdays {
		if on && i < len(rruleWeekdays) {
			days = append(days, rruleWeekdays[i])
		}
	}

	return &rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Dtstart:   first.Time(),
		Until:     end.Time(),
		Byweekday: days,
	}, nil
}
