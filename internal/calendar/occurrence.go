package calendar

import (
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

// IsOneShot reports whether ev fires only on its start date.
func IsOneShot(ev *model.ScheduleEvent) bool {
	return ev.OneShot || len(ev.Weekdays) == 0
}

// OccursOn reports whether ev is active on d. A one-shot event occurs on its
// start date only. A recurring event occurs on the selected weekdays within
// [startDate, endDate]. Events with unparseable bounds never occur.
func OccursOn(ev *model.ScheduleEvent, d Date) bool {
	start, err := ParseDate(ev.StartDate)
	if err != nil {
		return false
	}

	if IsOneShot(ev) {
		return d == start
	}

	end, err := ParseDate(ev.EndDate)
	if err != nil {
		return false
	}

	if d.Key() < start.Key() || d.Key() > end.Key() {
		return false
	}

	dow := int(d.Weekday())
	return dow < len(ev.Weekdays) && ev.Weekdays[dow]
}

// OccurrencesInRange collects, for every date, the events occurring on it in
// input order. Every date gets an entry, empty or not.
func OccurrencesInRange(events []*model.ScheduleEvent, dates []Date) map[Date][]*model.ScheduleEvent {
	res := make(map[Date][]*model.ScheduleEvent, len(dates))
	for _, d := range dates {
		list := make([]*model.ScheduleEvent, 0)
		for _, ev := range events {
			if OccursOn(ev, d) {
				list = append(list, ev)
			}
		}
		res[d] = list
	}

	return res
}

// FirstOccurrence finds the earliest date ev occurs on.
func FirstOccurrence(ev *model.ScheduleEvent) (Date, bool) {
	start, err := ParseDate(ev.StartDate)
	if err != nil {
		return Date{}, false
	}

	if IsOneShot(ev) {
		return start, true
	}

	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		if OccursOn(ev, d) {
			return d, true
		}
	}

	return Date{}, false
}
