package calendar

import (
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

// ToggleDone marks or unmarks d in ev's completed dates. Both directions are
// idempotent. The returned event owns a fresh slice, ev is left untouched.
func ToggleDone(ev model.ScheduleEvent, d Date, done bool) model.ScheduleEvent {
	dates := make([]string, 0, len(ev.CompletedDates)+1)
	found := false
	for _, c := range ev.CompletedDates {
		if sameDate(c, d) {
			if !done {
				continue
			}
			found = true
		}
		dates = append(dates, c)
	}

	if done && !found {
		dates = append(dates, d.String())
	}

	ev.CompletedDates = dates
	return ev
}

// IsDone reports whether d is among ev's completed dates.
func IsDone(ev *model.ScheduleEvent, d Date) bool {
	for _, c := range ev.CompletedDates {
		if sameDate(c, d) {
			return true
		}
	}

	return false
}

func sameDate(s string, d Date) bool {
	if s == d.String() {
		return true
	}

	parsed, err := ParseDate(s)
	return err == nil && parsed == d
}
