package calendar

import (
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// WeekdayMask packs a Sunday-first weekday selection into the backend's
// daysOfWeekMask, bit 1<<weekday (sun=1 ... sat=64).
func WeekdayMask(weekdays []bool) int {
	mask := 0
	for i, on := range weekdays {
		if on && i < 7 {
			mask |= 1 << i
		}
	}

	return mask
}

func WeekdaysFromMask(mask int) []bool {
	res := make([]bool, 7)
	for i := range res {
		res[i] = mask&(1<<i) != 0
	}

	return res
}

// ParseWeekdayList reads a comma separated list such as "mon,wed,fri".
// Unknown names are ignored.
func ParseWeekdayList(s string) []bool {
	res := make([]bool, 7)
	for _, part := range strings.Split(s, ",") {
		if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]; ok {
			res[wd] = true
		}
	}

	return res
}

// AnyWeekday reports whether at least one weekday is selected.
func AnyWeekday(weekdays []bool) bool {
	for _, on := range weekdays {
		if on {
			return true
		}
	}

	return false
}
