package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day with no time of day and no zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate reads YYYY-MM-DD. Unpadded parts ("2025-6-5") are accepted,
// out of range ones ("2025-02-30") are not.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}

	var nums [3]int
	for i, p := range parts {
		if !digitsOnly(p) {
			return Date{}, fmt.Errorf("invalid date %q", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q", s)
		}
		nums[i] = n
	}

	d := NewDate(nums[0], time.Month(nums[1]), nums[2])
	if d.Year != nums[0] || int(d.Month) != nums[1] || d.Day != nums[2] {
		return Date{}, fmt.Errorf("invalid date %q: out of range", s)
	}

	return d, nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// ParseMonth reads YYYY-MM and returns the first day of that month.
func ParseMonth(s string) (Date, error) {
	d, err := ParseDate(s + "-1")
	if err != nil {
		return Date{}, fmt.Errorf("invalid month %q", s)
	}

	return d, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Key orders dates as year*10000 + month*100 + day.
func (d Date) Key() int {
	return d.Year*10000 + int(d.Month)*100 + d.Day
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool {
	return d.Key() < o.Key()
}

func (d Date) After(o Date) bool {
	return d.Key() > o.Key()
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
