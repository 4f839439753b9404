package main

import (
	"strings"
	"testing"

	"github.com/SergeyKozhin/liferabbit/internal/business/schedules"
	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

func TestRenderMonth(t *testing.T) {
	list := []*model.ScheduleEvent{
		{
			ID:        "a",
			Title:     "Gym",
			StartDate: "2025-06-01",
			EndDate:   "2025-06-30",
			Weekdays:  []bool{false, true, false, true, false, true, false},
		},
		{
			ID:        "b",
			Title:     "Dentist",
			StartDate: "2025-06-16",
			EndDate:   "2025-06-16",
			Weekdays:  []bool{},
			OneShot:   true,
		},
	}

	view := schedules.BuildMonthView(list, calendar.NewDate(2025, 6, 1), calendar.NewDate(2025, 6, 16))
	out := renderMonth(view)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	if lines[0] != "2025-06" {
		t.Errorf("title line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Sun") || !strings.HasSuffix(lines[1], "Sat") {
		t.Errorf("header = %q", lines[1])
	}

	// June 2025 starts on a Sunday, so the first row is 1..7.
	first := strings.Fields(lines[2])
	want := []string{"1", "2:1", "3", "4:1", "5", "6:1", "7"}
	if strings.Join(first, " ") != strings.Join(want, " ") {
		t.Errorf("first week = %v, want %v", first, want)
	}

	// Monday 16th is today, recurring plus one-shot.
	if !strings.Contains(lines[4], "16*:2") {
		t.Errorf("third week = %q, want 16*:2", lines[4])
	}

	// Trailing cells belong to July.
	if !strings.Contains(lines[6], "30") || !strings.Contains(lines[6], "(1)") {
		t.Errorf("fifth week = %q, want June 30 then July", lines[6])
	}
	if !strings.HasPrefix(lines[7], "(6)") {
		t.Errorf("last week = %q, want to start on July 6", lines[7])
	}
}

func TestCellLabel(t *testing.T) {
	tests := []struct {
		cell *schedules.DayCell
		want string
	}{
		{&schedules.DayCell{Date: calendar.NewDate(2025, 6, 3), InMonth: true}, "3"},
		{&schedules.DayCell{Date: calendar.NewDate(2025, 5, 31)}, "(31)"},
		{&schedules.DayCell{Date: calendar.NewDate(2025, 6, 9), InMonth: true, Today: true}, "9*"},
		{&schedules.DayCell{
			Date:    calendar.NewDate(2025, 6, 9),
			InMonth: true,
			Events:  []*schedules.DayEvent{{ID: "a"}, {ID: "b"}},
		}, "9:2"},
	}

	for _, tt := range tests {
		if got := cellLabel(tt.cell); got != tt.want {
			t.Errorf("cellLabel(%s) = %q, want %q", tt.cell.Date, got, tt.want)
		}
	}
}
