package schedules

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

type MonthView struct {
	Month string        `json:"month"`
	First calendar.Date `json:"first"`
	Last  calendar.Date `json:"last"`
	Weeks [][]*DayCell  `json:"weeks"`
}

type DayCell struct {
	Date    calendar.Date `json:"date"`
	InMonth bool          `json:"inMonth"`
	Today   bool          `json:"today"`
	Events  []*DayEvent   `json:"events"`
}

// DayEvent is one schedule as shown inside a day cell.
type DayEvent struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Short     string   `json:"short"`
	TimeLabel string   `json:"timeLabel,omitempty"`
	Done      bool     `json:"done"`
	Linked    bool     `json:"linked"`
	Tags      []string `json:"tags,omitempty"`
}

// Month lays the user's schedules out on the 42-cell grid of anchor's month.
func (s *Service) Month(ctx context.Context, anchor, today calendar.Date) (*MonthView, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return BuildMonthView(list, anchor, today), nil
}

func BuildMonthView(list []*model.ScheduleEvent, anchor, today calendar.Date) *MonthView {
	cells := calendar.BuildMonthGrid(anchor)
	byDate := calendar.OccurrencesInRange(list, cells)
	first, last := calendar.MonthBounds(anchor)

	view := &MonthView{
		Month: fmt.Sprintf("%04d-%02d", anchor.Year, int(anchor.Month)),
		First: first,
		Last:  last,
	}

	for _, week := range calendar.Weeks(cells) {
		row := make([]*DayCell, 0, len(week))
		for _, d := range week {
			cell := &DayCell{
				Date:    d,
				InMonth: calendar.InMonth(d, anchor),
				Today:   d == today,
				Events:  make([]*DayEvent, 0, len(byDate[d])),
			}
			for _, ev := range byDate[d] {
				cell.Events = append(cell.Events, &DayEvent{
					ID:        ev.ID,
					Title:     ev.Title,
					Short:     shortTitle(ev.Title, 4),
					TimeLabel: timeLabel(ev),
					Done:      calendar.IsDone(ev, d),
					Linked:    ev.TaskRef != nil,
					Tags:      ev.Tags,
				})
			}
			row = append(row, cell)
		}
		view.Weeks = append(view.Weeks, row)
	}

	return view
}

func timeLabel(ev *model.ScheduleEvent) string {
	switch {
	case ev.StartTime == "":
		return ""
	case ev.EndTime == "":
		return ev.StartTime
	default:
		return ev.StartTime + "〜" + ev.EndTime
	}
}

// shortTitle keeps the first n characters, counting runes.
func shortTitle(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
