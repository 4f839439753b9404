package backend

import (
	"strings"
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResp struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type tokenResp struct {
	Token string `json:"token"`
}

type goalDTO struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	AnnualIncome       int64   `json:"annualIncome"`
	DaysPerYear        int     `json:"daysPerYear"`
	Achieved           bool    `json:"achieved"`
	TaskCount          int     `json:"taskCount"`
	CompletedTaskCount int     `json:"completedTaskCount"`
	PerTaskReward      float64 `json:"perTaskReward"`
	EarnedAmount       float64 `json:"earnedAmount"`
}

func (d *goalDTO) toModel() (*model.Goal, error) {
	if d.ID <= 0 {
		return nil, invalid("goal id %d", d.ID)
	}

	return &model.Goal{
		ID:                 d.ID,
		DaysPerYear:        d.DaysPerYear,
		Achieved:           d.Achieved,
		TaskCount:          d.TaskCount,
		CompletedTaskCount: d.CompletedTaskCount,
		PerTaskReward:      d.PerTaskReward,
		EarnedAmount:       d.EarnedAmount,
		GoalCreate: model.GoalCreate{
			Title:        d.Title,
			AnnualIncome: d.AnnualIncome,
		},
	}, nil
}

type goalCreateReq struct {
	Title        string `json:"title"`
	AnnualIncome int64  `json:"annualIncome"`
}

type taskDTO struct {
	ID          int64   `json:"id"`
	GoalID      int64   `json:"goalId"`
	Title       string  `json:"title"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completedAt"`
}

func (d *taskDTO) toModel() (*model.Task, error) {
	if d.ID <= 0 {
		return nil, invalid("task id %d", d.ID)
	}

	task := &model.Task{
		ID:        d.ID,
		GoalID:    d.GoalID,
		Title:     d.Title,
		Completed: d.Completed,
	}

	if d.CompletedAt != nil && *d.CompletedAt != "" {
		at, err := parseTimestamp(*d.CompletedAt)
		if err != nil {
			return nil, invalid("task %d completedAt %q", d.ID, *d.CompletedAt)
		}
		task.CompletedAt = &at
	}

	return task, nil
}

type titleReq struct {
	Title string `json:"title"`
}

type rewardDTO struct {
	RewardAmount float64 `json:"rewardAmount"`
	Currency     string  `json:"currency"`
}

type tagDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

func (d *tagDTO) toModel() (*model.Tag, error) {
	if d.ID <= 0 {
		return nil, invalid("tag id %d", d.ID)
	}
	if strings.TrimSpace(d.Name) == "" {
		return nil, invalid("tag %d has no name", d.ID)
	}

	return &model.Tag{ID: d.ID, Name: d.Name, Color: d.Color}, nil
}

type tagCreateReq struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type taskTagsReq struct {
	TagIDs []int64 `json:"tagIds"`
}

type calendarItemDTO struct {
	TaskID    int64     `json:"taskId"`
	Title     string    `json:"title"`
	Memo      string    `json:"memo,omitempty"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
	Tags      []*tagDTO `json:"tags"`
}

func (d *calendarItemDTO) toModel() (*model.CalendarItem, error) {
	date, err := calendar.ParseDate(d.Date)
	if err != nil {
		return nil, invalid("calendar item %d date %q", d.TaskID, d.Date)
	}

	tags, err := mapTags(d.Tags)
	if err != nil {
		return nil, err
	}

	return &model.CalendarItem{
		TaskID:    d.TaskID,
		Title:     d.Title,
		Memo:      d.Memo,
		Date:      date.String(),
		Completed: d.Completed,
		Tags:      tags,
	}, nil
}

type scheduleUpsertReq struct {
	TaskID         int64  `json:"taskId"`
	Type           string `json:"type"`
	Date           string `json:"date,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	DaysOfWeekMask int    `json:"daysOfWeekMask,omitempty"`
}

type completeReq struct {
	TaskID int64  `json:"taskId"`
	Date   string `json:"date"`
}

type historyDTO struct {
	ID             int64  `json:"id"`
	OccurrenceDate string `json:"occurrenceDate"`
	CompletedAt    string `json:"completedAt"`
	Task           *struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	} `json:"task"`
}

func (d *historyDTO) toModel() (*model.HistoryEntry, error) {
	if d.ID <= 0 {
		return nil, invalid("history id %d", d.ID)
	}

	entry := &model.HistoryEntry{ID: d.ID, OccurrenceDate: d.OccurrenceDate}
	if d.Task != nil {
		entry.TaskID = d.Task.ID
		entry.TaskTitle = d.Task.Title
	}

	if d.CompletedAt != "" {
		at, err := parseTimestamp(d.CompletedAt)
		if err != nil {
			return nil, invalid("history %d completedAt %q", d.ID, d.CompletedAt)
		}
		entry.CompletedAt = at
	}

	return entry, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// parseTimestamp accepts RFC 3339 as well as zone-less local date-times.
func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

func mapGoals(in []*goalDTO) ([]*model.Goal, error) {
	out := make([]*model.Goal, 0, len(in))
	for _, d := range in {
		if d == nil {
			return nil, invalid("null goal")
		}
		g, err := d.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func mapTasks(in []*taskDTO) ([]*model.Task, error) {
	out := make([]*model.Task, 0, len(in))
	for _, d := range in {
		if d == nil {
			return nil, invalid("null task")
		}
		t, err := d.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func mapTags(in []*tagDTO) ([]*model.Tag, error) {
	out := make([]*model.Tag, 0, len(in))
	for _, d := range in {
		if d == nil {
			return nil, invalid("null tag")
		}
		t, err := d.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
