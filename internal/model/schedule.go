package model

import "time"

// ScheduleEvent is a locally stored occurrence rule. Field names match the
// stored JSON layout, dates are YYYY-MM-DD.
type ScheduleEvent struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Memo           string   `json:"memo,omitempty"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Weekdays       []bool   `json:"weekdays"`
	TaskRef        *TaskRef `json:"taskRef,omitempty"`
	StartTime      string   `json:"startTime,omitempty"`
	EndTime        string   `json:"endTime,omitempty"`
	OneShot        bool     `json:"oneShot,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	CompletedDates []string `json:"completedDates,omitempty"`
}

type TaskRef struct {
	GoalID int64 `json:"goalId"`
	TaskID int64 `json:"taskId"`
}

// ScheduleForm is what a user submits when creating or editing a schedule.
type ScheduleForm struct {
	Title     string
	Memo      string
	StartDate string
	EndDate   string
	Weekdays  []bool
	OneShot   bool
	TaskRef   *TaskRef
	StartTime string
	EndTime   string
	Tags      []string
}

type ScheduleHistoryItem struct {
	ID         string    `json:"id"`
	ScheduleID string    `json:"scheduleId"`
	Date       string    `json:"date"`
	DoneAt     time.Time `json:"doneAt"`
	Title      string    `json:"title"`
}
