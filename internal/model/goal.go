package model

import "time"

type Account struct {
	ID    int64
	Email string
	Token string
}

type GoalCreate struct {
	Title        string
	AnnualIncome int64
}

type Goal struct {
	ID                 int64
	DaysPerYear        int
	Achieved           bool
	TaskCount          int
	CompletedTaskCount int
	PerTaskReward      float64
	EarnedAmount       float64
	GoalCreate
}

type Task struct {
	ID          int64
	GoalID      int64
	Title       string
	Completed   bool
	CompletedAt *time.Time
}

type Reward struct {
	Amount   float64
	Currency string
}

type Tag struct {
	ID    int64
	Name  string
	Color string
}

type CalendarItem struct {
	TaskID    int64
	Title     string
	Memo      string
	Date      string
	Completed bool
	Tags      []*Tag
}

type ScheduleType string

const (
	ScheduleTypeDate   ScheduleType = "DATE"
	ScheduleTypeRange  ScheduleType = "RANGE"
	ScheduleTypeWeekly ScheduleType = "WEEKLY"
)

// ScheduleUpsert is a backend-side schedule for a task.
type ScheduleUpsert struct {
	TaskID         int64
	Type           ScheduleType
	Date           string
	StartDate      string
	EndDate        string
	DaysOfWeekMask int
}

type HistoryEntry struct {
	ID             int64
	TaskID         int64
	TaskTitle      string
	OccurrenceDate string
	CompletedAt    time.Time
}
