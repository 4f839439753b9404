package api

import (
	"time"

	"github.com/SergeyKozhin/liferabbit/internal/business/goals"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/reward"
)

type goalResp struct {
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

func mapToGoalResp(g *model.Goal) *goalResp {
	return &goalResp{
		ID:                 g.ID,
		Title:              g.Title,
		AnnualIncome:       g.AnnualIncome,
		DaysPerYear:        g.DaysPerYear,
		Achieved:           g.Achieved,
		TaskCount:          g.TaskCount,
		CompletedTaskCount: g.CompletedTaskCount,
		PerTaskReward:      g.PerTaskReward,
		EarnedAmount:       g.EarnedAmount,
	}
}

type goalListResp struct {
	Goals       []*goalResp         `json:"goals"`
	TotalEarned float64             `json:"totalEarned"`
	Celebration *reward.Celebration `json:"celebration,omitempty"`
}

func mapToGoalListResp(l *goals.GoalList) *goalListResp {
	gs := mapSlice(l.Goals, mapToGoalResp)
	return &goalListResp{Goals: gs, TotalEarned: l.TotalEarned, Celebration: l.Celebration}
}

type taskResp struct {
	ID          int64      `json:"id"`
	GoalID      int64      `json:"goalId"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

func mapToTaskResp(t *model.Task) *taskResp {
	return &taskResp{
		ID:          t.ID,
		GoalID:      t.GoalID,
		Title:       t.Title,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
}

type goalDetailResp struct {
	Goal       *goalResp   `json:"goal"`
	Tasks      []*taskResp `json:"tasks"`
	CanAchieve bool        `json:"canAchieve"`
}

func mapToGoalDetailResp(d *goals.GoalDetail) *goalDetailResp {
	g := mapToGoalResp(d.Goal)
	ts := mapSlice(d.Tasks, mapToTaskResp)
	return &goalDetailResp{Goal: g, Tasks: ts, CanAchieve: d.CanAchieve}
}

type tagResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

func mapToTagResp(t *model.Tag) *tagResp {
	return &tagResp{ID: t.ID, Name: t.Name, Color: t.Color}
}

type calendarItemResp struct {
	TaskID    int64      `json:"taskId"`
	Title     string     `json:"title"`
	Memo      string     `json:"memo,omitempty"`
	Date      string     `json:"date"`
	Completed bool       `json:"completed"`
	Tags      []*tagResp `json:"tags"`
}

func mapToCalendarItemResp(it *model.CalendarItem) *calendarItemResp {
	tags := mapSlice(it.Tags, mapToTagResp)
	return &calendarItemResp{
		TaskID:    it.TaskID,
		Title:     it.Title,
		Memo:      it.Memo,
		Date:      it.Date,
		Completed: it.Completed,
		Tags:      tags,
	}
}

type calendarCellResp struct {
	Date    string              `json:"date"`
	InMonth bool                `json:"inMonth"`
	Today   bool                `json:"today"`
	Items   []*calendarItemResp `json:"items"`
}

type calendarMonthResp struct {
	Month string                `json:"month"`
	Weeks [][]*calendarCellResp `json:"weeks"`
}

func mapToCalendarMonthResp(m *goals.CalendarMonth) *calendarMonthResp {
	res := &calendarMonthResp{Month: m.Month}
	for _, week := range m.Weeks {
		row := make([]*calendarCellResp, 0, len(week))
		for _, c := range week {
			items := mapSlice(c.Items, mapToCalendarItemResp)
			row = append(row, &calendarCellResp{
				Date:    c.Date.String(),
				InMonth: c.InMonth,
				Today:   c.Today,
				Items:   items,
			})
		}
		res.Weeks = append(res.Weeks, row)
	}

	return res
}

type historyEntryResp struct {
	ID             int64     `json:"id"`
	TaskID         int64     `json:"taskId"`
	TaskTitle      string    `json:"taskTitle"`
	OccurrenceDate string    `json:"occurrenceDate"`
	CompletedAt    time.Time `json:"completedAt"`
}

func mapToHistoryEntryResp(e *model.HistoryEntry) *historyEntryResp {
	return &historyEntryResp{
		ID:             e.ID,
		TaskID:         e.TaskID,
		TaskTitle:      e.TaskTitle,
		OccurrenceDate: e.OccurrenceDate,
		CompletedAt:    e.CompletedAt,
	}
}

type rewardResp struct {
	Amount   float64 `json:"rewardAmount"`
	Currency string  `json:"currency"`
}

type taskCompletionResp struct {
	Reward      *rewardResp         `json:"reward"`
	Celebration *reward.Celebration `json:"celebration,omitempty"`
	Goal        *goalDetailResp     `json:"goal,omitempty"`
}

func mapToTaskCompletionResp(c *goals.TaskCompletion) *taskCompletionResp {
	res := &taskCompletionResp{
		Reward:      &rewardResp{Amount: c.Reward.Amount, Currency: c.Reward.Currency},
		Celebration: c.Celebration,
	}
	if c.Detail != nil {
		res.Goal = mapToGoalDetailResp(c.Detail)
	}

	return res
}

type scheduleToggleResp struct {
	Schedule    *model.ScheduleEvent `json:"schedule"`
	Celebration *reward.Celebration  `json:"celebration,omitempty"`
}
