package api

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/SergeyKozhin/liferabbit/internal/business/goals"
	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

func TestMapToGoalDetailResp(t *testing.T) {
	detail := &goals.GoalDetail{
		Goal:       &model.Goal{ID: 3, TaskCount: 2, GoalCreate: model.GoalCreate{Title: "Side job", AnnualIncome: 1200}},
		Tasks:      []*model.Task{{ID: 1, GoalID: 3, Title: "a"}, {ID: 2, GoalID: 3, Title: "b", Completed: true}},
		CanAchieve: false,
	}

	resp := mapToGoalDetailResp(detail)
	if resp.Goal.Title != "Side job" || resp.Goal.AnnualIncome != 1200 {
		t.Errorf("goal = %+v", resp.Goal)
	}
	if len(resp.Tasks) != 2 || !resp.Tasks[1].Completed || resp.Tasks[0].GoalID != 3 {
		t.Errorf("tasks = %+v", resp.Tasks)
	}
}

func TestMapToCalendarMonthRespEmptyLists(t *testing.T) {
	d := calendar.NewDate(2025, 6, 2)
	month := &goals.CalendarMonth{
		Month: "2025-06",
		Weeks: [][]*goals.CalendarCell{{
			{Date: d, InMonth: true, Items: []*model.CalendarItem{{TaskID: 4, Title: "run", Date: "2025-06-02"}}},
			{Date: d.AddDays(1), InMonth: true},
		}},
	}

	resp := mapToCalendarMonthResp(month)
	js, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(string(js), "null") {
		t.Errorf("lists should encode as [], got %s", js)
	}
	if got := resp.Weeks[0][0].Items[0]; got.TaskID != 4 || len(got.Tags) != 0 {
		t.Errorf("item = %+v", got)
	}
}
