package goals

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyKozhin/liferabbit/internal/backend"
	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/pkg/validator"
	"go.uber.org/zap"
)

type fakeClient struct {
	goals    []*model.Goal
	tasks    map[int64][]*model.Task
	tags     []*model.Tag
	items    []*model.CalendarItem
	upserts  []*model.ScheduleUpsert
	calls    []string
	failWith error
	reward   *model.Reward
}

func (f *fakeClient) record(call string) error {
	f.calls = append(f.calls, call)
	return f.failWith
}

func (f *fakeClient) ListGoals(context.Context) ([]*model.Goal, error) {
	return f.goals, f.record("ListGoals")
}

func (f *fakeClient) GetGoal(_ context.Context, id int64) (*model.Goal, error) {
	if err := f.record("GetGoal"); err != nil {
		return nil, err
	}
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, &backend.APIError{Status: 404, Message: "goal not found"}
}

func (f *fakeClient) CreateGoal(_ context.Context, goal *model.GoalCreate) (*model.Goal, error) {
	if err := f.record("CreateGoal"); err != nil {
		return nil, err
	}
	g := &model.Goal{ID: int64(len(f.goals) + 1), GoalCreate: *goal}
	f.goals = append(f.goals, g)
	return g, nil
}

func (f *fakeClient) AchieveGoal(_ context.Context, id int64) error {
	return f.record("AchieveGoal")
}

func (f *fakeClient) ListTasks(_ context.Context, goalID int64) ([]*model.Task, error) {
	return f.tasks[goalID], f.record("ListTasks")
}

func (f *fakeClient) AddTask(_ context.Context, goalID int64, title string) (*model.Task, error) {
	if err := f.record("AddTask"); err != nil {
		return nil, err
	}
	t := &model.Task{ID: int64(len(f.tasks[goalID]) + 1), GoalID: goalID, Title: title}
	f.tasks[goalID] = append(f.tasks[goalID], t)
	return t, nil
}

func (f *fakeClient) DeleteTask(context.Context, int64, int64) error {
	return f.record("DeleteTask")
}

func (f *fakeClient) CompleteTask(context.Context, int64) (*model.Reward, error) {
	return f.reward, f.record("CompleteTask")
}

func (f *fakeClient) ListTags(context.Context) ([]*model.Tag, error) {
	return f.tags, f.record("ListTags")
}

func (f *fakeClient) CreateTag(_ context.Context, name, color string) (*model.Tag, error) {
	if err := f.record("CreateTag"); err != nil {
		return nil, err
	}
	t := &model.Tag{ID: int64(len(f.tags) + 1), Name: name, Color: color}
	f.tags = append(f.tags, t)
	return t, nil
}

func (f *fakeClient) SetTaskTags(context.Context, int64, []int64) error {
	return f.record("SetTaskTags")
}

func (f *fakeClient) Calendar(context.Context, calendar.Date, calendar.Date) ([]*model.CalendarItem, error) {
	return f.items, f.record("Calendar")
}

func (f *fakeClient) UpsertSchedule(_ context.Context, s *model.ScheduleUpsert) error {
	f.upserts = append(f.upserts, s)
	return f.record("UpsertSchedule")
}

func (f *fakeClient) CompleteOccurrence(context.Context, int64, calendar.Date) error {
	return f.record("CompleteOccurrence")
}

func (f *fakeClient) History(context.Context, calendar.Date, calendar.Date) ([]*model.HistoryEntry, error) {
	return nil, f.record("History")
}

type fakeUser struct {
	key string
}

func (u *fakeUser) UserKey() string { return u.key }

func newTestService() (*Service, *fakeClient) {
	s, fc, _ := newTestServiceWithUser()
	return s, fc
}

func newTestServiceWithUser() (*Service, *fakeClient, *fakeUser) {
	fc := &fakeClient{tasks: map[int64][]*model.Task{}}
	u := &fakeUser{key: "alice"}
	return NewService(fc, u, zap.NewNop().Sugar()), fc, u
}

func isValidation(err error, field string) bool {
	var verr *validator.Error
	if !errors.As(err, &verr) {
		return false
	}
	_, ok := verr.Errors[field]
	return ok
}

func TestListGoalsCelebratesIncrease(t *testing.T) {
	s, fc := newTestService()
	ctx := context.Background()
	fc.goals = []*model.Goal{{ID: 1, EarnedAmount: 100}, {ID: 2, EarnedAmount: 50}}

	list, err := s.ListGoals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if list.TotalEarned != 150 || list.Celebration != nil {
		t.Errorf("first load: total %v, celebration %v", list.TotalEarned, list.Celebration)
	}

	fc.goals[1].EarnedAmount = 80
	list, _ = s.ListGoals(ctx)
	if list.Celebration == nil || list.Celebration.Amount != 30 {
		t.Fatalf("increase should celebrate 30, got %+v", list.Celebration)
	}

	list, _ = s.ListGoals(ctx)
	if list.Celebration != nil {
		t.Error("unchanged total should not celebrate")
	}
}

func TestListGoalsDoesNotCelebrateAcrossUsers(t *testing.T) {
	s, fc, u := newTestServiceWithUser()
	ctx := context.Background()

	fc.goals = []*model.Goal{{ID: 1, EarnedAmount: 100}}
	if _, err := s.ListGoals(ctx); err != nil {
		t.Fatal(err)
	}

	u.key = "bob"
	fc.goals = []*model.Goal{{ID: 7, EarnedAmount: 250}}
	list, err := s.ListGoals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if list.Celebration != nil {
		t.Fatalf("first load of another user celebrated %v", list.Celebration.Amount)
	}

	fc.goals[0].EarnedAmount = 260
	list, _ = s.ListGoals(ctx)
	if list.Celebration == nil || list.Celebration.Amount != 10 {
		t.Errorf("increase for the new user should celebrate 10, got %+v", list.Celebration)
	}
}

func TestCreateGoalRefetches(t *testing.T) {
	s, fc := newTestService()

	list, err := s.CreateGoal(context.Background(), &model.GoalCreate{Title: " Side job ", AnnualIncome: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Goals) != 1 || list.Goals[0].Title != "Side job" {
		t.Errorf("goals = %+v", list.Goals)
	}
	if len(fc.calls) != 2 || fc.calls[0] != "CreateGoal" || fc.calls[1] != "ListGoals" {
		t.Errorf("calls = %v", fc.calls)
	}

	_, err = s.CreateGoal(context.Background(), &model.GoalCreate{Title: "", AnnualIncome: 0})
	if !isValidation(err, "title") || !isValidation(err, "annualIncome") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGoalDetailCanAchieve(t *testing.T) {
	tests := []struct {
		total, done int
		want        bool
	}{
		{0, 0, false},
		{3, 2, false},
		{3, 3, true},
	}

	for _, tt := range tests {
		s, fc := newTestService()
		fc.goals = []*model.Goal{{ID: 1, TaskCount: tt.total, CompletedTaskCount: tt.done}}

		detail, err := s.GoalDetail(context.Background(), 1)
		if err != nil {
			t.Fatal(err)
		}
		if detail.CanAchieve != tt.want {
			t.Errorf("%d/%d: CanAchieve = %v", tt.done, tt.total, detail.CanAchieve)
		}
	}
}

func TestAddTask(t *testing.T) {
	s, fc := newTestService()
	fc.goals = []*model.Goal{{ID: 1}}

	detail, err := s.AddTask(context.Background(), 1, "  write report ")
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.Tasks) != 1 || detail.Tasks[0].Title != "write report" {
		t.Errorf("tasks = %+v", detail.Tasks)
	}

	if _, err := s.AddTask(context.Background(), 1, " "); !isValidation(err, "title") {
		t.Errorf("blank title: %v", err)
	}
}

func TestCompleteTaskCelebratesReward(t *testing.T) {
	s, fc := newTestService()
	fc.goals = []*model.Goal{{ID: 1}}
	fc.reward = &model.Reward{Amount: 5000, Currency: "JPY"}

	res, err := s.CompleteTask(context.Background(), 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if res.Celebration == nil || res.Celebration.Label != "+ $5000.00" || res.Detail == nil {
		t.Errorf("res = %+v", res)
	}
}

func TestBackendErrorIsKept(t *testing.T) {
	s, fc := newTestService()
	fc.failWith = &backend.APIError{Status: 401, Message: "invalid credentials"}

	_, err := s.ListGoals(context.Background())

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "invalid credentials" {
		t.Errorf("got %v", err)
	}
}

func TestCreateTag(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	tags, err := s.CreateTag(ctx, " health ", "#FFCC00")
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 || tags[0].Name != "health" {
		t.Errorf("tags = %+v", tags)
	}

	if _, err := s.CreateTag(ctx, "x", "yellow"); !isValidation(err, "color") {
		t.Errorf("bad color: %v", err)
	}
	if _, err := s.CreateTag(ctx, "", ""); !isValidation(err, "name") {
		t.Errorf("empty name: %v", err)
	}
}

func TestScheduleUpsert(t *testing.T) {
	tests := []struct {
		name    string
		req     ScheduleRequest
		want    model.ScheduleUpsert
		wantErr string
	}{
		{
			name: "date",
			req:  ScheduleRequest{TaskID: 1, Type: "date", Date: "2025-6-5"},
			want: model.ScheduleUpsert{TaskID: 1, Type: model.ScheduleTypeDate, Date: "2025-06-05"},
		},
		{
			name: "range",
			req:  ScheduleRequest{TaskID: 1, Type: "RANGE", StartDate: "2025-06-01", EndDate: "2025-06-03"},
			want: model.ScheduleUpsert{TaskID: 1, Type: model.ScheduleTypeRange, StartDate: "2025-06-01", EndDate: "2025-06-03"},
		},
		{
			name: "weekly defaults to one month",
			req:  ScheduleRequest{TaskID: 1, Type: "WEEKLY", StartDate: "2025-01-31", Weekdays: "mon, WED,fri,xyz"},
			want: model.ScheduleUpsert{TaskID: 1, Type: model.ScheduleTypeWeekly, StartDate: "2025-01-31", EndDate: "2025-03-03", DaysOfWeekMask: 2 | 8 | 32},
		},
		{name: "range backwards", req: ScheduleRequest{TaskID: 1, Type: "RANGE", StartDate: "2025-06-03", EndDate: "2025-06-01"}, wantErr: "endDate"},
		{name: "weekly without days", req: ScheduleRequest{TaskID: 1, Type: "WEEKLY", StartDate: "2025-06-01", EndDate: "2025-06-30", Weekdays: "xyz"}, wantErr: "weekdays"},
		{name: "unknown type", req: ScheduleRequest{TaskID: 1, Type: "MONTHLY"}, wantErr: "type"},
		{name: "no task", req: ScheduleRequest{Type: "DATE", Date: "2025-06-01"}, wantErr: "taskId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fc := newTestService()
			req := tt.req

			got, err := s.UpsertSchedule(context.Background(), &req)
			if tt.wantErr != "" {
				if !isValidation(err, tt.wantErr) {
					t.Fatalf("expected validation error on %q, got %v", tt.wantErr, err)
				}
				if len(fc.upserts) != 0 {
					t.Error("invalid request reached the backend")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestCalendarMonth(t *testing.T) {
	s, fc := newTestService()
	fc.items = []*model.CalendarItem{
		{TaskID: 1, Title: "run", Date: "2025-06-03"},
		{TaskID: 2, Title: "read", Date: "2025-06-03"},
		{TaskID: 3, Title: "swim", Date: "2025-06-30"},
	}

	month, err := s.CalendarMonth(context.Background(), calendar.NewDate(2025, 6, 10), calendar.NewDate(2025, 6, 3))
	if err != nil {
		t.Fatal(err)
	}

	// June 2025 starts on a Sunday.
	if len(month.Weeks) != 6 || month.Weeks[0][0].Date.String() != "2025-06-01" {
		t.Fatalf("grid starts at %v", month.Weeks[0][0].Date)
	}
	cell := month.Weeks[0][2]
	if !cell.Today || len(cell.Items) != 2 || cell.Items[0].Title != "run" {
		t.Errorf("cell = %+v", cell)
	}
	if last := month.Weeks[4][1]; last.Date.String() != "2025-06-30" || len(last.Items) != 1 {
		t.Errorf("june 30 = %+v", last)
	}
	if trailing := month.Weeks[5][6]; trailing.InMonth || len(trailing.Items) != 0 {
		t.Errorf("trailing = %+v", trailing)
	}
}

func TestHistoryRejectsBackwardsRange(t *testing.T) {
	s, fc := newTestService()

	_, err := s.History(context.Background(), calendar.NewDate(2025, 6, 2), calendar.NewDate(2025, 6, 1))
	if !isValidation(err, "to") || len(fc.calls) != 0 {
		t.Errorf("err = %v, calls = %v", err, fc.calls)
	}
}

func TestCompleteOccurrence(t *testing.T) {
	s, fc := newTestService()

	if err := s.CompleteOccurrence(context.Background(), 3, "2025-06-01"); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteOccurrence(context.Background(), 3, "tomorrow"); !isValidation(err, "date") {
		t.Errorf("bad date: %v", err)
	}
	if len(fc.calls) != 1 {
		t.Errorf("calls = %v", fc.calls)
	}
}
