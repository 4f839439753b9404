package schedules

import (
	"strings"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/pkg/validator"
)

// fromForm validates form and builds the stored fields of an event. Nothing
// is returned unless the form is valid.
func (s *Service) fromForm(form *model.ScheduleForm) (*model.ScheduleEvent, error) {
	v := validator.New()

	title := strings.TrimSpace(form.Title)
	v.Check(title != "", "title", "must be provided")

	start, err := calendar.ParseDate(form.StartDate)
	v.Check(err == nil, "startDate", "must be a YYYY-MM-DD date")

	v.Check(len(form.Weekdays) == 0 || len(form.Weekdays) == 7, "weekdays", "must have 7 entries")

	oneShot := form.OneShot || !calendar.AnyWeekday(form.Weekdays)

	end := start
	if form.EndDate != "" || !oneShot {
		end, err = calendar.ParseDate(form.EndDate)
		v.Check(err == nil, "endDate", "must be a YYYY-MM-DD date")
	}
	if v.Valid() {
		v.Check(!end.Before(start), "endDate", "must not be before the start date")
	}

	startTime := strings.TrimSpace(form.StartTime)
	endTime := strings.TrimSpace(form.EndTime)
	v.Check(startTime == "" || validator.Matches(startTime, validator.TimeRX), "startTime", "must be HH:MM")
	v.Check(endTime == "" || validator.Matches(endTime, validator.TimeRX), "endTime", "must be HH:MM")

	if form.TaskRef != nil {
		v.Check(form.TaskRef.GoalID > 0 && form.TaskRef.TaskID > 0, "taskRef", "must reference an existing task")
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	ev := &model.ScheduleEvent{
		Title:     title,
		Memo:      strings.TrimSpace(form.Memo),
		StartDate: start.String(),
		EndDate:   end.String(),
		Weekdays:  []bool{},
		OneShot:   oneShot,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if !oneShot {
		ev.Weekdays = append([]bool(nil), form.Weekdays...)
	}

	if form.TaskRef != nil {
		ref := *form.TaskRef
		ev.TaskRef = &ref
	}

	if s.tagsUnlocked {
		ev.Tags = cleanTags(form.Tags)
	}

	return ev, nil
}

func cleanTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))

	var res []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		res = append(res, t)
	}

	return res
}
