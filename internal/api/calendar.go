package api

import (
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/business/goals"
	"github.com/SergeyKozhin/liferabbit/internal/model"
)

// defaultHistoryDays is how far back /history looks when from is omitted.
const defaultHistoryDays = 30

func (a *Api) calendarHandler(w http.ResponseWriter, r *http.Request) {
	anchor, err := a.monthParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	month, err := a.goals.CalendarMonth(r.Context(), anchor, a.today())
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToCalendarMonthResp(month), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

type scheduleUpsertReq struct {
	TaskID    int64  `json:"taskId"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Weekdays  string `json:"weekdays"`
}

func (a *Api) upsertScheduleHandler(w http.ResponseWriter, r *http.Request) {
	req := &scheduleUpsertReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	upsert, err := a.goals.UpsertSchedule(r.Context(), &goals.ScheduleRequest{
		TaskID:    req.TaskID,
		Type:      model.ScheduleType(req.Type),
		Date:      req.Date,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Weekdays:  req.Weekdays,
	})
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	resp := &struct {
		TaskID         int64  `json:"taskId"`
		Type           string `json:"type"`
		Date           string `json:"date,omitempty"`
		StartDate      string `json:"startDate,omitempty"`
		EndDate        string `json:"endDate,omitempty"`
		DaysOfWeekMask int    `json:"daysOfWeekMask,omitempty"`
	}{
		TaskID:         upsert.TaskID,
		Type:           string(upsert.Type),
		Date:           upsert.Date,
		StartDate:      upsert.StartDate,
		EndDate:        upsert.EndDate,
		DaysOfWeekMask: upsert.DaysOfWeekMask,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) completeOccurrenceHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		TaskID int64  `json:"taskId"`
		Date   string `json:"date"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if req.TaskID <= 0 {
		a.failedValidationResponse(w, r, map[string]string{"taskId": "must be provided"})
		return
	}

	if err := a.goals.CompleteOccurrence(r.Context(), req.TaskID, req.Date); err != nil {
		a.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) historyHandler(w http.ResponseWriter, r *http.Request) {
	to, err := a.dateParam(r, "to")
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	from := to.AddDays(-defaultHistoryDays)
	if r.URL.Query().Get("from") != "" {
		if from, err = a.dateParam(r, "from"); err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
	}

	entries, err := a.goals.History(r.Context(), from, to)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	resp := mapSlice(entries, mapToHistoryEntryResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
