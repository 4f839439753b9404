package api

import (
	"bytes"
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/calendar"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/go-chi/chi/v5"
)

type scheduleFormReq struct {
	Title     string         `json:"title"`
	Memo      string         `json:"memo"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Weekdays  []bool         `json:"weekdays"`
	OneShot   bool           `json:"oneShot"`
	TaskRef   *model.TaskRef `json:"taskRef"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Tags      []string       `json:"tags"`
}

func (req *scheduleFormReq) toForm() *model.ScheduleForm {
	return &model.ScheduleForm{
		Title:     req.Title,
		Memo:      req.Memo,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Weekdays:  req.Weekdays,
		OneShot:   req.OneShot,
		TaskRef:   req.TaskRef,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Tags:      req.Tags,
	}
}

func (a *Api) listSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := a.schedules.List(r.Context())
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, list, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createScheduleHandler(w http.ResponseWriter, r *http.Request) {
	req := &scheduleFormReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	ev, err := a.schedules.Create(r.Context(), req.toForm())
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, ev, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getScheduleHandler(w http.ResponseWriter, r *http.Request) {
	ev, err := a.schedules.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, ev, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	req := &scheduleFormReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	ev, err := a.schedules.Update(r.Context(), chi.URLParam(r, "id"), req.toForm())
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, ev, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteScheduleHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.schedules.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) toggleScheduleHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Date string `json:"date"`
		Done bool   `json:"done"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		a.failedValidationResponse(w, r, map[string]string{"date": "must be a YYYY-MM-DD date"})
		return
	}

	ev, celebration, err := a.schedules.ToggleDone(r.Context(), chi.URLParam(r, "id"), date, req.Done)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	resp := &scheduleToggleResp{Schedule: ev, Celebration: celebration}
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) scheduleMonthHandler(w http.ResponseWriter, r *http.Request) {
	anchor, err := a.monthParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	view, err := a.schedules.Month(r.Context(), anchor, a.today())
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, view, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) scheduleHistoryHandler(w http.ResponseWriter, r *http.Request) {
	items, err := a.schedules.History(r.Context())
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, items, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// exportSchedulesHandler renders into a buffer first so a failed export
// still gets a JSON error instead of a truncated calendar.
func (a *Api) exportSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	buf := &bytes.Buffer{}
	if err := a.schedules.ExportICS(r.Context(), buf); err != nil {
		a.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="liferabbit.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
