package api

import (
	"errors"
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/model"
)

var errBadTaskID = errors.New("invalid task id")

func (a *Api) completeTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, ok := idParam(r, "taskID")
	if !ok {
		a.badRequestResponse(w, r, errBadTaskID)
		return
	}

	req := &struct {
		GoalID int64 `json:"goalId"`
	}{}
	if err := a.readOptionalJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	res, err := a.goals.CompleteTask(r.Context(), req.GoalID, taskID)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToTaskCompletionResp(res), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) setTaskTagsHandler(w http.ResponseWriter, r *http.Request) {
	taskID, ok := idParam(r, "taskID")
	if !ok {
		a.badRequestResponse(w, r, errBadTaskID)
		return
	}

	req := &struct {
		TagIDs []int64 `json:"tagIds"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.goals.SetTaskTags(r.Context(), taskID, req.TagIDs); err != nil {
		a.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) listTagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := a.goals.ListTags(r.Context())
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	a.writeTags(w, r, http.StatusOK, tags)
}

func (a *Api) createTagHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	tags, err := a.goals.CreateTag(r.Context(), req.Name, req.Color)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	a.writeTags(w, r, http.StatusCreated, tags)
}

func (a *Api) writeTags(w http.ResponseWriter, r *http.Request, status int, tags []*model.Tag) {
	resp := mapSlice(tags, mapToTagResp)
	if err := a.writeJSON(w, status, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
