package api

import (
	"errors"
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/model"
)

var errBadGoalID = errors.New("invalid goal id")

func (a *Api) listGoalsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := a.goals.ListGoals(r.Context())
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToGoalListResp(list), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

type goalCreateReq struct {
	Title        string `json:"title"`
	AnnualIncome int64  `json:"annualIncome"`
}

func (a *Api) createGoalHandler(w http.ResponseWriter, r *http.Request) {
	req := &goalCreateReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	list, err := a.goals.CreateGoal(r.Context(), &model.GoalCreate{
		Title:        req.Title,
		AnnualIncome: req.AnnualIncome,
	})
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, mapToGoalListResp(list), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getGoalHandler(w http.ResponseWriter, r *http.Request) {
	goalID, ok := idParam(r, "goalID")
	if !ok {
		a.badRequestResponse(w, r, errBadGoalID)
		return
	}

	detail, err := a.goals.GoalDetail(r.Context(), goalID)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToGoalDetailResp(detail), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) achieveGoalHandler(w http.ResponseWriter, r *http.Request) {
	goalID, ok := idParam(r, "goalID")
	if !ok {
		a.badRequestResponse(w, r, errBadGoalID)
		return
	}

	detail, err := a.goals.AchieveGoal(r.Context(), goalID)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToGoalDetailResp(detail), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) listTasksHandler(w http.ResponseWriter, r *http.Request) {
	goalID, ok := idParam(r, "goalID")
	if !ok {
		a.badRequestResponse(w, r, errBadGoalID)
		return
	}

	tasks, err := a.goals.ListTasks(r.Context(), goalID)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	resp := mapSlice(tasks, mapToTaskResp)
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) addTaskHandler(w http.ResponseWriter, r *http.Request) {
	goalID, ok := idParam(r, "goalID")
	if !ok {
		a.badRequestResponse(w, r, errBadGoalID)
		return
	}

	req := &struct {
		Title string `json:"title"`
	}{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	detail, err := a.goals.AddTask(r.Context(), goalID, req.Title)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, mapToGoalDetailResp(detail), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	goalID, ok := idParam(r, "goalID")
	if !ok {
		a.badRequestResponse(w, r, errBadGoalID)
		return
	}

	taskID, ok := idParam(r, "taskID")
	if !ok {
		a.badRequestResponse(w, r, errBadTaskID)
		return
	}

	detail, err := a.goals.DeleteTask(r.Context(), goalID, taskID)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToGoalDetailResp(detail), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
