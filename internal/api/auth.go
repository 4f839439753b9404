package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyKozhin/liferabbit/internal/backend"
	"github.com/SergeyKozhin/liferabbit/internal/pkg/validator"
)

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *Api) readCredentials(w http.ResponseWriter, r *http.Request) (*credentialsReq, bool) {
	req := &credentialsReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return nil, false
	}

	req.Email = strings.TrimSpace(req.Email)

	v := validator.New()
	v.Check(req.Email != "", "email", "must be provided")
	v.Check(req.Email == "" || validator.Matches(req.Email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(req.Password != "", "password", "must be provided")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return nil, false
	}

	return req, true
}

// registerHandler creates the account and logs straight in.
func (a *Api) registerHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := a.readCredentials(w, r)
	if !ok {
		return
	}

	if _, err := a.accounts.Register(r.Context(), req.Email, req.Password); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			a.clientErrorResponse(w, r, http.StatusConflict, "this email is already registered, please log in")
			return
		}
		a.handleError(w, r, err)
		return
	}

	a.login(w, r, req, http.StatusCreated)
}

func (a *Api) loginHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := a.readCredentials(w, r)
	if !ok {
		return
	}

	a.login(w, r, req, http.StatusOK)
}

func (a *Api) login(w http.ResponseWriter, r *http.Request, req *credentialsReq, status int) {
	token, err := a.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		a.handleError(w, r, err)
		return
	}

	if err := a.session.Login(r.Context(), token); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	a.logger.Infow("logged in", "user", a.session.UserKey())
	a.writeSession(w, r, status)
}

func (a *Api) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.session.Logout(r.Context()); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) sessionHandler(w http.ResponseWriter, r *http.Request) {
	a.writeSession(w, r, http.StatusOK)
}

func (a *Api) writeSession(w http.ResponseWriter, r *http.Request, status int) {
	resp := &struct {
		LoggedIn bool   `json:"loggedIn"`
		User     string `json:"user,omitempty"`
	}{
		LoggedIn: a.session.LoggedIn(),
		User:     a.session.UserKey(),
	}

	if err := a.writeJSON(w, status, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
