package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/backend"
	"github.com/SergeyKozhin/liferabbit/internal/model"
	"github.com/SergeyKozhin/liferabbit/internal/pkg/validator"
)

func (a *Api) logError(r *http.Request, err error) {
	a.logger.Errorw("server error", "method", r.Method, "uri", r.URL.RequestURI(), "error", err)
}

func (a *Api) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	data := map[string]interface{}{"error": message}

	if err := a.writeJSON(w, status, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	a.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (a *Api) clientErrorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	a.logger.Debugw("client error", "status", status, "err", message)
	a.errorResponse(w, r, status, message)
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	a.clientErrorResponse(w, r, http.StatusNotFound, message)
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	a.clientErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (a *Api) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (a *Api) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	a.clientErrorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func (a *Api) unauthorizedResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.clientErrorResponse(w, r, http.StatusUnauthorized, err.Error())
}

func (a *Api) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logError(r, err)
	a.errorResponse(w, r, http.StatusBadGateway, "the backend returned an unexpected response")
}

// handleError maps service errors to responses. Backend errors keep their
// status and message so the user sees what the backend said.
func (a *Api) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validator.Error
	var apiErr *backend.APIError

	switch {
	case errors.As(err, &verr):
		a.failedValidationResponse(w, r, verr.Errors)
	case errors.As(err, &apiErr):
		a.clientErrorResponse(w, r, apiErr.Status, apiErr.Message)
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	case errors.Is(err, model.ErrNoSession):
		a.unauthorizedResponse(w, r, err)
	case errors.Is(err, backend.ErrInvalidPayload):
		a.badGatewayResponse(w, r, err)
	default:
		a.serverErrorResponse(w, r, err)
	}
}
