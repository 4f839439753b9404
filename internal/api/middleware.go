package api

import (
	"net/http"

	"github.com/SergeyKozhin/liferabbit/internal/model"
)

// auth lets a request through only while a backend session is active.
func (a *Api) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.session.LoggedIn() {
			a.unauthorizedResponse(w, r, model.ErrNoSession)
			return
		}

		next.ServeHTTP(w, r)
	})
}
