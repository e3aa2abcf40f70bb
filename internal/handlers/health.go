package handlers

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks that the document store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRootHandler returns the liveness banner.
// @Summary Liveness
// @Tags health
// @Produce plain
// @Success 200 {string} string "CultureSchool backend is running!"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("CultureSchool backend is running!"))
	}
}

// NewTestConnectionHandler reports whether the document store answers.
// @Summary Test store connection
// @Tags health
// @Produce json
// @Success 200 {object} handlers.Response
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/test-connection [get]
func NewTestConnectionHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, "store connected")
	}
}
