package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=circle.go -destination=circle_mock.go -package=handlers

// CircleReader reads the shared state of a circle.
type CircleReader interface {
	Circle(ctx context.Context, groupID string) (*models.Circle, error)
}

// CirclePurger deletes every profile of a circle.
type CirclePurger interface {
	Purge(ctx context.Context, groupID string) (int64, error)
}

// FrameSettingsReader reads the profile frame settings.
type FrameSettingsReader interface {
	FrameSettings(ctx context.Context) (any, error)
}

// PurgeCircleRequest names the circle to purge.
// swagger:model PurgeCircleRequest
type PurgeCircleRequest struct {
	// Invite code of the circle
	// required: true
	GroupID string `json:"group_id" validate:"required"`
}

// PurgeCircleResponse reports how many profiles were removed.
// swagger:model PurgeCircleResponse
type PurgeCircleResponse struct {
	Deleted int64 `json:"deleted"`
}

// NewGetCircleHandler returns the lists shared by a circle.
// @Summary Get circle
// @Tags circles
// @Produce json
// @Param group_id query string true "Invite code"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/get-circle-from-supabase [get]
func NewGetCircleHandler(svc CircleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		circle, err := svc.Circle(r.Context(), r.URL.Query().Get("group_id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, circle)
	}
}

// NewPurgeCircleHandler deletes every profile carrying the invite code.
// @Summary Purge circle
// @Tags circles
// @Accept json
// @Produce json
// @Param request body handlers.PurgeCircleRequest true "Circle"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/delete-all-circle-messages [post]
func NewPurgeCircleHandler(svc CirclePurger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurgeCircleRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		n, err := svc.Purge(r.Context(), req.GroupID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, PurgeCircleResponse{Deleted: n})
	}
}

// NewFrameSettingsHandler returns the profile frame settings.
// @Summary Get frame settings
// @Tags settings
// @Produce json
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/get-frame-settings [get]
func NewFrameSettingsHandler(svc FrameSettingsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := svc.FrameSettings(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, value)
	}
}
