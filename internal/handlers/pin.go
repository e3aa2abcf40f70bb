package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=pin.go -destination=pin_mock.go -package=handlers

// PinSaver stores pins.
type PinSaver interface {
	Pin(ctx context.Context, pin models.Pin) (*models.Pin, error)
}

// PinLister lists pins.
type PinLister interface {
	ListPins(ctx context.Context, email, boardID string) ([]models.Pin, error)
}

// PinReactor records reactions to pins.
type PinReactor interface {
	React(ctx context.Context, email, pinID, reactionType string) (*models.PinReaction, error)
}

// PinItemRequest represents the JSON body for pinning an item
// swagger:model PinItemRequest
type PinItemRequest struct {
	// required: true
	Email       string      `json:"email" validate:"required"`
	Title       *string     `json:"title"`
	ImageURL    *string     `json:"imageUrl"`
	SourceURL   *string     `json:"sourceUrl"`
	Description *string     `json:"description"`
	Tags        models.Tags `json:"tags"`
	Mood        *string     `json:"mood"`
	BoardID     *uuid.UUID  `json:"boardId"`
}

// ReactToPinRequest represents the JSON body for reacting to a pin
// swagger:model ReactToPinRequest
type ReactToPinRequest struct {
	// required: true
	Email string `json:"email" validate:"required"`
	// required: true
	PinID string `json:"pinId" validate:"required"`
	// required: true
	ReactionType string `json:"reactionType" validate:"required"`
}

// NewPinItemHandler saves a pinned item.
// @Summary Pin item
// @Tags pins
// @Accept json
// @Produce json
// @Param request body handlers.PinItemRequest true "Pin"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/pin-item [post]
func NewPinItemHandler(svc PinSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PinItemRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		pin, err := svc.Pin(r.Context(), models.Pin{
			Email:       req.Email,
			Title:       req.Title,
			ImageURL:    req.ImageURL,
			SourceURL:   req.SourceURL,
			Description: req.Description,
			Tags:        req.Tags,
			Mood:        req.Mood,
			BoardID:     req.BoardID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pin)
	}
}

// NewGetPinsHandler lists pins newest first.
// @Summary List pins
// @Tags pins
// @Produce json
// @Param email query string false "Owner email"
// @Param boardId query string false "Board id"
// @Success 200 {object} handlers.Response
// @Router /api/get-pins [get]
func NewGetPinsHandler(svc PinLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		pins, err := svc.ListPins(r.Context(), q.Get("email"), q.Get("boardId"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pins)
	}
}

// NewReactToPinHandler records a user's reaction to a pin.
// @Summary React to pin
// @Tags pins
// @Accept json
// @Produce json
// @Param request body handlers.ReactToPinRequest true "Reaction"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/react-to-pin [post]
func NewReactToPinHandler(svc PinReactor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReactToPinRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		reaction, err := svc.React(r.Context(), req.Email, req.PinID, req.ReactionType)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reaction)
	}
}
