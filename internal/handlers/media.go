package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=media.go -destination=media_mock.go -package=handlers

// MediaAdder appends media to a board.
type MediaAdder interface {
	AddMedia(ctx context.Context, boardID, url string, attrs models.MediaAttrs) (*models.MediaItem, error)
}

// MediaReorderer reorders the media of a board.
type MediaReorderer interface {
	Reorder(ctx context.Context, boardID string, itemIDs []string) error
}

// MediaDeleter deletes media items.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id string) error
}

// AddMediaRequest represents the JSON body for adding media to a board
// swagger:model AddMediaRequest
type AddMediaRequest struct {
	// Media location
	// required: true
	URL string `json:"url" validate:"required"`

	// Optional caption
	Caption *string `json:"caption"`

	// Optional shop link
	BuyLink *string `json:"buy_link"`

	// image (default) or video
	Type string `json:"type"`
}

// ReorderMediaRequest lists every media item of the board in the new order.
// swagger:model ReorderMediaRequest
type ReorderMediaRequest struct {
	// Media item ids, first to last
	// required: true
	ItemIDs []string `json:"item_ids" validate:"required"`
}

// ReorderMediaResponse echoes the applied order.
// swagger:model ReorderMediaResponse
type ReorderMediaResponse struct {
	BoardID string   `json:"board_id"`
	ItemIDs []string `json:"item_ids"`
}

// NewAddMediaHandler appends a media item to the end of a board.
// @Summary Add media
// @Tags media
// @Accept json
// @Produce json
// @Param id path string true "Board id"
// @Param request body handlers.AddMediaRequest true "Media"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{id}/media [post]
func NewAddMediaHandler(svc MediaAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddMediaRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		item, err := svc.AddMedia(r.Context(), chi.URLParam(r, "id"), req.URL, models.MediaAttrs{
			Caption: req.Caption,
			BuyLink: req.BuyLink,
			Type:    req.Type,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

// NewReorderMediaHandler rewrites the order of a board's media. Either every
// position is updated or none is.
// @Summary Reorder media
// @Tags media
// @Accept json
// @Produce json
// @Param id path string true "Board id"
// @Param request body handlers.ReorderMediaRequest true "New order"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{id}/media/order [put]
func NewReorderMediaHandler(svc MediaReorderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReorderMediaRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		boardID := chi.URLParam(r, "id")
		if err := svc.Reorder(r.Context(), boardID, req.ItemIDs); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ReorderMediaResponse{BoardID: boardID, ItemIDs: req.ItemIDs})
	}
}

// NewDeleteMediaHandler deletes one media item.
// @Summary Delete media
// @Tags media
// @Produce json
// @Param id path string true "Media item id"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/media/{id} [delete]
func NewDeleteMediaHandler(svc MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.DeleteMedia(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
	}
}
