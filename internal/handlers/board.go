package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
	"github.com/sbilibin2017/cultureschool-backend/internal/services"
)

//go:generate mockgen -source=board.go -destination=board_mock.go -package=handlers

// BoardCreator creates boards.
type BoardCreator interface {
	Create(ctx context.Context, ownerEmail, title string, attrs models.BoardAttrs) (*models.Board, error)
}

// BoardGetter reads one board with its media.
type BoardGetter interface {
	Get(ctx context.Context, id string) (*models.BoardWithMedia, error)
}

// BoardLister lists the boards of a user.
type BoardLister interface {
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Board, error)
}

// GalleryLister lists public boards.
type GalleryLister interface {
	ListPublicGallery(ctx context.Context) ([]models.Board, error)
}

// BoardUpdater applies partial board updates.
type BoardUpdater interface {
	Update(ctx context.Context, id string, patch models.BoardPatch) (*models.Board, error)
}

// BoardDeleter deletes boards.
type BoardDeleter interface {
	Delete(ctx context.Context, id string, cascade bool) error
}

// CreateBoardRequest represents the JSON body for creating a board
// swagger:model CreateBoardRequest
type CreateBoardRequest struct {
	// Owner email
	// required: true
	Email string `json:"email" validate:"required"`

	// Board title, the slug is derived from it
	// required: true
	// default: My Cool Board
	Title string `json:"title" validate:"required"`

	// Listed in the public gallery
	IsPublic bool `json:"is_public"`

	// Cover image URL
	Cover *string `json:"cover"`

	// Labels
	Tags models.Tags `json:"tags"`

	// Theme name
	Theme *string `json:"theme"`
}

// DeleteBoardResponse confirms a deletion.
// swagger:model DeleteBoardResponse
type DeleteBoardResponse struct {
	ID      string `json:"id"`
	Cascade bool   `json:"cascade"`
}

// NewCreateBoardHandler creates a board.
// @Summary Create board
// @Tags boards
// @Accept json
// @Produce json
// @Param request body handlers.CreateBoardRequest true "Board"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/boards [post]
func NewCreateBoardHandler(svc BoardCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBoardRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		board, err := svc.Create(r.Context(), req.Email, req.Title, models.BoardAttrs{
			IsPublic: req.IsPublic,
			Cover:    req.Cover,
			Tags:     req.Tags,
			Theme:    req.Theme,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, board)
	}
}

// NewListBoardsHandler lists the boards of the email query parameter.
// @Summary List boards of a user
// @Tags boards
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/boards [get]
func NewListBoardsHandler(svc BoardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boards, err := svc.ListByOwner(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, boards)
	}
}

// NewGetBoardHandler returns a board with its ordered media.
// @Summary Get board
// @Tags boards
// @Produce json
// @Param id path string true "Board id"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{id} [get]
func NewGetBoardHandler(svc BoardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}

// NewUpdateBoardHandler applies the fields present in the body. A field
// sent as null is cleared; a field left out is kept.
// @Summary Update board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path string true "Board id"
// @Param request body models.BoardPatch true "Fields to change"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{id} [patch]
func NewUpdateBoardHandler(svc BoardUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.BoardPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, err)
			return
		}

		board, err := svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}

// NewDeleteBoardHandler deletes a board. Its media are kept unless
// cascade=true.
// @Summary Delete board
// @Tags boards
// @Produce json
// @Param id path string true "Board id"
// @Param cascade query bool false "Also delete the board's media"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/boards/{id} [delete]
func NewDeleteBoardHandler(svc BoardDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		cascade := false
		if raw := r.URL.Query().Get("cascade"); raw != "" {
			var err error
			if cascade, err = strconv.ParseBool(raw); err != nil {
				writeError(w, fmt.Errorf("%w: invalid cascade %q", services.ErrValidation, raw))
				return
			}
		}

		if err := svc.Delete(r.Context(), id, cascade); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, DeleteBoardResponse{ID: id, Cascade: cascade})
	}
}

// NewGalleryHandler lists public boards, most recently updated first.
// @Summary Public gallery
// @Tags boards
// @Produce json
// @Success 200 {object} handlers.Response
// @Router /api/gallery [get]
func NewGalleryHandler(svc GalleryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boards, err := svc.ListPublicGallery(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, boards)
	}
}
