package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
	"github.com/sbilibin2017/cultureschool-backend/internal/services"
)

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=handlers

const maxUploadSize = 32 << 20

// MediaItemSaver stores media items outside of boards.
type MediaItemSaver interface {
	SaveMediaItem(ctx context.Context, u models.MediaUpload) (*models.MediaUpload, error)
}

// InspirationSaver stores collected inspirations.
type InspirationSaver interface {
	SaveInspiration(ctx context.Context, u models.MediaUpload) (*models.MediaUpload, error)
}

// MediaLister lists the media a user saved outside of boards.
type MediaLister interface {
	ListMedia(ctx context.Context, email string) ([]models.MediaUpload, error)
}

// Uploader stores uploaded files.
type Uploader interface {
	Upload(ctx context.Context, email, boardID string, file services.File) (*services.UploadResult, error)
}

// SaveMediaItemRequest represents the JSON body for saving a media item
// swagger:model SaveMediaItemRequest
type SaveMediaItemRequest struct {
	// required: true
	Email string `json:"email" validate:"required"`
	// required: true
	URL       string        `json:"url" validate:"required"`
	Caption   *string       `json:"caption"`
	Title     *string       `json:"title"`
	Mood      *string       `json:"mood"`
	Reactions models.Fields `json:"reactions"`
}

func (req SaveMediaItemRequest) upload() models.MediaUpload {
	return models.MediaUpload{
		Email:     req.Email,
		URL:       req.URL,
		Caption:   req.Caption,
		Title:     req.Title,
		Mood:      req.Mood,
		Reactions: req.Reactions,
	}
}

// NewSaveMediaItemHandler saves a media item.
// @Summary Save media item
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body handlers.SaveMediaItemRequest true "Media item"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/save-media-item [post]
func NewSaveMediaItemHandler(svc MediaItemSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveMediaItemRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		saved, err := svc.SaveMediaItem(r.Context(), req.upload())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// NewSaveInspirationHandler saves an inspiration. Saving the same url again
// updates it.
// @Summary Save inspiration
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body handlers.SaveMediaItemRequest true "Inspiration"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/save-inspiration [post]
func NewSaveInspirationHandler(svc InspirationSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveMediaItemRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		saved, err := svc.SaveInspiration(r.Context(), req.upload())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// NewUploadMediaHandler stores a multipart file upload.
// @Summary Upload media
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param email formData string true "Owner email"
// @Param boardId formData string false "Board to append the file to"
// @Param file formData file true "Media file"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/upload-media [post]
func NewUploadMediaHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			writeError(w, fmt.Errorf("%w: invalid upload: %v", services.ErrValidation, err))
			return
		}

		f, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, fmt.Errorf("%w: missing file", services.ErrValidation))
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := svc.Upload(r.Context(), r.FormValue("email"), r.FormValue("boardId"), services.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, res)
	}
}

// NewGetMediaHandler lists saved media items and inspirations newest first.
// @Summary List saved media
// @Tags uploads
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/get-media [get]
func NewGetMediaHandler(svc MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uploads, err := svc.ListMedia(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, uploads)
	}
}
