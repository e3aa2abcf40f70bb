package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/models"
	"github.com/sbilibin2017/cultureschool-backend/internal/services"
)

//go:generate mockgen -source=link.go -destination=link_mock.go -package=handlers

// LinkCreator creates media links.
type LinkCreator interface {
	CreateLink(ctx context.Context, slug, targetURL, ownerEmail, mediaType string) (*models.MediaLink, error)
}

// LinkResolver resolves media links.
type LinkResolver interface {
	Resolve(ctx context.Context, slug string) (*models.MediaLink, error)
}

// LinkOpener opens the origin of a media link.
type LinkOpener interface {
	Open(ctx context.Context, slug string) (*services.Origin, error)
}

// LandingPageRenderer renders the sharing page of a media link.
type LandingPageRenderer interface {
	RenderLandingPage(ctx context.Context, slug string, w io.Writer) error
}

// CreateLinkRequest represents the JSON body for creating a media link
// swagger:model CreateLinkRequest
type CreateLinkRequest struct {
	// Unique short key
	// required: true
	Slug string `json:"slug" validate:"required"`

	// Origin of the media
	// required: true
	TargetURL string `json:"target_url" validate:"required"`

	// Creator
	OwnerEmail string `json:"owner_email"`

	// image (default) or video
	MediaType string `json:"media_type"`
}

const notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Not found</title></head>
<body><h1>Media not found</h1></body>
</html>
`

// NewCreateLinkHandler creates a media link.
// @Summary Create media link
// @Tags links
// @Accept json
// @Produce json
// @Param request body handlers.CreateLinkRequest true "Link"
// @Success 201 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse "Slug taken or store failure"
// @Router /api/links [post]
func NewCreateLinkHandler(svc LinkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateLinkRequest
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, err)
			return
		}

		link, err := svc.CreateLink(r.Context(), req.Slug, req.TargetURL, req.OwnerEmail, req.MediaType)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, link)
	}
}

// NewResolveLinkHandler returns the link of a slug.
// @Summary Resolve media link
// @Tags links
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} handlers.Response
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/links/{slug} [get]
func NewResolveLinkHandler(svc LinkResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link, err := svc.Resolve(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, link)
	}
}

// flushWriter pushes every chunk to the client as soon as it is written.
type flushWriter struct {
	w  io.Writer
	rc *http.ResponseController
}

func (f flushWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err == nil {
		_ = f.rc.Flush()
	}
	return n, err
}

// NewStreamLinkHandler streams the target of a slug with the origin's
// content type. A failure after the first byte aborts the connection.
// @Summary Stream media
// @Tags links
// @Produce octet-stream
// @Param slug path string true "Slug"
// @Success 200 {file} file
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse "Origin fetch failed"
// @Router /link/{slug} [get]
func NewStreamLinkHandler(svc LinkOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		origin, err := svc.Open(r.Context(), slug)
		if err != nil {
			writeError(w, err)
			return
		}
		defer origin.Body.Close()

		if origin.ContentType != "" {
			w.Header().Set("Content-Type", origin.ContentType)
		}
		if origin.ContentLength >= 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(origin.ContentLength, 10))
		}
		w.WriteHeader(http.StatusOK)

		n, err := io.Copy(flushWriter{w: w, rc: http.NewResponseController(w)}, origin.Body)
		if err != nil {
			logger.Log.Errorw("media stream interrupted", "slug", slug, "bytes", n, "error", err)
			panic(http.ErrAbortHandler)
		}
	}
}

// NewLandingPageHandler renders the sharing page of a slug.
// @Summary Media landing page
// @Tags links
// @Produce html
// @Param slug path string true "Slug"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "HTML page"
// @Router /m/{slug} [get]
func NewLandingPageHandler(svc LandingPageRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		var buf bytes.Buffer
		err := svc.RenderLandingPage(r.Context(), slug, &buf)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		switch {
		case err == nil:
			w.WriteHeader(http.StatusOK)
			_, _ = buf.WriteTo(w)
		case errors.Is(err, services.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, notFoundPage)
		default:
			logger.Log.Errorw("failed to render landing page", "slug", slug, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "<!DOCTYPE html><html><body><h1>Something went wrong</h1></body></html>\n")
		}
	}
}
