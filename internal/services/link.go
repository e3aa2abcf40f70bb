package services

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=link.go -destination=link_mock.go -package=services

// LinkWriter stores new media links.
type LinkWriter interface {
	Insert(ctx context.Context, link models.MediaLink) (*models.MediaLink, error)
}

// LinkReader resolves media links from the store.
type LinkReader interface {
	GetBySlug(ctx context.Context, slug string) (*models.MediaLink, error)
}

// LinkCache caches resolved media links.
type LinkCache interface {
	Get(ctx context.Context, slug string) (*models.MediaLink, error)
	Set(ctx context.Context, link models.MediaLink) error
}

// HTTPDoer performs origin requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Origin is an open response from the origin of a media link.
type Origin struct {
	ContentType   string
	ContentLength int64 // -1 when unknown
	Body          io.ReadCloser
}

var landingPage = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta property="og:title" content="{{.Title}}">
<meta property="og:type" content="{{.OGType}}">
<meta property="og:url" content="{{.PageURL}}">
<meta property="og:image" content="{{.StreamURL}}">
{{- if .IsVideo}}
<meta property="og:video" content="{{.StreamURL}}">
{{- end}}
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:image" content="{{.StreamURL}}">
<meta name="twitter:title" content="{{.Title}}">
</head>
<body>
{{- if .IsVideo}}
<video src="{{.StreamURL}}" controls autoplay muted playsinline></video>
{{- else}}
<img src="{{.StreamURL}}" alt="{{.Title}}">
{{- end}}
</body>
</html>
`))

type landingData struct {
	Title     string
	OGType    string
	PageURL   string
	StreamURL string
	IsVideo   bool
}

// LinkService creates, resolves, proxies and presents media links.
type LinkService struct {
	writer    LinkWriter
	reader    LinkReader
	cache     LinkCache
	client    HTTPDoer
	publisher Publisher
	publicURL string
}

// NewLinkService creates a LinkService. publicURL prefixes the URLs placed in
// landing pages; empty keeps them relative.
func NewLinkService(
	writer LinkWriter,
	reader LinkReader,
	cache LinkCache,
	client HTTPDoer,
	publisher Publisher,
	publicURL string,
) *LinkService {
	return &LinkService{
		writer:    writer,
		reader:    reader,
		cache:     cache,
		client:    client,
		publisher: publisher,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// CreateLink stores a new link. Any media type other than video is stored as
// image. A taken slug is reported by the store.
func (s *LinkService) CreateLink(ctx context.Context, slug, targetURL, ownerEmail, mediaType string) (*models.MediaLink, error) {
	if err := required("slug", slug, "target_url", targetURL); err != nil {
		return nil, err
	}
	if mediaType != models.MediaTypeVideo {
		mediaType = models.MediaTypeImage
	}

	link, err := s.writer.Insert(ctx, models.MediaLink{
		Slug:       slug,
		TargetURL:  targetURL,
		OwnerEmail: ownerEmail,
		MediaType:  mediaType,
	})
	if err != nil {
		logger.Log.Errorw("failed to create link", "slug", slug, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, *link); err != nil {
			logger.Log.Errorw("failed to cache link", "slug", slug, "error", err)
		}
	}
	if s.publisher != nil {
		s.publisher.Publish(ctx, models.EventLinkCreated, link.Slug, link)
	}
	return link, nil
}

// Resolve returns the link for slug, from cache when possible.
func (s *LinkService) Resolve(ctx context.Context, slug string) (*models.MediaLink, error) {
	if err := required("slug", slug); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if link, err := s.cache.Get(ctx, slug); err == nil {
			return link, nil
		}
	}

	link, err := s.reader.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, "link", slug)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, *link); err != nil {
			logger.Log.Errorw("failed to cache link", "slug", slug, "error", err)
		}
	}
	return link, nil
}

// Open resolves slug and starts fetching its target. The caller must close
// Origin.Body. ctx bounds the whole transfer.
func (s *LinkService) Open(ctx context.Context, slug string) (*Origin, error) {
	link, err := s.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.TargetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProxy, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Log.Errorw("origin fetch failed", "slug", slug, "target", link.TargetURL, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProxy, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		logger.Log.Errorw("origin returned error status", "slug", slug, "target", link.TargetURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: origin responded %s", ErrProxy, resp.Status)
	}

	return &Origin{
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}

// RenderLandingPage writes the sharing page of slug to w.
func (s *LinkService) RenderLandingPage(ctx context.Context, slug string, w io.Writer) error {
	link, err := s.Resolve(ctx, slug)
	if err != nil {
		return err
	}

	data := landingData{
		Title:     "CultureSchool",
		OGType:    "image",
		PageURL:   s.publicURL + "/m/" + link.Slug,
		StreamURL: s.publicURL + "/link/" + link.Slug,
	}
	if link.MediaType == models.MediaTypeVideo {
		data.OGType = "video.other"
		data.IsVideo = true
	}
	return landingPage.Execute(w, data)
}
