package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
	"github.com/sbilibin2017/cultureschool-backend/internal/repositories"
)

type linkMocks struct {
	writer    *MockLinkWriter
	reader    *MockLinkReader
	cache     *MockLinkCache
	client    *MockHTTPDoer
	publisher *MockPublisher
}

func newLinkService(ctrl *gomock.Controller, publicURL string) (*LinkService, linkMocks) {
	m := linkMocks{
		writer:    NewMockLinkWriter(ctrl),
		reader:    NewMockLinkReader(ctrl),
		cache:     NewMockLinkCache(ctrl),
		client:    NewMockHTTPDoer(ctrl),
		publisher: NewMockPublisher(ctrl),
	}
	return NewLinkService(m.writer, m.reader, m.cache, m.client, m.publisher, publicURL), m
}

func TestLinkService_CreateLink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		slug      string
		target    string
		mediaType string
		setup     func(m linkMocks)
		wantErr   error
		wantType  string
	}{
		{
			name:    "missing slug",
			target:  "https://cdn/x.png",
			setup:   func(m linkMocks) {},
			wantErr: ErrValidation,
		},
		{
			name:    "missing target",
			slug:    "s",
			setup:   func(m linkMocks) {},
			wantErr: ErrValidation,
		},
		{
			name:      "unknown media type falls back to image",
			slug:      "s",
			target:    "https://cdn/x",
			mediaType: "audio",
			setup: func(m linkMocks) {
				link := &models.MediaLink{Slug: "s", TargetURL: "https://cdn/x", MediaType: models.MediaTypeImage}
				m.writer.EXPECT().Insert(ctx, models.MediaLink{Slug: "s", TargetURL: "https://cdn/x", MediaType: models.MediaTypeImage}).Return(link, nil)
				m.cache.EXPECT().Set(ctx, *link).Return(nil)
				m.publisher.EXPECT().Publish(ctx, models.EventLinkCreated, "s", link)
			},
			wantType: models.MediaTypeImage,
		},
		{
			name:   "defaults to image",
			slug:   "s",
			target: "https://cdn/x.png",
			setup: func(m linkMocks) {
				link := &models.MediaLink{Slug: "s", TargetURL: "https://cdn/x.png", MediaType: models.MediaTypeImage}
				m.writer.EXPECT().Insert(ctx, models.MediaLink{Slug: "s", TargetURL: "https://cdn/x.png", MediaType: models.MediaTypeImage}).Return(link, nil)
				m.cache.EXPECT().Set(ctx, *link).Return(nil)
				m.publisher.EXPECT().Publish(ctx, models.EventLinkCreated, "s", link)
			},
			wantType: models.MediaTypeImage,
		},
		{
			name:      "duplicate slug surfaces store error",
			slug:      "s",
			target:    "https://cdn/x.png",
			mediaType: models.MediaTypeVideo,
			setup: func(m linkMocks) {
				m.writer.EXPECT().Insert(ctx, gomock.Any()).Return(nil, errors.New("duplicate key value violates unique constraint"))
			},
			wantErr: errors.New("duplicate key value violates unique constraint"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newLinkService(ctrl, "")
			tt.setup(m)

			link, err := svc.CreateLink(ctx, tt.slug, tt.target, "", tt.mediaType)
			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrValidation) {
					assert.ErrorIs(t, err, ErrValidation)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, link.MediaType)
		})
	}
}

func TestLinkService_Resolve(t *testing.T) {
	ctx := context.Background()
	link := &models.MediaLink{Slug: "s", TargetURL: "https://cdn/x.png"}

	t.Run("cache hit skips store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLinkService(ctrl, "")

		m.cache.EXPECT().Get(ctx, "s").Return(link, nil)

		got, err := svc.Resolve(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, link.TargetURL, got.TargetURL)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLinkService(ctrl, "")

		gomock.InOrder(
			m.cache.EXPECT().Get(ctx, "s").Return(nil, repositories.ErrCacheMiss),
			m.reader.EXPECT().GetBySlug(ctx, "s").Return(link, nil),
			m.cache.EXPECT().Set(ctx, *link).Return(errors.New("redis down")),
		)

		got, err := svc.Resolve(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, link.TargetURL, got.TargetURL)
	})

	t.Run("unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLinkService(ctrl, "")

		m.cache.EXPECT().Get(ctx, "nope").Return(nil, repositories.ErrCacheMiss)
		m.reader.EXPECT().GetBySlug(ctx, "nope").Return(nil, sql.ErrNoRows)

		_, err := svc.Resolve(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLinkService_Open(t *testing.T) {
	ctx := context.Background()
	link := &models.MediaLink{Slug: "s", TargetURL: "https://cdn/x.mp4"}

	tests := []struct {
		name    string
		resp    *http.Response
		err     error
		wantErr error
	}{
		{
			name: "streams origin",
			resp: &http.Response{
				StatusCode:    http.StatusOK,
				Status:        "200 OK",
				Header:        http.Header{"Content-Type": []string{"video/mp4"}},
				ContentLength: 5,
				Body:          io.NopCloser(strings.NewReader("bytes")),
			},
		},
		{
			name:    "transport failure",
			err:     errors.New("dial tcp: connection refused"),
			wantErr: ErrProxy,
		},
		{
			name: "origin error status",
			resp: &http.Response{
				StatusCode: http.StatusNotFound,
				Status:     "404 Not Found",
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader("")),
			},
			wantErr: ErrProxy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newLinkService(ctrl, "")

			m.cache.EXPECT().Get(ctx, "s").Return(link, nil)
			m.client.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, link.TargetURL, req.URL.String())
				return tt.resp, tt.err
			})

			origin, err := svc.Open(ctx, "s")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer origin.Body.Close()

			assert.Equal(t, "video/mp4", origin.ContentType)
			assert.Equal(t, int64(5), origin.ContentLength)
			body, err := io.ReadAll(origin.Body)
			require.NoError(t, err)
			assert.Equal(t, "bytes", string(body))
		})
	}
}

func TestLinkService_RenderLandingPage(t *testing.T) {
	ctx := context.Background()

	t.Run("video", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLinkService(ctrl, "https://share.example.com/")

		m.cache.EXPECT().Get(ctx, "clip").Return(&models.MediaLink{Slug: "clip", MediaType: models.MediaTypeVideo}, nil)

		var buf bytes.Buffer
		require.NoError(t, svc.RenderLandingPage(ctx, "clip", &buf))
		html := buf.String()
		assert.Contains(t, html, `<meta property="og:type" content="video.other">`)
		assert.Contains(t, html, `<video src="https://share.example.com/link/clip"`)
		assert.Contains(t, html, `<meta property="og:image" content="https://share.example.com/link/clip">`)
		assert.Contains(t, html, `<meta property="og:video" content="https://share.example.com/link/clip">`)
		assert.Contains(t, html, `<meta name="twitter:card" content="summary_large_image">`)
		assert.NotContains(t, html, `content="player"`)
		assert.NotContains(t, html, "<img")
	})

	t.Run("image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLinkService(ctrl, "")

		m.cache.EXPECT().Get(ctx, "pic").Return(&models.MediaLink{Slug: "pic", MediaType: models.MediaTypeImage}, nil)

		var buf bytes.Buffer
		require.NoError(t, svc.RenderLandingPage(ctx, "pic", &buf))
		html := buf.String()
		assert.Contains(t, html, `<meta property="og:image" content="/link/pic">`)
		assert.Contains(t, html, `<img src="/link/pic"`)
		assert.NotContains(t, html, "og:video")
		assert.NotContains(t, html, "<video")
	})

	t.Run("unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLinkService(ctrl, "")

		m.cache.EXPECT().Get(ctx, "nope").Return(nil, repositories.ErrCacheMiss)
		m.reader.EXPECT().GetBySlug(ctx, "nope").Return(nil, sql.ErrNoRows)

		var buf bytes.Buffer
		assert.ErrorIs(t, svc.RenderLandingPage(ctx, "nope", &buf), ErrNotFound)
		assert.Zero(t, buf.Len())
	})
}
