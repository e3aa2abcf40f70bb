package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
	"github.com/sbilibin2017/cultureschool-backend/internal/services"
)

func TestSaveMediaItemHandlers(t *testing.T) {
	body := `{"email":"ann@example.com","url":"https://cdn.example.com/a.jpg","mood":"calm","reactions":{"love":1}}`
	want := models.MediaUpload{
		Email:     "ann@example.com",
		URL:       "https://cdn.example.com/a.jpg",
		Mood:      strPtr("calm"),
		Reactions: models.Fields{"love": float64(1)},
	}

	t.Run("media item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockMediaItemSaver(ctrl)
		svc.EXPECT().SaveMediaItem(gomock.Any(), want).Return(&want, nil)

		rr := httptest.NewRecorder()
		NewSaveMediaItemHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/save-media-item", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("inspiration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockInspirationSaver(ctrl)
		svc.EXPECT().SaveInspiration(gomock.Any(), want).Return(&want, nil)

		rr := httptest.NewRecorder()
		NewSaveInspirationHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/save-inspiration", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockInspirationSaver(ctrl)

		rr := httptest.NewRecorder()
		NewSaveInspirationHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/save-inspiration", bytes.NewBufferString(`{"email":"ann@example.com"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeResponse(t, rr).Error, "missing url")
	})
}

func TestGetMediaHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockMediaLister(ctrl)
	svc.EXPECT().ListMedia(gomock.Any(), "ann@example.com").
		Return([]models.MediaUpload{{Email: "ann@example.com"}, {Email: "ann@example.com"}}, nil)
	svc.EXPECT().ListMedia(gomock.Any(), "").
		Return(nil, fmt.Errorf("%w: missing email", services.ErrValidation))

	rr := httptest.NewRecorder()
	NewGetMediaHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/get-media?email=ann@example.com", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeResponse(t, rr).Data, 2)

	rr = httptest.NewRecorder()
	NewGetMediaHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/get-media", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func multipartUpload(t *testing.T, fields map[string]string, withFile bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withFile {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="Sunset.JPG"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadMediaHandler(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		withFile   bool
		setupMocks func(m *MockUploader)
		wantStatus int
	}{
		{
			name:     "stored",
			fields:   map[string]string{"email": "ann@example.com", "boardId": "b1"},
			withFile: true,
			setupMocks: func(m *MockUploader) {
				m.EXPECT().
					Upload(gomock.Any(), "ann@example.com", "b1", services.File{
						Name:        "Sunset.JPG",
						ContentType: "image/jpeg",
						Data:        []byte("jpeg-bytes"),
					}).
					Return(&services.UploadResult{URL: "https://storage.example.com/uploads/ann@example.com/x.jpg"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "no file part",
			fields:     map[string]string{"email": "ann@example.com"},
			setupMocks: func(m *MockUploader) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:     "storage failure",
			fields:   map[string]string{"email": "ann@example.com"},
			withFile: true,
			setupMocks: func(m *MockUploader) {
				m.EXPECT().Upload(gomock.Any(), "ann@example.com", "", gomock.Any()).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUploader(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			NewUploadMediaHandler(svc).ServeHTTP(rr, multipartUpload(t, tt.fields, tt.withFile))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUploadMediaHandler_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-media", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	NewUploadMediaHandler(NewMockUploader(ctrl)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func strPtr(s string) *string { return &s }
