package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

func TestPinItemHandler(t *testing.T) {
	boardID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setupMocks func(m *MockPinSaver)
		wantStatus int
	}{
		{
			name: "pinned",
			body: `{"email":"ann@example.com","imageUrl":"https://cdn.example.com/a.jpg","boardId":"` + boardID.String() + `","tags":["warm"]}`,
			setupMocks: func(m *MockPinSaver) {
				m.EXPECT().Pin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, p models.Pin) (*models.Pin, error) {
						assert.Equal(t, "ann@example.com", p.Email)
						assert.Equal(t, "https://cdn.example.com/a.jpg", *p.ImageURL)
						assert.Equal(t, boardID, *p.BoardID)
						assert.Equal(t, models.Tags{"warm"}, p.Tags)
						p.ID = uuid.New()
						return &p, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing email",
			body:       `{"imageUrl":"https://cdn.example.com/a.jpg"}`,
			setupMocks: func(m *MockPinSaver) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed board id",
			body:       `{"email":"ann@example.com","boardId":"not-a-uuid"}`,
			setupMocks: func(m *MockPinSaver) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockPinSaver(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			NewPinItemHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/pin-item", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestGetPinsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPinLister(ctrl)
	svc.EXPECT().ListPins(gomock.Any(), "ann@example.com", "b1").Return([]models.Pin{{Email: "ann@example.com"}}, nil)

	rr := httptest.NewRecorder()
	NewGetPinsHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/get-pins?email=ann@example.com&boardId=b1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeResponse(t, rr).Data, 1)
}

func TestReactToPinHandler(t *testing.T) {
	pinID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setupMocks func(m *MockPinReactor)
		wantStatus int
		wantError  string
	}{
		{
			name: "reacted",
			body: `{"email":"ann@example.com","pinId":"` + pinID.String() + `","reactionType":"love"}`,
			setupMocks: func(m *MockPinReactor) {
				m.EXPECT().React(gomock.Any(), "ann@example.com", pinID.String(), "love").
					Return(&models.PinReaction{PinID: pinID, Email: "ann@example.com", ReactionType: "love"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing reaction",
			body:       `{"email":"ann@example.com","pinId":"` + pinID.String() + `"}`,
			setupMocks: func(m *MockPinReactor) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "missing reactionType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockPinReactor(ctrl)
			tt.setupMocks(svc)

			rr := httptest.NewRecorder()
			NewReactToPinHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/react-to-pin", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Contains(t, decodeResponse(t, rr).Error, tt.wantError)
			}
		})
	}
}
