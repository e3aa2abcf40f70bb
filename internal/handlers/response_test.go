package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/cultureschool-backend/internal/services"
)

// withURLParams attaches chi route parameters to a request built outside a router.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: missing email", services.ErrValidation), http.StatusBadRequest},
		{"missing id", services.ErrMissingID, http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: board x", services.ErrNotFound), http.StatusNotFound},
		{"proxy", fmt.Errorf("%w: origin returned 502", services.ErrProxy), http.StatusInternalServerError},
		{"backend", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWriteError_ReportsRawMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, errors.New("duplicate key value violates unique constraint"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	resp := decodeResponse(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, "duplicate key value violates unique constraint", resp.Error)
}

func TestWriteJSON_SuccessFollowsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeResponse(t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]any{"id": "1"}, resp.Data)
}

func TestValidateStruct_ListsMissingFieldsByJSONName(t *testing.T) {
	err := validateStruct(ReactToPinRequest{Email: "ann@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "missing pinId, reactionType")

	assert.NoError(t, validateStruct(ReactToPinRequest{Email: "a", PinID: "b", ReactionType: "c"}))
}
