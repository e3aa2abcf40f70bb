package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=record.go -destination=record_mock.go -package=handlers

// RecordUpserter merges a partial document onto the record of a natural key.
type RecordUpserter interface {
	Upsert(ctx context.Context, key string, fields models.Fields) (*models.Record, error)
}

// RecordGetter reads the record of a natural key.
type RecordGetter interface {
	Get(ctx context.Context, key string) (*models.Record, error)
}

// SaveRecordRequest is a free-form document; only email is required.
// swagger:model SaveRecordRequest
type SaveRecordRequest struct {
	// Natural key of the record
	// required: true
	Email string `json:"email" validate:"required"`
}

// NewSaveRecordHandler upserts the request body onto the record keyed by its
// email field. It serves both profiles and settings.
// @Summary Save profile
// @Description Creates the profile of an email or merges the given fields onto it. Fields not sent are kept.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body handlers.SaveRecordRequest true "Profile fields, email required"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/save-to-supabase [post]
// @Router /api/save-settings [post]
func NewSaveRecordHandler(svc RecordUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields models.Fields
		if err := decodeJSON(r, &fields); err != nil {
			writeError(w, err)
			return
		}

		email, _ := fields["email"].(string)
		if err := validateStruct(SaveRecordRequest{Email: email}); err != nil {
			writeError(w, err)
			return
		}

		rec, err := svc.Upsert(r.Context(), email, fields)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// NewGetRecordHandler returns the record of the email query parameter.
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} handlers.Response
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/get-user [get]
// @Router /api/get-settings [get]
func NewGetRecordHandler(svc RecordGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}
