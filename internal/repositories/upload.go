package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

const uploadColumns = `id, email, url, caption, title, mood, reactions, kind, created_at`

// MediaUploadRepository stores media saved outside of boards.
type MediaUploadRepository struct {
	db *sqlx.DB
}

func NewMediaUploadRepository(db *sqlx.DB) *MediaUploadRepository {
	return &MediaUploadRepository{db: db}
}

// Insert stores the upload as a new row. Media items may repeat a url.
func (r *MediaUploadRepository) Insert(ctx context.Context, u models.MediaUpload) (*models.MediaUpload, error) {
	query := `
		INSERT INTO media_uploads (id, email, url, caption, title, mood, reactions, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING ` + uploadColumns
	args := []any{u.ID, u.Email, u.URL, u.Caption, u.Title, u.Mood, u.Reactions, u.Kind}

	var out models.MediaUpload
	err := r.db.GetContext(ctx, &out, query, args...)
	logQuery(query, args, out.ID, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Upsert stores an inspiration keyed by (email, url). Saving the same url
// again updates its caption, title and mood and merges reactions.
func (r *MediaUploadRepository) Upsert(ctx context.Context, u models.MediaUpload) (*models.MediaUpload, error) {
	query := `
		INSERT INTO media_uploads (id, email, url, caption, title, mood, reactions, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'inspiration', NOW())
		ON CONFLICT (email, url) WHERE kind = 'inspiration' DO UPDATE
		SET caption = COALESCE(EXCLUDED.caption, media_uploads.caption),
		    title = COALESCE(EXCLUDED.title, media_uploads.title),
		    mood = COALESCE(EXCLUDED.mood, media_uploads.mood),
		    reactions = media_uploads.reactions || EXCLUDED.reactions
		RETURNING ` + uploadColumns
	args := []any{u.ID, u.Email, u.URL, u.Caption, u.Title, u.Mood, u.Reactions}

	var out models.MediaUpload
	err := r.db.GetContext(ctx, &out, query, args...)
	logQuery(query, args, out.ID, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByEmail returns the uploads of one user, newest first.
func (r *MediaUploadRepository) ListByEmail(ctx context.Context, email string) ([]models.MediaUpload, error) {
	query := `
		SELECT ` + uploadColumns + `
		FROM media_uploads
		WHERE email = $1
		ORDER BY created_at DESC, id`

	uploads := []models.MediaUpload{}
	err := r.db.SelectContext(ctx, &uploads, query, email)
	logQuery(query, []any{email}, len(uploads), err)
	return uploads, err
}
