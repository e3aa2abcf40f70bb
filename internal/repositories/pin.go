package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

const pinColumns = `id, email, title, image_url, source_url, description, tags, mood, board_id, created_at`

// PinRepository stores pins and the reactions to them.
type PinRepository struct {
	db *sqlx.DB
}

func NewPinRepository(db *sqlx.DB) *PinRepository {
	return &PinRepository{db: db}
}

// Insert stores a new pin.
func (r *PinRepository) Insert(ctx context.Context, pin models.Pin) (*models.Pin, error) {
	query := `
		INSERT INTO pins (id, email, title, image_url, source_url, description, tags, mood, board_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING ` + pinColumns
	args := []any{pin.ID, pin.Email, pin.Title, pin.ImageURL, pin.SourceURL, pin.Description, pin.Tags, pin.Mood, pin.BoardID}

	var out models.Pin
	err := r.db.GetContext(ctx, &out, query, args...)
	logQuery(query, args, out.ID, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns pins matching filter, newest first.
func (r *PinRepository) List(ctx context.Context, filter models.PinFilter) ([]models.Pin, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Email != nil {
		args = append(args, *filter.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if filter.BoardID != nil {
		args = append(args, *filter.BoardID)
		conds = append(conds, fmt.Sprintf("board_id = $%d", len(args)))
	}

	query := `SELECT ` + pinColumns + ` FROM pins`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`

	pins := []models.Pin{}
	err := r.db.SelectContext(ctx, &pins, query, args...)
	logQuery(query, args, len(pins), err)
	return pins, err
}

// UpsertReaction records the reaction of a user to a pin, replacing any
// earlier reaction by the same user.
func (r *PinRepository) UpsertReaction(ctx context.Context, reaction models.PinReaction) (*models.PinReaction, error) {
	const query = `
		INSERT INTO pin_reactions (pin_id, email, reaction_type, reacted_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (pin_id, email) DO UPDATE
		SET reaction_type = EXCLUDED.reaction_type,
		    reacted_at = NOW()
		RETURNING pin_id, email, reaction_type, reacted_at
	`
	args := []any{reaction.PinID, reaction.Email, reaction.ReactionType}

	var out models.PinReaction
	err := r.db.GetContext(ctx, &out, query, args...)
	logQuery(query, args, out.ReactionType, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
