package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

// ErrIncompleteOrder is returned when a reorder does not list every media
// item of the board exactly once.
var ErrIncompleteOrder = errors.New("ordered ids do not match the board's media items")

const mediaColumns = `id, board_id, url, caption, buy_link, type, sort_order, created_at`

// MediaWriteRepository handles media item write operations
type MediaWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMediaWriteRepository(db *sqlx.DB, txGetter TxGetter) *MediaWriteRepository {
	return &MediaWriteRepository{db: db, txGetter: txGetter}
}

// Insert appends an item after the board's current last position.
func (r *MediaWriteRepository) Insert(ctx context.Context, item models.MediaItem) (*models.MediaItem, error) {
	query := `
		INSERT INTO media_items (id, board_id, url, caption, buy_link, type, sort_order, created_at)
		SELECT $1, $2, $3, $4, $5, $6, COALESCE(MAX(sort_order) + 1, 0), NOW()
		FROM media_items
		WHERE board_id = $2
		RETURNING ` + mediaColumns
	args := []any{item.ID, item.BoardID, item.URL, item.Caption, item.BuyLink, item.Type}

	var out models.MediaItem
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &out, query, args...)
	logQuery(query, args, out.SortOrder, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Reorder sets sort_order of each item to its index in ids. All updates run
// in one transaction: the request transaction if ctx carries one, otherwise
// a transaction opened here. ids must name every item of the board exactly
// once; an id outside the board yields sql.ErrNoRows.
func (r *MediaWriteRepository) Reorder(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) (err error) {
	var tx *sqlx.Tx
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}
	if tx == nil {
		tx, err = r.db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
				return
			}
			err = tx.Commit()
		}()
	}

	const countQuery = `SELECT COUNT(*) FROM media_items WHERE board_id = $1`
	var count int
	err = tx.GetContext(ctx, &count, countQuery, boardID)
	logQuery(countQuery, []any{boardID}, count, err)
	if err != nil {
		return err
	}
	if count != len(ids) {
		return fmt.Errorf("%w: board has %d items, got %d ids", ErrIncompleteOrder, count, len(ids))
	}

	const updateQuery = `
		UPDATE media_items
		SET sort_order = $1
		WHERE id = $2 AND board_id = $3
	`
	for position, itemID := range ids {
		res, execErr := tx.ExecContext(ctx, updateQuery, position, itemID, boardID)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}
		logQuery(updateQuery, []any{position, itemID, boardID}, rowsAffected, execErr)
		if execErr != nil {
			return execErr
		}
		if rowsAffected == 0 {
			return fmt.Errorf("media item %s: %w", itemID, sql.ErrNoRows)
		}
	}
	return nil
}

// Delete removes one media item.
func (r *MediaWriteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `DELETE FROM media_items WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	return rowsAffected, err
}

// DeleteByBoard removes every media item of a board.
func (r *MediaWriteRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	const query = `DELETE FROM media_items WHERE board_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, boardID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{boardID}, rowsAffected, err)
	return rowsAffected, err
}

// MediaReadRepository handles media item read operations
type MediaReadRepository struct {
	db *sqlx.DB
}

func NewMediaReadRepository(db *sqlx.DB) *MediaReadRepository {
	return &MediaReadRepository{db: db}
}

// ListByBoard returns a board's items in display order.
func (r *MediaReadRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]models.MediaItem, error) {
	query := `
		SELECT ` + mediaColumns + `
		FROM media_items
		WHERE board_id = $1
		ORDER BY sort_order, created_at, id`

	items := []models.MediaItem{}
	err := r.db.SelectContext(ctx, &items, query, boardID)
	logQuery(query, []any{boardID}, len(items), err)
	return items, err
}
