package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

const boardColumns = `id, owner_email, title, slug, is_public, cover, tags, theme, created_at, updated_at`

// BoardWriteRepository handles board write operations
type BoardWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBoardWriteRepository(db *sqlx.DB, txGetter TxGetter) *BoardWriteRepository {
	return &BoardWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores a new board and returns it as persisted.
func (r *BoardWriteRepository) Insert(ctx context.Context, b models.Board) (*models.Board, error) {
	query := `
		INSERT INTO boards (id, owner_email, title, slug, is_public, cover, tags, theme, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + boardColumns
	args := []any{b.ID, b.OwnerEmail, b.Title, b.Slug, b.IsPublic, b.Cover, b.Tags, b.Theme}

	var board models.Board
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &board, query, args...)
	logQuery(query, args, board.ID, err)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Update writes only the fields set in patch and always bumps updated_at.
// It returns sql.ErrNoRows when the board does not exist.
func (r *BoardWriteRepository) Update(ctx context.Context, id uuid.UUID, patch models.BoardPatch) (*models.Board, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title.Set {
		set("title", patch.Title.Value)
	}
	if patch.Slug.Set {
		set("slug", patch.Slug.Value)
	}
	if patch.IsPublic.Set {
		set("is_public", patch.IsPublic.Value)
	}
	if patch.Cover.Set {
		set("cover", patch.Cover.Value)
	}
	if patch.Tags.Set {
		set("tags", patch.Tags.Value)
	}
	if patch.Theme.Set {
		set("theme", patch.Theme.Value)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE boards
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), len(args), boardColumns)

	var board models.Board
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &board, query, args...)
	logQuery(query, args, board.ID, err)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Delete removes the board row only; its media items are not touched.
func (r *BoardWriteRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `DELETE FROM boards WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	return rowsAffected, err
}

// BoardReadRepository handles board read operations
type BoardReadRepository struct {
	db *sqlx.DB
}

func NewBoardReadRepository(db *sqlx.DB) *BoardReadRepository {
	return &BoardReadRepository{db: db}
}

// GetByID returns the board or sql.ErrNoRows.
func (r *BoardReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Board, error) {
	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`

	var board models.Board
	err := r.db.GetContext(ctx, &board, query, id)
	logQuery(query, []any{id}, board.ID, err)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// ListByOwner returns the boards of one user, most recently updated first.
func (r *BoardReadRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Board, error) {
	query := `
		SELECT ` + boardColumns + `
		FROM boards
		WHERE owner_email = $1
		ORDER BY updated_at DESC, id`

	boards := []models.Board{}
	err := r.db.SelectContext(ctx, &boards, query, ownerEmail)
	logQuery(query, []any{ownerEmail}, len(boards), err)
	return boards, err
}

// ListPublic returns every public board, most recently updated first.
func (r *BoardReadRepository) ListPublic(ctx context.Context) ([]models.Board, error) {
	query := `
		SELECT ` + boardColumns + `
		FROM boards
		WHERE is_public
		ORDER BY updated_at DESC, id`

	boards := []models.Board{}
	err := r.db.SelectContext(ctx, &boards, query)
	logQuery(query, nil, len(boards), err)
	return boards, err
}
