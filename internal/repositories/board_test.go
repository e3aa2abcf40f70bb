package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestBoardRepositories(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewBoardWriteRepository(db, nil)
	reader := NewBoardReadRepository(db)

	created, err := writer.Insert(ctx, models.Board{
		ID:         uuid.New(),
		OwnerEmail: "a@x.io",
		Title:      "Summer Looks",
		Slug:       "summer-looks",
		Tags:       models.Tags{"linen"},
		Theme:      strPtr("sand"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.Tags{"linen"}, created.Tags)
	assert.False(t, created.IsPublic)

	t.Run("get by id", func(t *testing.T) {
		got, err := reader.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Summer Looks", got.Title)
		assert.Equal(t, "sand", *got.Theme)
	})

	t.Run("patch writes only set fields", func(t *testing.T) {
		patch := models.BoardPatch{
			IsPublic: models.Some(true),
			Theme:    models.Some[*string](nil),
		}
		updated, err := writer.Update(ctx, created.ID, patch)
		require.NoError(t, err)
		assert.True(t, updated.IsPublic)
		assert.Nil(t, updated.Theme)
		assert.Equal(t, "Summer Looks", updated.Title)
		assert.Equal(t, models.Tags{"linen"}, updated.Tags)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
	})

	t.Run("patch unknown board", func(t *testing.T) {
		_, err := writer.Update(ctx, uuid.New(), models.BoardPatch{Title: models.Some("x")})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("list by owner and public gallery", func(t *testing.T) {
		_, err := writer.Insert(ctx, models.Board{ID: uuid.New(), OwnerEmail: "a@x.io", Title: "Private", Slug: "private"})
		require.NoError(t, err)
		_, err = writer.Insert(ctx, models.Board{ID: uuid.New(), OwnerEmail: "b@x.io", Title: "Other", Slug: "other"})
		require.NoError(t, err)

		owned, err := reader.ListByOwner(ctx, "a@x.io")
		require.NoError(t, err)
		assert.Len(t, owned, 2)
		assert.Equal(t, "Private", owned[0].Title)

		public, err := reader.ListPublic(ctx)
		require.NoError(t, err)
		require.Len(t, public, 1)
		assert.Equal(t, created.ID, public[0].ID)

		none, err := reader.ListByOwner(ctx, "nobody@x.io")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete", func(t *testing.T) {
		n, err := writer.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = writer.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		_, err = reader.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
