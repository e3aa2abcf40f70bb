package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

func TestRecordRepository_Upsert(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserProfileRepository(db)

	t.Run("insert then merge keeps untouched keys", func(t *testing.T) {
		rec, err := repo.Upsert(ctx, "a@x.io", models.Fields{"name": "Ann", "bio": "hi"})
		require.NoError(t, err)
		assert.Equal(t, "a@x.io", rec.Key)
		assert.Equal(t, "email", rec.KeyName)
		assert.Equal(t, "Ann", rec.Fields["name"])

		rec, err = repo.Upsert(ctx, "a@x.io", models.Fields{"bio": "hello"})
		require.NoError(t, err)
		assert.Equal(t, "Ann", rec.Fields["name"])
		assert.Equal(t, "hello", rec.Fields["bio"])
		assert.False(t, rec.UpdatedAt.Before(rec.CreatedAt))
	})

	t.Run("empty fields leaves record unchanged", func(t *testing.T) {
		rec, err := repo.Upsert(ctx, "a@x.io", models.Fields{})
		require.NoError(t, err)
		assert.Equal(t, "Ann", rec.Fields["name"])
	})

	t.Run("get missing returns ErrNoRows", func(t *testing.T) {
		_, err := repo.Get(ctx, "nobody@x.io")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestRecordRepository_UpsertConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserProfileRepository(db)

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := repo.Upsert(ctx, "race@x.io", models.Fields{fmt.Sprintf("k%d", i): i})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	rec, err := repo.Get(ctx, "race@x.io")
	require.NoError(t, err)
	assert.Len(t, rec.Fields, writers)

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT COUNT(*) FROM user_profiles WHERE email = $1`, "race@x.io"))
	assert.Equal(t, 1, rows)
}

func TestRecordRepository_FindAndDeleteByField(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	profiles := NewUserProfileRepository(db)
	_, err := profiles.Upsert(ctx, "first@x.io", models.Fields{"invite_code": "ABC", "messages": []any{"hi"}})
	require.NoError(t, err)
	_, err = profiles.Upsert(ctx, "second@x.io", models.Fields{"invite_code": "ABC"})
	require.NoError(t, err)
	_, err = profiles.Upsert(ctx, "other@x.io", models.Fields{"invite_code": "XYZ"})
	require.NoError(t, err)

	recs, err := profiles.FindByField(ctx, "invite_code", "ABC")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "first@x.io", recs[0].Key)

	settings := NewSettingsRepository(db)
	_, err = settings.Upsert(ctx, "m1", models.Fields{"circle_id": "c1"})
	require.NoError(t, err)
	_, err = settings.Upsert(ctx, "m2", models.Fields{"circle_id": "c1"})
	require.NoError(t, err)
	_, err = settings.Upsert(ctx, "m3", models.Fields{"circle_id": "c2"})
	require.NoError(t, err)

	n, err := settings.DeleteByField(ctx, "circle_id", "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = settings.DeleteByField(ctx, "circle_id", "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = settings.Get(ctx, "m3")
	assert.NoError(t, err)
}
