package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

// RecordRepository stores documents addressed by a natural key. Writes are
// shallow merges performed by Postgres in a single statement.
type RecordRepository struct {
	db      *sqlx.DB
	keyName string

	upsertQuery   string
	getQuery      string
	findQuery     string
	deleteByQuery string
}

func newRecordRepository(db *sqlx.DB, table, keyColumn, keyName string) *RecordRepository {
	return &RecordRepository{
		db:      db,
		keyName: keyName,
		upsertQuery: fmt.Sprintf(`
			INSERT INTO %[1]s (%[2]s, fields, created_at, updated_at)
			VALUES ($1, $2, NOW(), NOW())
			ON CONFLICT (%[2]s) DO UPDATE
			SET fields = %[1]s.fields || EXCLUDED.fields,
			    updated_at = NOW()
			RETURNING %[2]s AS natural_key, fields, created_at, updated_at
		`, table, keyColumn),
		getQuery: fmt.Sprintf(`
			SELECT %[2]s AS natural_key, fields, created_at, updated_at
			FROM %[1]s
			WHERE %[2]s = $1
		`, table, keyColumn),
		findQuery: fmt.Sprintf(`
			SELECT %[2]s AS natural_key, fields, created_at, updated_at
			FROM %[1]s
			WHERE fields->>$1 = $2
			ORDER BY created_at
		`, table, keyColumn),
		deleteByQuery: fmt.Sprintf(`
			DELETE FROM %[1]s
			WHERE fields->>$1 = $2
		`, table),
	}
}

// NewUserProfileRepository stores user profiles keyed by email.
func NewUserProfileRepository(db *sqlx.DB) *RecordRepository {
	return newRecordRepository(db, "user_profiles", "email", "email")
}

// NewSettingsRepository stores settings keyed by email, plus application
// wide entries such as "profile_frames".
func NewSettingsRepository(db *sqlx.DB) *RecordRepository {
	return newRecordRepository(db, "settings", "key", "email")
}

// Upsert inserts the record or merges fields onto the stored one.
// Keys absent from fields are left untouched.
func (r *RecordRepository) Upsert(ctx context.Context, key string, fields models.Fields) (*models.Record, error) {
	var rec models.Record
	err := r.db.GetContext(ctx, &rec, r.upsertQuery, key, fields)
	logQuery(r.upsertQuery, []any{key, fields}, rec, err)
	if err != nil {
		return nil, err
	}
	rec.KeyName = r.keyName
	return &rec, nil
}

// Get returns the record for key or sql.ErrNoRows.
func (r *RecordRepository) Get(ctx context.Context, key string) (*models.Record, error) {
	var rec models.Record
	err := r.db.GetContext(ctx, &rec, r.getQuery, key)
	logQuery(r.getQuery, []any{key}, rec, err)
	if err != nil {
		return nil, err
	}
	rec.KeyName = r.keyName
	return &rec, nil
}

// FindByField returns records whose top-level field equals value, oldest first.
func (r *RecordRepository) FindByField(ctx context.Context, field, value string) ([]models.Record, error) {
	var recs []models.Record
	err := r.db.SelectContext(ctx, &recs, r.findQuery, field, value)
	logQuery(r.findQuery, []any{field, value}, len(recs), err)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].KeyName = r.keyName
	}
	return recs, nil
}

// DeleteByField removes every record whose top-level field equals value.
func (r *RecordRepository) DeleteByField(ctx context.Context, field, value string) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.deleteByQuery, field, value)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(r.deleteByQuery, []any{field, value}, rowsAffected, err)
	return rowsAffected, err
}
