package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=reconcile.go -destination=reconcile_mock.go -package=services

// RecordStore persists records addressed by a natural key.
type RecordStore interface {
	Upsert(ctx context.Context, key string, fields models.Fields) (*models.Record, error)
	Get(ctx context.Context, key string) (*models.Record, error)
	FindByField(ctx context.Context, field, value string) ([]models.Record, error)
	DeleteByField(ctx context.Context, field, value string) (int64, error)
}

// ReconcileService keeps at most one record per natural key and merges
// partial writes onto it.
type ReconcileService struct {
	store   RecordStore
	keyName string
}

// NewReconcileService creates a service over store. keyName is the request
// field carrying the natural key, e.g. "email".
func NewReconcileService(store RecordStore, keyName string) *ReconcileService {
	return &ReconcileService{store: store, keyName: keyName}
}

// Upsert creates the record for key or shallow-merges fields onto it.
// The key itself is never stored inside fields.
func (s *ReconcileService) Upsert(ctx context.Context, key string, fields models.Fields) (*models.Record, error) {
	if err := required(s.keyName, key); err != nil {
		return nil, err
	}

	clean := make(models.Fields, len(fields))
	for k, v := range fields {
		if k == s.keyName {
			continue
		}
		clean[k] = v
	}

	rec, err := s.store.Upsert(ctx, key, clean)
	if err != nil {
		logger.Log.Errorw("failed to upsert record", s.keyName, key, "error", err)
		return nil, err
	}
	return rec, nil
}

// Get returns the record for key.
func (s *ReconcileService) Get(ctx context.Context, key string) (*models.Record, error) {
	if err := required(s.keyName, key); err != nil {
		return nil, err
	}

	rec, err := s.store.Get(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, s.keyName, key)
	}
	if err != nil {
		logger.Log.Errorw("failed to get record", s.keyName, key, "error", err)
		return nil, err
	}
	return rec, nil
}

// FindBy returns every record whose field equals value, oldest first.
func (s *ReconcileService) FindBy(ctx context.Context, field, value string) ([]models.Record, error) {
	if err := required(field, value); err != nil {
		return nil, err
	}

	recs, err := s.store.FindByField(ctx, field, value)
	if err != nil {
		logger.Log.Errorw("failed to find records", "field", field, "value", value, "error", err)
		return nil, err
	}
	return recs, nil
}

// PurgeBy deletes every record whose field equals value.
func (s *ReconcileService) PurgeBy(ctx context.Context, field, value string) (int64, error) {
	if err := required(field, value); err != nil {
		return 0, err
	}

	n, err := s.store.DeleteByField(ctx, field, value)
	if err != nil {
		logger.Log.Errorw("failed to purge records", "field", field, "value", value, "error", err)
		return 0, err
	}
	logger.Log.Infow("records purged", "field", field, "value", value, "count", n)
	return n, nil
}
