package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

// ErrCacheMiss is returned by LinkCacheRepository when the slug is not cached.
var ErrCacheMiss = errors.New("link not found in cache")

const linkColumns = `slug, target_url, owner_email, media_type, created_at`

// LinkWriteRepository handles media link write operations
type LinkWriteRepository struct {
	db *sqlx.DB
}

func NewLinkWriteRepository(db *sqlx.DB) *LinkWriteRepository {
	return &LinkWriteRepository{db: db}
}

// Insert stores a new link. A duplicate slug is reported by the driver as a
// unique violation.
func (r *LinkWriteRepository) Insert(ctx context.Context, link models.MediaLink) (*models.MediaLink, error) {
	query := `
		INSERT INTO media_links (slug, target_url, owner_email, media_type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + linkColumns
	args := []any{link.Slug, link.TargetURL, link.OwnerEmail, link.MediaType}

	var out models.MediaLink
	err := r.db.GetContext(ctx, &out, query, args...)
	logQuery(query, args, out.Slug, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LinkReadRepository handles media link read operations
type LinkReadRepository struct {
	db *sqlx.DB
}

func NewLinkReadRepository(db *sqlx.DB) *LinkReadRepository {
	return &LinkReadRepository{db: db}
}

// GetBySlug returns the link or sql.ErrNoRows.
func (r *LinkReadRepository) GetBySlug(ctx context.Context, slug string) (*models.MediaLink, error) {
	query := `SELECT ` + linkColumns + ` FROM media_links WHERE slug = $1`

	var link models.MediaLink
	err := r.db.GetContext(ctx, &link, query, slug)
	logQuery(query, []any{slug}, link.TargetURL, err)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// LinkCacheRepository caches resolved links in Redis
type LinkCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached links
}

func NewLinkCacheRepository(client *redis.Client, expiration time.Duration) *LinkCacheRepository {
	return &LinkCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func linkCacheKey(slug string) string {
	return fmt.Sprintf("media_link:%s", slug)
}

// Get returns the cached link or ErrCacheMiss.
func (r *LinkCacheRepository) Get(ctx context.Context, slug string) (*models.MediaLink, error) {
	key := linkCacheKey(slug)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var link models.MediaLink
	if err := json.Unmarshal(val, &link); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", string(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", link.TargetURL,
		"error", nil,
	)
	return &link, nil
}

// Set caches link under its slug.
func (r *LinkCacheRepository) Set(ctx context.Context, link models.MediaLink) error {
	key := linkCacheKey(link.Slug)

	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"target_url", link.TargetURL,
		"result", "ok",
		"error", err,
	)
	return err
}
