package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/cultureschool-backend/internal/id"
	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=services

// UploadStore persists media saved outside of boards.
type UploadStore interface {
	Insert(ctx context.Context, u models.MediaUpload) (*models.MediaUpload, error)
	Upsert(ctx context.Context, u models.MediaUpload) (*models.MediaUpload, error)
	ListByEmail(ctx context.Context, email string) ([]models.MediaUpload, error)
}

// ObjectStore stores uploaded files and returns their public URL.
type ObjectStore interface {
	Put(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
}

// MediaAppender appends media to a board.
type MediaAppender interface {
	AddMedia(ctx context.Context, boardID, url string, attrs models.MediaAttrs) (*models.MediaItem, error)
}

// File is an uploaded file.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadResult is what an upload produced: a board media item when a board
// was given, a media upload otherwise.
type UploadResult struct {
	URL       string              `json:"url"`
	MediaItem *models.MediaItem   `json:"media_item,omitempty"`
	Upload    *models.MediaUpload `json:"upload,omitempty"`
}

// UploadService saves uploaded media and collected inspirations.
type UploadService struct {
	store   UploadStore
	objects ObjectStore
	boards  MediaAppender
}

func NewUploadService(store UploadStore, objects ObjectStore, boards MediaAppender) *UploadService {
	return &UploadService{store: store, objects: objects, boards: boards}
}

// SaveMediaItem stores a media item that belongs to no board. Every call
// adds a new entry.
func (s *UploadService) SaveMediaItem(ctx context.Context, u models.MediaUpload) (*models.MediaUpload, error) {
	if err := required("email", u.Email, "url", u.URL); err != nil {
		return nil, err
	}
	u.Kind = models.UploadKindMedia
	return s.save(ctx, u, s.store.Insert)
}

// SaveInspiration stores a collected inspiration. Saving the same url twice
// updates the earlier entry.
func (s *UploadService) SaveInspiration(ctx context.Context, u models.MediaUpload) (*models.MediaUpload, error) {
	if err := required("email", u.Email, "url", u.URL); err != nil {
		return nil, err
	}
	u.Kind = models.UploadKindInspiration
	return s.save(ctx, u, s.store.Upsert)
}

// ListMedia returns the media items and inspirations saved by email.
func (s *UploadService) ListMedia(ctx context.Context, email string) ([]models.MediaUpload, error) {
	if err := required("email", email); err != nil {
		return nil, err
	}
	uploads, err := s.store.ListByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to list media uploads", "email", email, "error", err)
		return nil, err
	}
	return uploads, nil
}

func (s *UploadService) save(
	ctx context.Context,
	u models.MediaUpload,
	write func(context.Context, models.MediaUpload) (*models.MediaUpload, error),
) (*models.MediaUpload, error) {
	u.ID = uuid.New()
	if u.Reactions == nil {
		u.Reactions = models.Fields{}
	}

	out, err := write(ctx, u)
	if err != nil {
		logger.Log.Errorw("failed to save media upload", "email", u.Email, "url", u.URL, "kind", u.Kind, "error", err)
		return nil, err
	}
	return out, nil
}

// Upload puts file into the object store under the user's folder. With a
// board id the stored file is appended to that board.
func (s *UploadService) Upload(ctx context.Context, email, boardID string, file File) (*UploadResult, error) {
	if err := required("email", email); err != nil {
		return nil, err
	}
	if len(file.Data) == 0 {
		return nil, fmt.Errorf("%w: missing file", ErrValidation)
	}

	name, err := id.Generate("")
	if err != nil {
		return nil, err
	}
	objectPath := fmt.Sprintf("uploads/%s/%s%s", email, name, strings.ToLower(path.Ext(file.Name)))

	url, err := s.objects.Put(ctx, objectPath, file.Data, file.ContentType)
	if err != nil {
		logger.Log.Errorw("failed to store upload", "email", email, "path", objectPath, "error", err)
		return nil, err
	}

	if boardID != "" {
		mediaType := models.MediaTypeImage
		if strings.HasPrefix(file.ContentType, "video/") {
			mediaType = models.MediaTypeVideo
		}
		item, err := s.boards.AddMedia(ctx, boardID, url, models.MediaAttrs{Type: mediaType})
		if err != nil {
			return nil, err
		}
		return &UploadResult{URL: url, MediaItem: item}, nil
	}

	upload, err := s.save(ctx, models.MediaUpload{Email: email, URL: url, Kind: models.UploadKindMedia}, s.store.Insert)
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: url, Upload: upload}, nil
}
