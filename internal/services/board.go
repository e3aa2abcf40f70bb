package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/models"
	"github.com/sbilibin2017/cultureschool-backend/internal/repositories"
)

//go:generate mockgen -source=board.go -destination=board_mock.go -package=services

// BoardWriter defines board write operations.
type BoardWriter interface {
	Insert(ctx context.Context, b models.Board) (*models.Board, error)
	Update(ctx context.Context, id uuid.UUID, patch models.BoardPatch) (*models.Board, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// BoardReader defines board read operations.
type BoardReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Board, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]models.Board, error)
	ListPublic(ctx context.Context) ([]models.Board, error)
}

// MediaWriter defines media item write operations.
type MediaWriter interface {
	Insert(ctx context.Context, item models.MediaItem) (*models.MediaItem, error)
	Reorder(ctx context.Context, boardID uuid.UUID, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
}

// MediaReader defines media item read operations.
type MediaReader interface {
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]models.MediaItem, error)
}

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, eventType, subject string, payload any)
}

var slugInvalid = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Slugify lowercases title, joins its words with single hyphens and drops
// every character outside [a-zA-Z0-9_-].
func Slugify(title string) string {
	s := strings.Join(strings.Fields(strings.ToLower(title)), "-")
	return slugInvalid.ReplaceAllString(s, "")
}

// BoardService manages boards and their ordered media.
type BoardService struct {
	boardWriter BoardWriter
	boardReader BoardReader
	mediaWriter MediaWriter
	mediaReader MediaReader
	publisher   Publisher
}

// NewBoardService creates a new BoardService.
func NewBoardService(
	boardWriter BoardWriter,
	boardReader BoardReader,
	mediaWriter MediaWriter,
	mediaReader MediaReader,
	publisher Publisher,
) *BoardService {
	return &BoardService{
		boardWriter: boardWriter,
		boardReader: boardReader,
		mediaWriter: mediaWriter,
		mediaReader: mediaReader,
		publisher:   publisher,
	}
}

func parseID(id string) (uuid.UUID, error) {
	if id == "" {
		return uuid.Nil, ErrMissingID
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	return parsed, nil
}

func notFound(err error, what string, id any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s %v", ErrNotFound, what, id)
	}
	return err
}

func (s *BoardService) publish(ctx context.Context, eventType, subject string, payload any) {
	if s.publisher != nil {
		s.publisher.Publish(ctx, eventType, subject, payload)
	}
}

// Create stores a new board. Slugs are not unique.
func (s *BoardService) Create(ctx context.Context, ownerEmail, title string, attrs models.BoardAttrs) (*models.Board, error) {
	if err := required("email", ownerEmail, "title", title); err != nil {
		return nil, err
	}

	board, err := s.boardWriter.Insert(ctx, models.Board{
		ID:         uuid.New(),
		OwnerEmail: ownerEmail,
		Title:      title,
		Slug:       Slugify(title),
		IsPublic:   attrs.IsPublic,
		Cover:      attrs.Cover,
		Tags:       attrs.Tags,
		Theme:      attrs.Theme,
	})
	if err != nil {
		logger.Log.Errorw("failed to create board", "owner", ownerEmail, "title", title, "error", err)
		return nil, err
	}

	s.publish(ctx, models.EventBoardCreated, board.ID.String(), board)
	return board, nil
}

// Update applies the fields present in patch and refreshes updated_at.
func (s *BoardService) Update(ctx context.Context, id string, patch models.BoardPatch) (*models.Board, error) {
	boardID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if patch.Title.Set {
		if err := required("title", patch.Title.Value); err != nil {
			return nil, err
		}
		patch.Slug = models.Some(Slugify(patch.Title.Value))
	}

	board, err := s.boardWriter.Update(ctx, boardID, patch)
	if err != nil {
		logger.Log.Errorw("failed to update board", "id", boardID, "error", err)
		return nil, notFound(err, "board", boardID)
	}

	s.publish(ctx, models.EventBoardUpdated, board.ID.String(), board)
	return board, nil
}

// Get returns a board with its media in display order.
func (s *BoardService) Get(ctx context.Context, id string) (*models.BoardWithMedia, error) {
	boardID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	board, err := s.boardReader.GetByID(ctx, boardID)
	if err != nil {
		return nil, notFound(err, "board", boardID)
	}

	media, err := s.mediaReader.ListByBoard(ctx, boardID)
	if err != nil {
		logger.Log.Errorw("failed to list board media", "id", boardID, "error", err)
		return nil, err
	}
	return &models.BoardWithMedia{Board: *board, Media: media}, nil
}

// ListByOwner returns the boards of one user.
func (s *BoardService) ListByOwner(ctx context.Context, ownerEmail string) ([]models.Board, error) {
	if err := required("email", ownerEmail); err != nil {
		return nil, err
	}
	return s.boardReader.ListByOwner(ctx, ownerEmail)
}

// ListPublicGallery returns public boards, most recently updated first.
func (s *BoardService) ListPublicGallery(ctx context.Context) ([]models.Board, error) {
	return s.boardReader.ListPublic(ctx)
}

// Delete removes a board. Its media are removed too only when cascade is set;
// run it inside a request transaction to make both deletes atomic.
func (s *BoardService) Delete(ctx context.Context, id string, cascade bool) error {
	boardID, err := parseID(id)
	if err != nil {
		return err
	}

	n, err := s.boardWriter.Delete(ctx, boardID)
	if err != nil {
		logger.Log.Errorw("failed to delete board", "id", boardID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: board %s", ErrNotFound, boardID)
	}

	if cascade {
		removed, err := s.mediaWriter.DeleteByBoard(ctx, boardID)
		if err != nil {
			logger.Log.Errorw("failed to delete board media", "id", boardID, "error", err)
			return err
		}
		logger.Log.Infow("board media deleted", "id", boardID, "count", removed)
	}

	s.publish(ctx, models.EventBoardDeleted, boardID.String(), map[string]any{"cascade": cascade})
	return nil
}

// AddMedia appends an item to the end of a board.
func (s *BoardService) AddMedia(ctx context.Context, boardID, url string, attrs models.MediaAttrs) (*models.MediaItem, error) {
	id, err := parseID(boardID)
	if err != nil {
		return nil, err
	}
	if err := required("url", url); err != nil {
		return nil, err
	}
	if _, err := s.boardReader.GetByID(ctx, id); err != nil {
		return nil, notFound(err, "board", id)
	}

	mediaType := attrs.Type
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}

	item, err := s.mediaWriter.Insert(ctx, models.MediaItem{
		ID:      uuid.New(),
		BoardID: id,
		URL:     url,
		Caption: attrs.Caption,
		BuyLink: attrs.BuyLink,
		Type:    mediaType,
	})
	if err != nil {
		logger.Log.Errorw("failed to add media", "board_id", id, "url", url, "error", err)
		return nil, err
	}

	s.publish(ctx, models.EventMediaAdded, item.ID.String(), item)
	return item, nil
}

// Reorder sets the position of every media item of a board to its index in
// itemIDs. The list must name each item of the board exactly once.
func (s *BoardService) Reorder(ctx context.Context, boardID string, itemIDs []string) error {
	id, err := parseID(boardID)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(itemIDs))
	seen := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, raw := range itemIDs {
		itemID, err := parseID(raw)
		if err != nil {
			return err
		}
		if _, dup := seen[itemID]; dup {
			return fmt.Errorf("%w: duplicate media id %s", ErrValidation, itemID)
		}
		seen[itemID] = struct{}{}
		ids = append(ids, itemID)
	}

	if err := s.mediaWriter.Reorder(ctx, id, ids); err != nil {
		logger.Log.Errorw("failed to reorder media", "board_id", id, "error", err)
		if errors.Is(err, repositories.ErrIncompleteOrder) {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return notFound(err, "media of board", id)
	}

	s.publish(ctx, models.EventMediaReordered, id.String(), ids)
	return nil
}

// DeleteMedia removes one media item.
func (s *BoardService) DeleteMedia(ctx context.Context, id string) error {
	itemID, err := parseID(id)
	if err != nil {
		return err
	}

	n, err := s.mediaWriter.Delete(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to delete media", "id", itemID, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: media %s", ErrNotFound, itemID)
	}

	s.publish(ctx, models.EventMediaDeleted, itemID.String(), nil)
	return nil
}
