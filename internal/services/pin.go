package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/cultureschool-backend/internal/logger"
	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=pin.go -destination=pin_mock.go -package=services

// PinStore persists pins and reactions.
type PinStore interface {
	Insert(ctx context.Context, pin models.Pin) (*models.Pin, error)
	List(ctx context.Context, filter models.PinFilter) ([]models.Pin, error)
	UpsertReaction(ctx context.Context, reaction models.PinReaction) (*models.PinReaction, error)
}

// PinService collects pins and reactions to them.
type PinService struct {
	store PinStore
}

func NewPinService(store PinStore) *PinService {
	return &PinService{store: store}
}

// Pin stores a new pin for its owner.
func (s *PinService) Pin(ctx context.Context, pin models.Pin) (*models.Pin, error) {
	if err := required("email", pin.Email); err != nil {
		return nil, err
	}
	pin.ID = uuid.New()

	out, err := s.store.Insert(ctx, pin)
	if err != nil {
		logger.Log.Errorw("failed to save pin", "email", pin.Email, "error", err)
		return nil, err
	}
	return out, nil
}

// ListPins returns pins newest first, optionally narrowed to one user or
// board.
func (s *PinService) ListPins(ctx context.Context, email, boardID string) ([]models.Pin, error) {
	var filter models.PinFilter
	if email != "" {
		filter.Email = &email
	}
	if boardID != "" {
		id, err := parseID(boardID)
		if err != nil {
			return []models.Pin{}, nil
		}
		filter.BoardID = &id
	}
	return s.store.List(ctx, filter)
}

// React records the reaction of email to a pin, replacing an earlier one.
func (s *PinService) React(ctx context.Context, email, pinID, reactionType string) (*models.PinReaction, error) {
	if err := required("email", email, "pinId", pinID, "reactionType", reactionType); err != nil {
		return nil, err
	}
	id, err := parseID(pinID)
	if err != nil {
		return nil, err
	}

	reaction, err := s.store.UpsertReaction(ctx, models.PinReaction{
		PinID:        id,
		Email:        email,
		ReactionType: reactionType,
	})
	if err != nil {
		logger.Log.Errorw("failed to save reaction", "email", email, "pin_id", id, "error", err)
		return nil, err
	}
	return reaction, nil
}
