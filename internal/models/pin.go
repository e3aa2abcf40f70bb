package models

import (
	"time"

	"github.com/google/uuid"
)

// Pin is an item a user collected from elsewhere.
type Pin struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	Title       *string    `json:"title" db:"title"`
	ImageURL    *string    `json:"image_url" db:"image_url"`
	SourceURL   *string    `json:"source_url" db:"source_url"`
	Description *string    `json:"description" db:"description"`
	Tags        Tags       `json:"tags" db:"tags"`
	Mood        *string    `json:"mood" db:"mood"`
	BoardID     *uuid.UUID `json:"board_id" db:"board_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// PinReaction is the single reaction of a user to a pin.
type PinReaction struct {
	PinID        uuid.UUID `json:"pin_id" db:"pin_id"`
	Email        string    `json:"email" db:"email"`
	ReactionType string    `json:"reaction_type" db:"reaction_type"`
	ReactedAt    time.Time `json:"reacted_at" db:"reacted_at"`
}

// PinFilter narrows a pin listing. Nil fields are not filtered on.
type PinFilter struct {
	Email   *string
	BoardID *uuid.UUID
}
