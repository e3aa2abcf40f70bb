package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaItem is one entry of a board's ordered media collection.
type MediaItem struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	BoardID   uuid.UUID `json:"board_id" db:"board_id"`     // Owning board
	URL       string    `json:"url" db:"url"`               // Media location
	Caption   *string   `json:"caption" db:"caption"`       // Optional caption
	BuyLink   *string   `json:"buy_link" db:"buy_link"`     // Optional shop link
	Type      string    `json:"type" db:"type"`             // image or video
	SortOrder int       `json:"sort_order" db:"sort_order"` // Position within the board
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// MediaAttrs are the optional attributes of a new media item.
type MediaAttrs struct {
	Caption *string
	BuyLink *string
	Type    string
}

// MediaUpload is a media item saved outside of any board
// (uploads and collected inspirations).
type MediaUpload struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	URL       string    `json:"url" db:"url"`
	Caption   *string   `json:"caption" db:"caption"`
	Title     *string   `json:"title" db:"title"`
	Mood      *string   `json:"mood" db:"mood"`
	Reactions Fields    `json:"reactions" db:"reactions"`
	Kind      string    `json:"kind" db:"kind"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Kinds of media uploads.
const (
	UploadKindMedia       = "media"
	UploadKindInspiration = "inspiration"
)
