package models

import (
	"time"

	"github.com/google/uuid"
)

// Board is a moodboard owned by a user.
type Board struct {
	ID         uuid.UUID `json:"id" db:"id"`                   // Primary key
	OwnerEmail string    `json:"owner_email" db:"owner_email"` // Owner natural key
	Title      string    `json:"title" db:"title"`             // Display title
	Slug       string    `json:"slug" db:"slug"`               // Derived from Title
	IsPublic   bool      `json:"is_public" db:"is_public"`     // Listed in the public gallery
	Cover      *string   `json:"cover" db:"cover"`             // Cover image URL
	Tags       Tags      `json:"tags" db:"tags"`               // Labels
	Theme      *string   `json:"theme" db:"theme"`             // Theme name
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// BoardAttrs are the optional attributes accepted when creating a board.
type BoardAttrs struct {
	IsPublic bool
	Cover    *string
	Tags     Tags
	Theme    *string
}

// BoardPatch is a partial board update. Only fields with Set == true are
// written; everything else is left unchanged.
type BoardPatch struct {
	Title    Optional[string]  `json:"title"`
	IsPublic Optional[bool]    `json:"is_public"`
	Cover    Optional[*string] `json:"cover"`
	Tags     Optional[Tags]    `json:"tags"`
	Theme    Optional[*string] `json:"theme"`
	Slug     Optional[string]  `json:"-"` // Filled in by the service from Title
}

// BoardWithMedia is a board together with its ordered media items.
type BoardWithMedia struct {
	Board
	Media []MediaItem `json:"media"`
}
