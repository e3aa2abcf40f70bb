package models

import "time"

// Media types understood by the landing page.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaLink maps a short slug to a target resource. Links are never updated.
type MediaLink struct {
	Slug       string    `json:"slug" db:"slug"`               // Unique key
	TargetURL  string    `json:"target_url" db:"target_url"`   // Origin of the media
	OwnerEmail string    `json:"owner_email" db:"owner_email"` // Creator
	MediaType  string    `json:"media_type" db:"media_type"`   // image or video
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}
