package models

import (
	"encoding/json"
	"time"
)

// Record is a document located by a caller-supplied natural key
// (user profiles and settings).
type Record struct {
	Key       string    `json:"-" db:"natural_key"` // Natural key, e.g. an email address
	KeyName   string    `json:"-" db:"-"`           // JSON name of the key field
	Fields    Fields    `json:"-" db:"fields"`      // Merged free-form attributes
	CreatedAt time.Time `json:"-" db:"created_at"`  // Creation timestamp
	UpdatedAt time.Time `json:"-" db:"updated_at"`  // Last merge timestamp
}

// MarshalJSON flattens the record into a single object so clients see the
// natural key next to the stored fields.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+3)
	for k, v := range r.Fields {
		out[k] = v
	}
	name := r.KeyName
	if name == "" {
		name = "email"
	}
	out[name] = r.Key
	out["created_at"] = r.CreatedAt
	out["updated_at"] = r.UpdatedAt
	return json.Marshal(out)
}

// Circle is the shared state of a group, read from the first member profile
// that carries the group's invite code.
type Circle struct {
	TribeMembers []any `json:"tribe_members"`
	Messages     []any `json:"messages"`
	Pins         []any `json:"pins"`
	Images       []any `json:"images"`
}
