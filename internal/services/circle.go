package services

import (
	"context"

	"github.com/sbilibin2017/cultureschool-backend/internal/models"
)

//go:generate mockgen -source=circle.go -destination=circle_mock.go -package=services

const (
	inviteCodeField  = "invite_code"
	frameSettingsKey = "profile_frames"
)

// ProfileQuerier looks up and purges profiles by a correlation field.
type ProfileQuerier interface {
	FindBy(ctx context.Context, field, value string) ([]models.Record, error)
	PurgeBy(ctx context.Context, field, value string) (int64, error)
}

// SettingsGetter reads one settings record.
type SettingsGetter interface {
	Get(ctx context.Context, key string) (*models.Record, error)
}

// CircleService serves the state shared by the members of a circle.
type CircleService struct {
	profiles ProfileQuerier
	settings SettingsGetter
}

func NewCircleService(profiles ProfileQuerier, settings SettingsGetter) *CircleService {
	return &CircleService{profiles: profiles, settings: settings}
}

// Circle returns the lists stored on the first profile carrying groupID as
// its invite code. An unknown group yields empty lists.
func (s *CircleService) Circle(ctx context.Context, groupID string) (*models.Circle, error) {
	if err := required("group_id", groupID); err != nil {
		return nil, err
	}

	recs, err := s.profiles.FindBy(ctx, inviteCodeField, groupID)
	if err != nil {
		return nil, err
	}

	circle := &models.Circle{
		TribeMembers: []any{},
		Messages:     []any{},
		Pins:         []any{},
		Images:       []any{},
	}
	if len(recs) == 0 {
		return circle, nil
	}

	fields := recs[0].Fields
	circle.TribeMembers = listField(fields, "tribe_members")
	circle.Messages = listField(fields, "messages")
	circle.Pins = listField(fields, "pins")
	circle.Images = listField(fields, "images")
	return circle, nil
}

// Purge deletes every profile of the circle.
func (s *CircleService) Purge(ctx context.Context, groupID string) (int64, error) {
	if err := required("group_id", groupID); err != nil {
		return 0, err
	}
	return s.profiles.PurgeBy(ctx, inviteCodeField, groupID)
}

// FrameSettings returns the value of the profile frame settings.
func (s *CircleService) FrameSettings(ctx context.Context) (any, error) {
	rec, err := s.settings.Get(ctx, frameSettingsKey)
	if err != nil {
		return nil, err
	}
	return rec.Fields["value"], nil
}

func listField(fields models.Fields, name string) []any {
	if list, ok := fields[name].([]any); ok {
		return list
	}
	return []any{}
}
