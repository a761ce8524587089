package service

import (
	"context"
	"errors"
	"strings"

	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// GetUserSettings returns the user's stored settings, or the defaults when
// the user has never saved any. The defaults are not persisted on read.
func (s *Service) GetUserSettings(ctx context.Context, userID string) (domain.UserSettings, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.UserSettings{}, domain.ErrEmptyActor
	}
	settings, err := s.store.GetUserSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.DefaultUserSettings(userID), nil
		}
		return domain.UserSettings{}, err
	}
	return settings, nil
}

// UpdateUserSettings stores the user's settings, filling blanks with the
// defaults, and returns the stored value.
func (s *Service) UpdateUserSettings(ctx context.Context, settings domain.UserSettings) (domain.UserSettings, error) {
	normalized, err := domain.NormalizeUserSettings(settings)
	if err != nil {
		return domain.UserSettings{}, err
	}
	normalized.UpdatedAt = s.clock().UTC()
	if err := s.store.PutUserSettings(ctx, normalized); err != nil {
		return domain.UserSettings{}, err
	}
	return normalized, nil
}
