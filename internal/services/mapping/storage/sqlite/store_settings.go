package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// GetUserSettings returns the user's stored settings row.
func (s *Store) GetUserSettings(ctx context.Context, userID string) (domain.UserSettings, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserSettings{}, err
	}
	if err := s.ready(); err != nil {
		return domain.UserSettings{}, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.UserSettings{}, fmt.Errorf("user id is required")
	}

	var settings domain.UserSettings
	var updatedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, default_language, default_gps_format,
		        default_measurement_system, default_google_map_type, updated_at
		   FROM user_settings
		  WHERE user_id = ?`,
		userID,
	).Scan(
		&settings.UserID,
		&settings.DefaultLanguage,
		&settings.DefaultGPSFormat,
		&settings.DefaultMeasurementSystem,
		&settings.DefaultGoogleMapType,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.UserSettings{}, storage.ErrNotFound
		}
		return domain.UserSettings{}, fmt.Errorf("get user settings: %w", err)
	}
	settings.UpdatedAt = fromMillis(updatedAt)
	return settings, nil
}

// PutUserSettings inserts or replaces the user's settings row.
func (s *Store) PutUserSettings(ctx context.Context, settings domain.UserSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(settings.UserID) == "" {
		return fmt.Errorf("user id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO user_settings (
		   user_id, default_language, default_gps_format,
		   default_measurement_system, default_google_map_type, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   default_language = excluded.default_language,
		   default_gps_format = excluded.default_gps_format,
		   default_measurement_system = excluded.default_measurement_system,
		   default_google_map_type = excluded.default_google_map_type,
		   updated_at = excluded.updated_at`,
		settings.UserID,
		settings.DefaultLanguage,
		settings.DefaultGPSFormat,
		settings.DefaultMeasurementSystem,
		settings.DefaultGoogleMapType,
		toMillis(settings.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put user settings: %w", err)
	}
	return nil
}
