package domain

import (
	"strings"
	"time"
)

// Default values returned before a user stores any settings.
const (
	DefaultLanguage          = "EN_US"
	DefaultGPSFormat         = "DECIMAL"
	DefaultMeasurementSystem = "METRIC"
	DefaultGoogleMapType     = "ROADMAP"
)

// UserSettings holds a user's mapping display preferences. Settings exist
// lazily: the first read returns defaults without persisting anything.
type UserSettings struct {
	UserID                   string
	DefaultLanguage          string
	DefaultGPSFormat         string
	DefaultMeasurementSystem string
	DefaultGoogleMapType     string
	UpdatedAt                time.Time
}

// DefaultUserSettings returns the defaults for a user with no stored row.
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:                   strings.TrimSpace(userID),
		DefaultLanguage:          DefaultLanguage,
		DefaultGPSFormat:         DefaultGPSFormat,
		DefaultMeasurementSystem: DefaultMeasurementSystem,
		DefaultGoogleMapType:     DefaultGoogleMapType,
	}
}

// NormalizeUserSettings trims values and fills blanks with defaults.
func NormalizeUserSettings(settings UserSettings) (UserSettings, error) {
	settings.UserID = strings.TrimSpace(settings.UserID)
	if settings.UserID == "" {
		return UserSettings{}, ErrEmptyActor
	}
	defaults := DefaultUserSettings(settings.UserID)
	if strings.TrimSpace(settings.DefaultLanguage) == "" {
		settings.DefaultLanguage = defaults.DefaultLanguage
	}
	if strings.TrimSpace(settings.DefaultGPSFormat) == "" {
		settings.DefaultGPSFormat = defaults.DefaultGPSFormat
	}
	if strings.TrimSpace(settings.DefaultMeasurementSystem) == "" {
		settings.DefaultMeasurementSystem = defaults.DefaultMeasurementSystem
	}
	if strings.TrimSpace(settings.DefaultGoogleMapType) == "" {
		settings.DefaultGoogleMapType = defaults.DefaultGoogleMapType
	}
	return settings, nil
}
