package domain

import (
	"strings"
	"time"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
)

// PositionProperty is one (name, value) pair owned by a position. The name
// must reference a live field declared on the position's project.
type PositionProperty struct {
	Name  string
	Value string
}

// Position is one EAV record holding a dynamic, schema-validated property set.
type Position struct {
	ID         string
	ProjectID  string
	Properties []PositionProperty
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NormalizeProperties trims property names and rejects empty names and
// duplicates. It does not check the project schema; schema validation
// happens inside the store transaction.
func NormalizeProperties(properties []PositionProperty) ([]PositionProperty, error) {
	if len(properties) == 0 {
		return nil, apperrors.New(apperrors.CodePositionNoProperties, "at least one property is required")
	}

	normalized := make([]PositionProperty, 0, len(properties))
	seen := make(map[string]bool, len(properties))
	for _, p := range properties {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, apperrors.New(apperrors.CodeFieldNameEmpty, "property name is required")
		}
		if seen[name] {
			return nil, apperrors.WithMetadata(
				apperrors.CodePositionDuplicateProperty,
				"property supplied more than once",
				map[string]string{"Name": name},
			)
		}
		seen[name] = true
		normalized = append(normalized, PositionProperty{Name: name, Value: p.Value})
	}
	return normalized, nil
}

// MissingCoreField returns the name of the first core field that has no
// non-empty value among properties, or "" when all core values are present.
// Core fields are checked in canonical order so rejections are deterministic.
func MissingCoreField(coreNames []string, properties []PositionProperty) string {
	values := make(map[string]string, len(properties))
	for _, p := range properties {
		values[p.Name] = p.Value
	}
	for _, name := range coreNames {
		if strings.TrimSpace(values[name]) == "" {
			return name
		}
	}
	return ""
}
