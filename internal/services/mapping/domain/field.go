package domain

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
)

// FieldType describes the declared value type of a position field.
type FieldType int

const (
	// FieldTypeUnspecified represents an invalid field type value.
	FieldTypeUnspecified FieldType = iota
	// FieldTypeString declares free-text values.
	FieldTypeString
	// FieldTypeNumeric declares decimal coordinate or measurement values.
	FieldTypeNumeric
)

// String returns the wire name of the field type.
func (t FieldType) String() string {
	switch t {
	case FieldTypeString:
		return "STRING"
	case FieldTypeNumeric:
		return "NUMERIC"
	default:
		return "UNSPECIFIED"
	}
}

// ParseFieldType maps a wire name to a field type.
func ParseFieldType(value string) FieldType {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "STRING":
		return FieldTypeString
	case "NUMERIC":
		return FieldTypeNumeric
	default:
		return FieldTypeUnspecified
	}
}

// PositionField describes one schema field declared on a project.
type PositionField struct {
	ID        string
	ProjectID string
	Name      string
	Type      FieldType
	Order     int
	IsCore    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time // zero when the field is live
}

// Deleted reports whether the field has been soft-deleted.
func (f PositionField) Deleted() bool {
	return !f.DeletedAt.IsZero()
}

// CoreFieldSpec describes one auto-created core field.
type CoreFieldSpec struct {
	Name string
	Type FieldType
}

// CoreFields returns the fixed core field set in canonical order. Every
// project carries these fields for as long as it exists, and every
// position must supply a non-empty value for each of them.
func CoreFields() []CoreFieldSpec {
	return []CoreFieldSpec{
		{Name: "core_icon", Type: FieldTypeString},
		{Name: "core_latitude", Type: FieldTypeNumeric},
		{Name: "core_longitude", Type: FieldTypeNumeric},
	}
}

// NormalizeFieldName trims and validates a field name.
func NormalizeFieldName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.New(apperrors.CodeFieldNameEmpty, "field name is required")
	}
	return name, nil
}

// ValidateFieldType rejects unspecified field types.
func ValidateFieldType(t FieldType) error {
	if t == FieldTypeUnspecified {
		return apperrors.New(apperrors.CodeFieldInvalidType, "field type is required")
	}
	return nil
}

// ValidateFieldValue checks a property value against the field's declared type.
// Values travel as strings; NUMERIC values must parse as a decimal number.
func ValidateFieldValue(field PositionField, value string) error {
	if field.Type != FieldTypeNumeric {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return apperrors.WithMetadata(
			apperrors.CodePositionValueTypeMismatch,
			"value does not match declared field type",
			map[string]string{
				"Name":  field.Name,
				"Type":  field.Type.String(),
				"Value": value,
			},
		)
	}
	return nil
}
