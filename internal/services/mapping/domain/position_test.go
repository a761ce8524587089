package domain

import (
	"testing"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
)

func TestNormalizePropertiesTrimsAndRejectsDuplicates(t *testing.T) {
	properties, err := NormalizeProperties([]PositionProperty{
		{Name: " core_latitude ", Value: "45"},
		{Name: "core_longitude", Value: "-122"},
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if properties[0].Name != "core_latitude" {
		t.Fatalf("name = %q, want trimmed core_latitude", properties[0].Name)
	}

	_, err = NormalizeProperties([]PositionProperty{
		{Name: "core_latitude", Value: "45"},
		{Name: "core_latitude", Value: "46"},
	})
	if !apperrors.IsCode(err, apperrors.CodePositionDuplicateProperty) {
		t.Fatalf("error = %v, want POSITION_DUPLICATE_PROPERTY", err)
	}
}

func TestNormalizePropertiesRejectsEmpty(t *testing.T) {
	if _, err := NormalizeProperties(nil); !apperrors.IsCode(err, apperrors.CodePositionNoProperties) {
		t.Fatalf("error = %v, want POSITION_NO_PROPERTIES", err)
	}
	_, err := NormalizeProperties([]PositionProperty{{Name: "  ", Value: "x"}})
	if !apperrors.IsCode(err, apperrors.CodeFieldNameEmpty) {
		t.Fatalf("error = %v, want FIELD_NAME_EMPTY", err)
	}
}

func TestMissingCoreField(t *testing.T) {
	coreNames := []string{"core_icon", "core_latitude", "core_longitude"}

	complete := []PositionProperty{
		{Name: "core_icon", Value: "a.png"},
		{Name: "core_latitude", Value: "1"},
		{Name: "core_longitude", Value: "2"},
	}
	if missing := MissingCoreField(coreNames, complete); missing != "" {
		t.Fatalf("missing = %q, want none", missing)
	}

	absent := complete[:2]
	if missing := MissingCoreField(coreNames, absent); missing != "core_longitude" {
		t.Fatalf("missing = %q, want core_longitude", missing)
	}

	empty := []PositionProperty{
		{Name: "core_icon", Value: "a.png"},
		{Name: "core_latitude", Value: "   "},
		{Name: "core_longitude", Value: "2"},
	}
	if missing := MissingCoreField(coreNames, empty); missing != "core_latitude" {
		t.Fatalf("missing = %q, want core_latitude", missing)
	}
}
