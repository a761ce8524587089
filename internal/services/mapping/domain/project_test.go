package domain

import (
	"errors"
	"testing"
	"time"
)

func TestCreateProjectNormalizesInput(t *testing.T) {
	fixedTime := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	input := CreateProjectInput{
		Name:    "  trail-survey  ",
		OwnerID: " user-1 ",
	}

	project, err := CreateProject(input, func() time.Time { return fixedTime }, func() (string, error) {
		return "proj123", nil
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	if project.ID != "proj123" {
		t.Fatalf("expected id proj123, got %q", project.ID)
	}
	if project.Name != "trail-survey" {
		t.Fatalf("expected trimmed name, got %q", project.Name)
	}
	if project.OwnerID != "user-1" {
		t.Fatalf("expected trimmed owner, got %q", project.OwnerID)
	}
	if !project.CreatedAt.Equal(fixedTime) || !project.UpdatedAt.Equal(fixedTime) {
		t.Fatalf("expected timestamps to match fixed time")
	}
}

func TestNormalizeCreateProjectInputValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateProjectInput
		err   error
	}{
		{
			name:  "empty name",
			input: CreateProjectInput{Name: "   ", OwnerID: "user-1"},
			err:   ErrEmptyProjectName,
		},
		{
			name:  "empty owner",
			input: CreateProjectInput{Name: "survey", OwnerID: ""},
			err:   ErrEmptyActor,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeCreateProjectInput(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("error = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestCreateProjectGeneratesID(t *testing.T) {
	project, err := CreateProject(CreateProjectInput{Name: "survey", OwnerID: "user-1"}, nil, nil)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if len(project.ID) != 26 {
		t.Fatalf("expected generated 26-character id, got %q", project.ID)
	}
}
