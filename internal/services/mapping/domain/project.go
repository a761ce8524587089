// Package domain defines the mapping service entities and their validation rules.
package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/id"
)

var (
	// ErrEmptyProjectName indicates a missing project name.
	ErrEmptyProjectName = apperrors.New(apperrors.CodeProjectNameEmpty, "project name is required")
	// ErrEmptyActor indicates a missing actor identity.
	ErrEmptyActor = apperrors.New(apperrors.CodeActorEmpty, "actor id is required")
)

// Project represents metadata for a mapping project.
type Project struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateProjectInput describes the metadata needed to create a project.
type CreateProjectInput struct {
	Name    string
	OwnerID string
}

// CreateProject creates a new project with a generated ID and timestamps.
func CreateProject(input CreateProjectInput, now func() time.Time, idGenerator func() (string, error)) (Project, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateProjectInput(input)
	if err != nil {
		return Project{}, err
	}

	projectID, err := idGenerator()
	if err != nil {
		return Project{}, fmt.Errorf("generate project id: %w", err)
	}

	createdAt := now().UTC()
	return Project{
		ID:        projectID,
		Name:      normalized.Name,
		OwnerID:   normalized.OwnerID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil
}

// NormalizeCreateProjectInput trims and validates project input metadata.
func NormalizeCreateProjectInput(input CreateProjectInput) (CreateProjectInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.OwnerID = strings.TrimSpace(input.OwnerID)
	if input.Name == "" {
		return CreateProjectInput{}, ErrEmptyProjectName
	}
	if input.OwnerID == "" {
		return CreateProjectInput{}, ErrEmptyActor
	}
	return input, nil
}
