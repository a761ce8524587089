package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// AddProjectInput describes a project creation request.
type AddProjectInput struct {
	Name    string
	OwnerID string
}

// AddProject creates a project with its three core fields and the OWNER
// grant in one transaction. The owner grant inherits the creator's stored
// settings, or the defaults when none exist.
func (s *Service) AddProject(ctx context.Context, input AddProjectInput) (domain.Project, error) {
	project, err := domain.CreateProject(domain.CreateProjectInput{
		Name:    input.Name,
		OwnerID: input.OwnerID,
	}, s.clock, s.idGenerator)
	if err != nil {
		return domain.Project{}, err
	}

	settings, err := s.store.GetUserSettings(ctx, project.OwnerID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return domain.Project{}, fmt.Errorf("load owner settings: %w", err)
		}
		settings = domain.DefaultUserSettings(project.OwnerID)
	}

	coreFields := make([]domain.PositionField, 0, len(domain.CoreFields()))
	for i, spec := range domain.CoreFields() {
		fieldID, err := s.idGenerator()
		if err != nil {
			return domain.Project{}, fmt.Errorf("generate field id: %w", err)
		}
		coreFields = append(coreFields, domain.PositionField{
			ID:        fieldID,
			ProjectID: project.ID,
			Name:      spec.Name,
			Type:      spec.Type,
			Order:     i + 1,
			IsCore:    true,
			CreatedAt: project.CreatedAt,
			UpdatedAt: project.CreatedAt,
		})
	}

	owner, err := domain.GrantOwner(project.ID, project.OwnerID, settings, s.clock, s.idGenerator)
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.store.CreateProject(ctx, project, coreFields, owner); err != nil {
		return domain.Project{}, err
	}
	s.emitter.Info(ctx, "project.created", project.ID, traceDetail(ctx, "owner="+project.OwnerID))
	return project, nil
}

// DeleteProject removes the project and everything attached to it.
func (s *Service) DeleteProject(ctx context.Context, projectID string) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return apperrors.New(apperrors.CodeProjectNotFound, "project id is required")
	}
	if err := s.store.DeleteProject(ctx, projectID); err != nil {
		return notFound(err, apperrors.CodeProjectNotFound, "project does not exist")
	}
	s.emitter.Info(ctx, "project.deleted", projectID, traceDetail(ctx, ""))
	return nil
}

// GetProjects returns projects the user holds any access grant on.
func (s *Service) GetProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.ErrEmptyActor
	}
	return s.store.ListProjectsByUser(ctx, userID)
}
