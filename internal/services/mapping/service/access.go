package service

import (
	"context"
	"strings"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
)

// AddProjectAccess grants PUBLIC, READONLY, or COLLABORATOR access to a
// project. OWNER grants only exist from project creation and are rejected
// here. Non-PUBLIC grants require at least one valid invitee address.
func (s *Service) AddProjectAccess(ctx context.Context, input domain.CreateAccessInput) (domain.ProjectAccess, error) {
	if strings.TrimSpace(input.ProjectID) == "" {
		return domain.ProjectAccess{}, apperrors.New(apperrors.CodeProjectNotFound, "project id is required")
	}
	access, err := domain.CreateAccess(input, s.clock, s.idGenerator)
	if err != nil {
		return domain.ProjectAccess{}, err
	}
	if err := s.store.AddAccess(ctx, access); err != nil {
		return domain.ProjectAccess{}, notFound(err, apperrors.CodeProjectNotFound, "project does not exist")
	}
	s.emitter.Info(ctx, "access.granted", access.ProjectID,
		traceDetail(ctx, "type="+access.Type.String()))
	return access, nil
}

// GetProjectAccess returns the project's grants, OWNER first.
func (s *Service) GetProjectAccess(ctx context.Context, projectID string) ([]domain.ProjectAccess, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, apperrors.New(apperrors.CodeProjectNotFound, "project id is required")
	}
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, notFound(err, apperrors.CodeProjectNotFound, "project does not exist")
	}
	return s.store.ListAccess(ctx, projectID)
}

// DeleteProjectAccess removes a non-OWNER grant. The OWNER grant is only
// removed with the project itself.
func (s *Service) DeleteProjectAccess(ctx context.Context, accessID string) error {
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return apperrors.New(apperrors.CodeAccessNotFound, "access id is required")
	}
	if err := s.store.DeleteAccess(ctx, accessID); err != nil {
		return notFound(err, apperrors.CodeAccessNotFound, "access grant does not exist")
	}
	s.emitter.Info(ctx, "access.revoked", "", traceDetail(ctx, "access="+accessID))
	return nil
}
