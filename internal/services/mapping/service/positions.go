package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/services/mapping/core/filter"
	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
)

// AddPositionInput describes one position creation request.
type AddPositionInput struct {
	ProjectID  string
	Properties []domain.PositionProperty
}

// AddPosition validates the properties against the project schema and
// stores the position. Every core field requires a non-empty value.
func (s *Service) AddPosition(ctx context.Context, input AddPositionInput) (domain.Position, error) {
	positions, err := s.AddPositions(ctx, []AddPositionInput{input})
	if err != nil {
		return domain.Position{}, err
	}
	return positions[0], nil
}

// AddPositions stores a batch of positions. One invalid entry rejects the
// whole batch and persists nothing.
func (s *Service) AddPositions(ctx context.Context, inputs []AddPositionInput) ([]domain.Position, error) {
	if len(inputs) == 0 {
		return nil, apperrors.New(apperrors.CodePositionNoProperties, "at least one position is required")
	}

	now := s.clock().UTC()
	positions := make([]domain.Position, 0, len(inputs))
	for _, input := range inputs {
		projectID := strings.TrimSpace(input.ProjectID)
		if projectID == "" {
			return nil, apperrors.New(apperrors.CodeProjectNotFound, "project id is required")
		}
		properties, err := domain.NormalizeProperties(input.Properties)
		if err != nil {
			return nil, err
		}
		positionID, err := s.idGenerator()
		if err != nil {
			return nil, fmt.Errorf("generate position id: %w", err)
		}
		positions = append(positions, domain.Position{
			ID:         positionID,
			ProjectID:  projectID,
			Properties: properties,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if err := s.store.CreatePositions(ctx, positions); err != nil {
		return nil, notFound(err, apperrors.CodeProjectNotFound, "project does not exist")
	}
	s.emitter.Info(ctx, "positions.added", positions[0].ProjectID,
		traceDetail(ctx, fmt.Sprintf("count=%d", len(positions))))
	return positions, nil
}

// UpdatePosition merges properties into the position by name. Supplied
// names must reference live fields; values are type-checked. Core
// completeness is not re-checked on update.
func (s *Service) UpdatePosition(ctx context.Context, positionID string, properties []domain.PositionProperty) (domain.Position, error) {
	positionID = strings.TrimSpace(positionID)
	if positionID == "" {
		return domain.Position{}, apperrors.New(apperrors.CodePositionNotFound, "position id is required")
	}
	normalized, err := domain.NormalizeProperties(properties)
	if err != nil {
		return domain.Position{}, err
	}

	if err := s.store.UpdatePosition(ctx, positionID, normalized, s.clock().UTC()); err != nil {
		return domain.Position{}, notFound(err, apperrors.CodePositionNotFound, "position does not exist")
	}

	position, err := s.store.GetPosition(ctx, positionID)
	if err != nil {
		return domain.Position{}, notFound(err, apperrors.CodePositionNotFound, "position does not exist")
	}
	s.emitter.Info(ctx, "position.updated", position.ProjectID, traceDetail(ctx, "position="+positionID))
	return position, nil
}

// DeletePosition removes the position and its property values.
func (s *Service) DeletePosition(ctx context.Context, positionID string) error {
	positionID = strings.TrimSpace(positionID)
	if positionID == "" {
		return apperrors.New(apperrors.CodePositionNotFound, "position id is required")
	}
	if err := s.store.DeletePosition(ctx, positionID); err != nil {
		return notFound(err, apperrors.CodePositionNotFound, "position does not exist")
	}
	s.emitter.Info(ctx, "position.deleted", "", traceDetail(ctx, "position="+positionID))
	return nil
}

// SearchPositions returns the project's positions matching the query. An
// empty query returns every position. Structured queries filter on the
// field name and value; anything else matches as a substring over values.
func (s *Service) SearchPositions(ctx context.Context, projectID, query string) ([]domain.Position, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, apperrors.New(apperrors.CodeProjectNotFound, "project id is required")
	}
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, notFound(err, apperrors.CodeProjectNotFound, "project does not exist")
	}

	positionFilter, err := filter.ParsePositionQuery(query)
	if err != nil {
		return nil, err
	}
	return s.store.SearchPositions(ctx, projectID, positionFilter)
}
