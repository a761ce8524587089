package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// AddPositionFieldInput describes a custom field declaration.
type AddPositionFieldInput struct {
	ProjectID string
	Name      string
	Type      domain.FieldType
}

// AddPositionField appends one custom field to the project's schema.
func (s *Service) AddPositionField(ctx context.Context, input AddPositionFieldInput) (domain.PositionField, error) {
	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return domain.PositionField{}, apperrors.New(apperrors.CodeProjectNotFound, "project id is required")
	}
	name, err := domain.NormalizeFieldName(input.Name)
	if err != nil {
		return domain.PositionField{}, err
	}
	if err := domain.ValidateFieldType(input.Type); err != nil {
		return domain.PositionField{}, err
	}

	fieldID, err := s.idGenerator()
	if err != nil {
		return domain.PositionField{}, fmt.Errorf("generate field id: %w", err)
	}
	now := s.clock().UTC()
	field := domain.PositionField{
		ID:        fieldID,
		ProjectID: projectID,
		Name:      name,
		Type:      input.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.AddField(ctx, field); err != nil {
		return domain.PositionField{}, notFound(err, apperrors.CodeProjectNotFound, "project does not exist")
	}

	stored, err := s.store.GetField(ctx, fieldID)
	if err != nil {
		return domain.PositionField{}, err
	}
	s.emitter.Info(ctx, "field.added", projectID, traceDetail(ctx, "name="+name))
	return stored, nil
}

// GetPositionFieldsInput selects which of a project's fields to return.
type GetPositionFieldsInput struct {
	ProjectID      string
	IncludeDeleted bool
	Names          []string // empty returns every field
}

// GetPositionFields returns the project's fields in display order.
func (s *Service) GetPositionFields(ctx context.Context, input GetPositionFieldsInput) ([]domain.PositionField, error) {
	projectID := strings.TrimSpace(input.ProjectID)
	if projectID == "" {
		return nil, apperrors.New(apperrors.CodeProjectNotFound, "project id is required")
	}
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, notFound(err, apperrors.CodeProjectNotFound, "project does not exist")
	}
	return s.store.ListFields(ctx, projectID, input.IncludeDeleted, input.Names)
}

// FieldOrderEntry names one field's slot in a reordered schema.
type FieldOrderEntry struct {
	FieldID string
	Name    string // empty keeps the current name; core fields cannot rename
}

// UpdatePositionFields rewrites each listed field's order to its slot in
// the entry list, renaming non-core fields where a new name is given. The
// list may cover a subset of the schema; unlisted fields keep their order.
// The whole update applies atomically, and applying the same list twice is
// a no-op.
func (s *Service) UpdatePositionFields(ctx context.Context, projectID string, entries []FieldOrderEntry) ([]domain.PositionField, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, apperrors.New(apperrors.CodeProjectNotFound, "project id is required")
	}
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, notFound(err, apperrors.CodeProjectNotFound, "project does not exist")
	}

	seen := make(map[string]bool, len(entries))
	updates := make([]storage.FieldOrderUpdate, 0, len(entries))
	for i, entry := range entries {
		fieldID := strings.TrimSpace(entry.FieldID)
		if fieldID == "" || seen[fieldID] {
			return nil, apperrors.New(
				apperrors.CodeFieldOrderIncomplete,
				"field order entries must name distinct fields",
			)
		}
		seen[fieldID] = true
		updates = append(updates, storage.FieldOrderUpdate{
			FieldID: fieldID,
			Order:   i + 1,
			Name:    strings.TrimSpace(entry.Name),
		})
	}

	if err := s.store.ReorderFields(ctx, projectID, updates, s.clock().UTC()); err != nil {
		return nil, err
	}
	s.emitter.Info(ctx, "fields.reordered", projectID, traceDetail(ctx, ""))
	return s.store.ListFields(ctx, projectID, false, nil)
}

// DeletePositionField soft-deletes a non-core field, freeing its name and
// removing its values from every position.
func (s *Service) DeletePositionField(ctx context.Context, fieldID string) error {
	fieldID = strings.TrimSpace(fieldID)
	if fieldID == "" {
		return apperrors.New(apperrors.CodeFieldNotFound, "field id is required")
	}
	if err := s.store.DeleteField(ctx, fieldID, s.clock().UTC()); err != nil {
		return notFound(err, apperrors.CodeFieldNotFound, "field does not exist")
	}
	s.emitter.Info(ctx, "field.deleted", "", traceDetail(ctx, "field="+fieldID))
	return nil
}
