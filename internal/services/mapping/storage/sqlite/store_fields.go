package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// AddField appends one custom field to the project's schema. A name held by
// a live field on the same project is rejected; soft-deleted names are free
// for reuse.
func (s *Store) AddField(ctx context.Context, field domain.PositionField) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(field.ID) == "" {
		return fmt.Errorf("field id is required")
	}
	if strings.TrimSpace(field.ProjectID) == "" {
		return fmt.Errorf("project id is required")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(
			ctx,
			`SELECT 1 FROM projects WHERE project_id = ?`,
			field.ProjectID,
		).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("add field: %w", err)
		}

		if field.Order == 0 {
			var next int
			err := tx.QueryRowContext(
				ctx,
				`SELECT COALESCE(MAX(display_order), 0) + 1
				   FROM position_fields
				  WHERE project_id = ?`,
				field.ProjectID,
			).Scan(&next)
			if err != nil {
				return fmt.Errorf("add field: %w", err)
			}
			field.Order = next
		}

		if err := insertField(ctx, tx, field); err != nil {
			return err
		}
		return nil
	})
}

// GetField returns one field by ID, including soft-deleted fields.
func (s *Store) GetField(ctx context.Context, fieldID string) (domain.PositionField, error) {
	if err := ctx.Err(); err != nil {
		return domain.PositionField{}, err
	}
	if err := s.ready(); err != nil {
		return domain.PositionField{}, err
	}
	fieldID = strings.TrimSpace(fieldID)
	if fieldID == "" {
		return domain.PositionField{}, fmt.Errorf("field id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT position_field_id, project_id, name, field_type, display_order,
		        is_core, created_at, updated_at, deleted_at
		   FROM position_fields
		  WHERE position_field_id = ?`,
		fieldID,
	)
	field, err := scanField(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PositionField{}, storage.ErrNotFound
		}
		return domain.PositionField{}, fmt.Errorf("get field: %w", err)
	}
	return field, nil
}

// ListFields returns the project's fields ordered by display order. Deleted
// fields are excluded unless includeDeleted is set, and a non-empty names
// slice restricts the result to that subset.
func (s *Store) ListFields(ctx context.Context, projectID string, includeDeleted bool, names []string) ([]domain.PositionField, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("project id is required")
	}

	query := `SELECT position_field_id, project_id, name, field_type, display_order,
	                 is_core, created_at, updated_at, deleted_at
	            FROM position_fields
	           WHERE project_id = ?`
	params := []any{projectID}
	if !includeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	if len(names) > 0 {
		placeholders := strings.Repeat("?,", len(names))
		query += ` AND name IN (` + placeholders[:len(placeholders)-1] + `)`
		for _, name := range names {
			params = append(params, name)
		}
	}
	query += ` ORDER BY display_order ASC, name ASC`

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	var fields []domain.PositionField
	for rows.Next() {
		field, err := scanField(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list fields: %w", err)
		}
		fields = append(fields, field)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return fields, nil
}

// ReorderFields rewrites order values, and optional renames, for the given
// fields of one project atomically. Core fields keep their names.
func (s *Store) ReorderFields(ctx context.Context, projectID string, updates []storage.FieldOrderUpdate, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return fmt.Errorf("project id is required")
	}
	if len(updates) == 0 {
		return nil
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, update := range updates {
			fieldID := strings.TrimSpace(update.FieldID)
			if fieldID == "" {
				return fmt.Errorf("field id is required")
			}

			var isCore int
			var currentName string
			err := tx.QueryRowContext(
				ctx,
				`SELECT is_core, name
				   FROM position_fields
				  WHERE position_field_id = ? AND project_id = ? AND deleted_at IS NULL`,
				fieldID,
				projectID,
			).Scan(&isCore, &currentName)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apperrors.WithMetadata(
						apperrors.CodeFieldNotOnProject,
						"field is not declared on the project",
						map[string]string{"FieldID": fieldID},
					)
				}
				return fmt.Errorf("reorder fields: %w", err)
			}

			name := strings.TrimSpace(update.Name)
			if name == "" {
				name = currentName
			}
			if isCore == 1 && name != currentName {
				return apperrors.WithMetadata(
					apperrors.CodeFieldCoreImmutable,
					"core fields cannot be renamed",
					map[string]string{"Name": currentName},
				)
			}

			_, err = tx.ExecContext(
				ctx,
				`UPDATE position_fields
				    SET display_order = ?, name = ?, updated_at = ?
				  WHERE position_field_id = ?`,
				update.Order,
				name,
				toMillis(updatedAt),
				fieldID,
			)
			if err != nil {
				if isUniqueViolation(err) {
					return apperrors.WithMetadata(
						apperrors.CodeFieldNameTaken,
						"a live field with this name already exists",
						map[string]string{"Name": name},
					)
				}
				return fmt.Errorf("reorder fields: %w", err)
			}

			if name != currentName {
				_, err = tx.ExecContext(
					ctx,
					`UPDATE position_properties
					    SET name = ?
					  WHERE position_field_id = ?`,
					name,
					fieldID,
				)
				if err != nil {
					return fmt.Errorf("reorder fields: %w", err)
				}
			}
		}
		return nil
	})
}

// DeleteField soft-deletes a non-core field and removes the property values
// referencing it in the same transaction.
func (s *Store) DeleteField(ctx context.Context, fieldID string, deletedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	fieldID = strings.TrimSpace(fieldID)
	if fieldID == "" {
		return fmt.Errorf("field id is required")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		var isCore int
		err := tx.QueryRowContext(
			ctx,
			`SELECT is_core
			   FROM position_fields
			  WHERE position_field_id = ? AND deleted_at IS NULL`,
			fieldID,
		).Scan(&isCore)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("delete field: %w", err)
		}
		if isCore == 1 {
			return apperrors.New(apperrors.CodeFieldCoreImmutable, "core fields cannot be deleted")
		}

		_, err = tx.ExecContext(
			ctx,
			`DELETE FROM position_properties WHERE position_field_id = ?`,
			fieldID,
		)
		if err != nil {
			return fmt.Errorf("delete field: %w", err)
		}

		_, err = tx.ExecContext(
			ctx,
			`UPDATE position_fields
			    SET deleted_at = ?, updated_at = ?
			  WHERE position_field_id = ?`,
			toMillis(deletedAt),
			toMillis(deletedAt),
			fieldID,
		)
		if err != nil {
			return fmt.Errorf("delete field: %w", err)
		}
		return nil
	})
}

func insertField(ctx context.Context, tx *sql.Tx, field domain.PositionField) error {
	var deletedAt any
	if !field.DeletedAt.IsZero() {
		deletedAt = toMillis(field.DeletedAt)
	}
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO position_fields (
		   position_field_id, project_id, name, field_type, display_order,
		   is_core, created_at, updated_at, deleted_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		field.ID,
		field.ProjectID,
		field.Name,
		field.Type.String(),
		field.Order,
		boolToInt(field.IsCore),
		toMillis(field.CreatedAt),
		toMillis(field.UpdatedAt),
		deletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.WithMetadata(
				apperrors.CodeFieldNameTaken,
				"a live field with this name already exists",
				map[string]string{"Name": field.Name},
			)
		}
		return fmt.Errorf("insert field: %w", err)
	}
	return nil
}

func scanField(scan func(...any) error) (domain.PositionField, error) {
	var field domain.PositionField
	var fieldType string
	var isCore int
	var createdAt int64
	var updatedAt int64
	var deletedAt sql.NullInt64
	err := scan(
		&field.ID,
		&field.ProjectID,
		&field.Name,
		&fieldType,
		&field.Order,
		&isCore,
		&createdAt,
		&updatedAt,
		&deletedAt,
	)
	if err != nil {
		return domain.PositionField{}, err
	}
	field.Type = domain.ParseFieldType(fieldType)
	field.IsCore = isCore == 1
	field.CreatedAt = fromMillis(createdAt)
	field.UpdatedAt = fromMillis(updatedAt)
	if deletedAt.Valid {
		field.DeletedAt = fromMillis(deletedAt.Int64)
	}
	return field, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
