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

// CreatePosition validates every property against the project schema, then
// stores the position and its properties atomically. A rejected create
// persists nothing.
func (s *Store) CreatePosition(ctx context.Context, position domain.Position) error {
	return s.CreatePositions(ctx, []domain.Position{position})
}

// CreatePositions validates and stores a batch of positions in one
// transaction. Any rejection rolls back the whole batch.
func (s *Store) CreatePositions(ctx context.Context, positions []domain.Position) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if len(positions) == 0 {
		return nil
	}
	for _, position := range positions {
		if strings.TrimSpace(position.ID) == "" {
			return fmt.Errorf("position id is required")
		}
		if strings.TrimSpace(position.ProjectID) == "" {
			return fmt.Errorf("project id is required")
		}
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		schemas := make(map[string]projectSchema)
		for _, position := range positions {
			schema, ok := schemas[position.ProjectID]
			if !ok {
				loaded, err := loadProjectSchema(ctx, tx, position.ProjectID)
				if err != nil {
					return err
				}
				schema = loaded
				schemas[position.ProjectID] = schema
			}

			if err := schema.validate(position.Properties); err != nil {
				return err
			}

			_, err := tx.ExecContext(
				ctx,
				`INSERT INTO positions (position_id, project_id, created_at, updated_at)
				 VALUES (?, ?, ?, ?)`,
				position.ID,
				position.ProjectID,
				toMillis(position.CreatedAt),
				toMillis(position.UpdatedAt),
			)
			if err != nil {
				if isUniqueViolation(err) {
					return storage.ErrAlreadyExists
				}
				return fmt.Errorf("create position: %w", err)
			}

			for _, property := range position.Properties {
				field := schema.fields[property.Name]
				_, err := tx.ExecContext(
					ctx,
					`INSERT INTO position_properties (position_id, position_field_id, name, value)
					 VALUES (?, ?, ?, ?)`,
					position.ID,
					field.ID,
					property.Name,
					property.Value,
				)
				if err != nil {
					return fmt.Errorf("create position property: %w", err)
				}
			}
		}
		return nil
	})
}

// GetPosition returns one position with its properties in field order.
func (s *Store) GetPosition(ctx context.Context, positionID string) (domain.Position, error) {
	if err := ctx.Err(); err != nil {
		return domain.Position{}, err
	}
	if err := s.ready(); err != nil {
		return domain.Position{}, err
	}
	positionID = strings.TrimSpace(positionID)
	if positionID == "" {
		return domain.Position{}, fmt.Errorf("position id is required")
	}

	var position domain.Position
	var createdAt int64
	var updatedAt int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT position_id, project_id, created_at, updated_at
		   FROM positions
		  WHERE position_id = ?`,
		positionID,
	).Scan(&position.ID, &position.ProjectID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Position{}, storage.ErrNotFound
		}
		return domain.Position{}, fmt.Errorf("get position: %w", err)
	}
	position.CreatedAt = fromMillis(createdAt)
	position.UpdatedAt = fromMillis(updatedAt)

	properties, err := s.positionProperties(ctx, positionID)
	if err != nil {
		return domain.Position{}, err
	}
	position.Properties = properties
	return position, nil
}

// UpdatePosition merges properties into the position by name. Supplied
// names must reference live fields on the position's project; values are
// type-checked before anything is written.
func (s *Store) UpdatePosition(ctx context.Context, positionID string, properties []domain.PositionProperty, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	positionID = strings.TrimSpace(positionID)
	if positionID == "" {
		return fmt.Errorf("position id is required")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		var projectID string
		err := tx.QueryRowContext(
			ctx,
			`SELECT project_id FROM positions WHERE position_id = ?`,
			positionID,
		).Scan(&projectID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("update position: %w", err)
		}

		schema, err := loadProjectSchema(ctx, tx, projectID)
		if err != nil {
			return err
		}
		for _, property := range properties {
			field, ok := schema.fields[property.Name]
			if !ok {
				return apperrors.WithMetadata(
					apperrors.CodeFieldNotOnProject,
					"field is not declared on the project",
					map[string]string{"Name": property.Name},
				)
			}
			if err := domain.ValidateFieldValue(field, property.Value); err != nil {
				return err
			}
		}

		for _, property := range properties {
			field := schema.fields[property.Name]
			_, err := tx.ExecContext(
				ctx,
				`INSERT INTO position_properties (position_id, position_field_id, name, value)
				 VALUES (?, ?, ?, ?)
				 ON CONFLICT (position_id, name) DO UPDATE SET value = excluded.value`,
				positionID,
				field.ID,
				property.Name,
				property.Value,
			)
			if err != nil {
				return fmt.Errorf("update position property: %w", err)
			}
		}

		_, err = tx.ExecContext(
			ctx,
			`UPDATE positions SET updated_at = ? WHERE position_id = ?`,
			toMillis(updatedAt),
			positionID,
		)
		if err != nil {
			return fmt.Errorf("update position: %w", err)
		}
		return nil
	})
}

// DeletePosition removes the position and its properties.
func (s *Store) DeletePosition(ctx context.Context, positionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	positionID = strings.TrimSpace(positionID)
	if positionID == "" {
		return fmt.Errorf("position id is required")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`DELETE FROM position_properties WHERE position_id = ?`,
			positionID,
		)
		if err != nil {
			return fmt.Errorf("delete position: %w", err)
		}

		result, err := tx.ExecContext(
			ctx,
			`DELETE FROM positions WHERE position_id = ?`,
			positionID,
		)
		if err != nil {
			return fmt.Errorf("delete position: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete position: %w", err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}

// SearchPositions returns the project's positions whose property rows
// satisfy the filter, oldest first, each with properties in field order.
func (s *Store) SearchPositions(ctx context.Context, projectID string, filter storage.PositionFilter) ([]domain.Position, error) {
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

	query := `SELECT position_id, project_id, created_at, updated_at
	            FROM positions
	           WHERE project_id = ?`
	params := []any{projectID}
	if filter.Clause != "" {
		query += ` AND EXISTS (
		     SELECT 1 FROM position_properties
		      WHERE position_id = positions.position_id AND (` + filter.Clause + `))`
		params = append(params, filter.Params...)
	}
	query += ` ORDER BY created_at ASC, position_id ASC`

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("search positions: %w", err)
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		var position domain.Position
		var createdAt int64
		var updatedAt int64
		if err := rows.Scan(&position.ID, &position.ProjectID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("search positions: %w", err)
		}
		position.CreatedAt = fromMillis(createdAt)
		position.UpdatedAt = fromMillis(updatedAt)
		positions = append(positions, position)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search positions: %w", err)
	}

	for i := range positions {
		properties, err := s.positionProperties(ctx, positions[i].ID)
		if err != nil {
			return nil, err
		}
		positions[i].Properties = properties
	}
	return positions, nil
}

func (s *Store) positionProperties(ctx context.Context, positionID string) ([]domain.PositionProperty, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT pp.name, pp.value
		   FROM position_properties pp
		   JOIN position_fields pf ON pf.position_field_id = pp.position_field_id
		  WHERE pp.position_id = ?
		  ORDER BY pf.display_order ASC, pp.name ASC`,
		positionID,
	)
	if err != nil {
		return nil, fmt.Errorf("get position properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.PositionProperty
	for rows.Next() {
		var property domain.PositionProperty
		if err := rows.Scan(&property.Name, &property.Value); err != nil {
			return nil, fmt.Errorf("get position properties: %w", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get position properties: %w", err)
	}
	return properties, nil
}

// projectSchema is the live field set of one project, loaded inside the
// transaction that validates against it.
type projectSchema struct {
	fields    map[string]domain.PositionField
	coreNames []string
}

func (schema projectSchema) validate(properties []domain.PositionProperty) error {
	for _, property := range properties {
		field, ok := schema.fields[property.Name]
		if !ok {
			return apperrors.WithMetadata(
				apperrors.CodeFieldNotOnProject,
				"field is not declared on the project",
				map[string]string{"Name": property.Name},
			)
		}
		if err := domain.ValidateFieldValue(field, property.Value); err != nil {
			return err
		}
	}
	if missing := domain.MissingCoreField(schema.coreNames, properties); missing != "" {
		return apperrors.WithMetadata(
			apperrors.CodePositionMissingCoreValue,
			"every core field requires a non-empty value",
			map[string]string{"Name": missing},
		)
	}
	return nil
}

func loadProjectSchema(ctx context.Context, tx *sql.Tx, projectID string) (projectSchema, error) {
	var exists int
	err := tx.QueryRowContext(
		ctx,
		`SELECT 1 FROM projects WHERE project_id = ?`,
		projectID,
	).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return projectSchema{}, storage.ErrNotFound
		}
		return projectSchema{}, fmt.Errorf("load project schema: %w", err)
	}

	rows, err := tx.QueryContext(
		ctx,
		`SELECT position_field_id, project_id, name, field_type, display_order,
		        is_core, created_at, updated_at, deleted_at
		   FROM position_fields
		  WHERE project_id = ? AND deleted_at IS NULL
		  ORDER BY display_order ASC`,
		projectID,
	)
	if err != nil {
		return projectSchema{}, fmt.Errorf("load project schema: %w", err)
	}
	defer rows.Close()

	schema := projectSchema{fields: make(map[string]domain.PositionField)}
	for rows.Next() {
		field, err := scanField(rows.Scan)
		if err != nil {
			return projectSchema{}, fmt.Errorf("load project schema: %w", err)
		}
		schema.fields[field.Name] = field
		if field.IsCore {
			schema.coreNames = append(schema.coreNames, field.Name)
		}
	}
	if err := rows.Err(); err != nil {
		return projectSchema{}, fmt.Errorf("load project schema: %w", err)
	}
	return schema, nil
}
