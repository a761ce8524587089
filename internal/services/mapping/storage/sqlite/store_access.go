package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// AddAccess stores one non-OWNER access grant with its invitees.
func (s *Store) AddAccess(ctx context.Context, access domain.ProjectAccess) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(access.ID) == "" {
		return fmt.Errorf("access id is required")
	}
	if strings.TrimSpace(access.ProjectID) == "" {
		return fmt.Errorf("project id is required")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(
			ctx,
			`SELECT 1 FROM projects WHERE project_id = ?`,
			access.ProjectID,
		).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("add access: %w", err)
		}
		return insertAccess(ctx, tx, access)
	})
}

// GetAccess returns one access grant with its invitees.
func (s *Store) GetAccess(ctx context.Context, accessID string) (domain.ProjectAccess, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProjectAccess{}, err
	}
	if err := s.ready(); err != nil {
		return domain.ProjectAccess{}, err
	}
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return domain.ProjectAccess{}, fmt.Errorf("access id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT project_access_id, project_id, user_id, access_type, language,
		        measurement_system, gps_format, map_type, message,
		        created_at, updated_at
		   FROM project_access
		  WHERE project_access_id = ?`,
		accessID,
	)
	access, err := scanAccess(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ProjectAccess{}, storage.ErrNotFound
		}
		return domain.ProjectAccess{}, fmt.Errorf("get access: %w", err)
	}

	invitees, err := s.accessInvitees(ctx, accessID)
	if err != nil {
		return domain.ProjectAccess{}, err
	}
	access.Invitees = invitees
	return access, nil
}

// ListAccess returns the project's grants with the OWNER row first, then
// the rest oldest first.
func (s *Store) ListAccess(ctx context.Context, projectID string) ([]domain.ProjectAccess, error) {
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

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT project_access_id, project_id, user_id, access_type, language,
		        measurement_system, gps_format, map_type, message,
		        created_at, updated_at
		   FROM project_access
		  WHERE project_id = ?
		  ORDER BY CASE WHEN access_type = 'OWNER' THEN 0 ELSE 1 END,
		           created_at ASC, project_access_id ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list access: %w", err)
	}
	defer rows.Close()

	var grants []domain.ProjectAccess
	for rows.Next() {
		access, err := scanAccess(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list access: %w", err)
		}
		grants = append(grants, access)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list access: %w", err)
	}

	for i := range grants {
		invitees, err := s.accessInvitees(ctx, grants[i].ID)
		if err != nil {
			return nil, err
		}
		grants[i].Invitees = invitees
	}
	return grants, nil
}

// DeleteAccess removes a non-OWNER grant and its invitees. The OWNER row
// lives and dies with the project.
func (s *Store) DeleteAccess(ctx context.Context, accessID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	accessID = strings.TrimSpace(accessID)
	if accessID == "" {
		return fmt.Errorf("access id is required")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		var accessType string
		err := tx.QueryRowContext(
			ctx,
			`SELECT access_type FROM project_access WHERE project_access_id = ?`,
			accessID,
		).Scan(&accessType)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("delete access: %w", err)
		}
		if domain.ParseAccessType(accessType) == domain.AccessTypeOwner {
			return apperrors.New(apperrors.CodeAccessOwnerImmutable, "owner access cannot be deleted")
		}

		_, err = tx.ExecContext(
			ctx,
			`DELETE FROM access_invitees WHERE project_access_id = ?`,
			accessID,
		)
		if err != nil {
			return fmt.Errorf("delete access: %w", err)
		}
		_, err = tx.ExecContext(
			ctx,
			`DELETE FROM project_access WHERE project_access_id = ?`,
			accessID,
		)
		if err != nil {
			return fmt.Errorf("delete access: %w", err)
		}
		return nil
	})
}

func insertAccess(ctx context.Context, tx *sql.Tx, access domain.ProjectAccess) error {
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO project_access (
		   project_access_id, project_id, user_id, access_type, language,
		   measurement_system, gps_format, map_type, message,
		   created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		access.ID,
		access.ProjectID,
		access.UserID,
		access.Type.String(),
		access.Language,
		access.MeasurementSystem,
		access.GPSFormat,
		access.MapType,
		access.Message,
		toMillis(access.CreatedAt),
		toMillis(access.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			if access.Type == domain.AccessTypeOwner {
				return apperrors.New(apperrors.CodeAccessOwnerImmutable, "project already has an owner")
			}
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert access: %w", err)
	}

	for slot, email := range access.Invitees {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO access_invitees (project_access_id, slot, email)
			 VALUES (?, ?, ?)`,
			access.ID,
			slot,
			email,
		)
		if err != nil {
			return fmt.Errorf("insert access invitee: %w", err)
		}
	}
	return nil
}

func (s *Store) accessInvitees(ctx context.Context, accessID string) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT email FROM access_invitees
		  WHERE project_access_id = ?
		  ORDER BY slot ASC`,
		accessID,
	)
	if err != nil {
		return nil, fmt.Errorf("get access invitees: %w", err)
	}
	defer rows.Close()

	var invitees []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("get access invitees: %w", err)
		}
		invitees = append(invitees, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get access invitees: %w", err)
	}
	return invitees, nil
}

func scanAccess(scan func(...any) error) (domain.ProjectAccess, error) {
	var access domain.ProjectAccess
	var accessType string
	var createdAt int64
	var updatedAt int64
	err := scan(
		&access.ID,
		&access.ProjectID,
		&access.UserID,
		&accessType,
		&access.Language,
		&access.MeasurementSystem,
		&access.GPSFormat,
		&access.MapType,
		&access.Message,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.ProjectAccess{}, err
	}
	access.Type = domain.ParseAccessType(accessType)
	access.CreatedAt = fromMillis(createdAt)
	access.UpdatedAt = fromMillis(updatedAt)
	return access, nil
}
