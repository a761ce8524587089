package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
	"github.com/simplemapping/simplemapping/internal/services/mapping/storage"
)

// CreateProject stores the project, its core field rows, and the single
// OWNER grant in one transaction.
func (s *Store) CreateProject(ctx context.Context, project domain.Project, coreFields []domain.PositionField, owner domain.ProjectAccess) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	projectID := strings.TrimSpace(project.ID)
	if projectID == "" {
		return fmt.Errorf("project id is required")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO projects (project_id, name, owner_id, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?)`,
			projectID,
			project.Name,
			project.OwnerID,
			toMillis(project.CreatedAt),
			toMillis(project.UpdatedAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return storage.ErrAlreadyExists
			}
			return fmt.Errorf("create project: %w", err)
		}

		for _, field := range coreFields {
			if err := insertField(ctx, tx, field); err != nil {
				return err
			}
		}

		if err := insertAccess(ctx, tx, owner); err != nil {
			return err
		}
		return nil
	})
}

// GetProject returns one project by ID.
func (s *Store) GetProject(ctx context.Context, projectID string) (domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return domain.Project{}, err
	}
	if err := s.ready(); err != nil {
		return domain.Project{}, err
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return domain.Project{}, fmt.Errorf("project id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT project_id, name, owner_id, created_at, updated_at
		   FROM projects
		  WHERE project_id = ?`,
		projectID,
	)
	return scanProject(row)
}

// ListProjectsByUser returns projects the user holds any access grant on,
// oldest first.
func (s *Store) ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT p.project_id, p.name, p.owner_id, p.created_at, p.updated_at
		   FROM projects p
		   JOIN project_access a ON a.project_id = p.project_id
		  WHERE a.user_id = ?
		  GROUP BY p.project_id
		  ORDER BY p.created_at ASC, p.project_id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var project domain.Project
		var createdAt int64
		var updatedAt int64
		if err := rows.Scan(&project.ID, &project.Name, &project.OwnerID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		project.CreatedAt = fromMillis(createdAt)
		project.UpdatedAt = fromMillis(updatedAt)
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// DeleteProject removes the project and everything hanging off it. Child
// rows are deleted explicitly so the removal order never trips a foreign
// key check.
func (s *Store) DeleteProject(ctx context.Context, projectID string) error {
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

	return s.inTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(
			ctx,
			`SELECT 1 FROM projects WHERE project_id = ?`,
			projectID,
		).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrNotFound
			}
			return fmt.Errorf("delete project: %w", err)
		}

		statements := []string{
			`DELETE FROM position_properties
			  WHERE position_id IN (SELECT position_id FROM positions WHERE project_id = ?)`,
			`DELETE FROM positions WHERE project_id = ?`,
			`DELETE FROM access_invitees
			  WHERE project_access_id IN (SELECT project_access_id FROM project_access WHERE project_id = ?)`,
			`DELETE FROM project_access WHERE project_id = ?`,
			`DELETE FROM position_fields WHERE project_id = ?`,
			`DELETE FROM projects WHERE project_id = ?`,
		}
		for _, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement, projectID); err != nil {
				return fmt.Errorf("delete project: %w", err)
			}
		}
		return nil
	})
}

func scanProject(row *sql.Row) (domain.Project, error) {
	var project domain.Project
	var createdAt int64
	var updatedAt int64
	err := row.Scan(&project.ID, &project.Name, &project.OwnerID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, storage.ErrNotFound
		}
		return domain.Project{}, fmt.Errorf("get project: %w", err)
	}
	project.CreatedAt = fromMillis(createdAt)
	project.UpdatedAt = fromMillis(updatedAt)
	return project, nil
}
