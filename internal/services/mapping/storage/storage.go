// Package storage defines persistence contracts for mapping service state.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/simplemapping/simplemapping/internal/services/mapping/domain"
)

var (
	// ErrNotFound indicates a requested mapping record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// FieldOrderUpdate rewrites one field's order slot and optionally renames it.
type FieldOrderUpdate struct {
	FieldID string
	Order   int
	Name    string // empty keeps the current name
}

// PositionFilter is a predicate over a position's property rows, produced by
// the core/filter package. A zero filter matches every position.
type PositionFilter struct {
	// Clause is a SQL predicate over the columns name and value.
	Clause string
	// Params are the positional parameters for the clause.
	Params []any
}

// TelemetryEvent records one operational event emitted by the service.
type TelemetryEvent struct {
	Name      string
	Severity  string
	ProjectID string
	Detail    string
	Timestamp time.Time
}

// ProjectStore persists project records and their ownership seed.
type ProjectStore interface {
	// CreateProject stores the project, its core fields, and the single
	// OWNER grant in one transaction.
	CreateProject(ctx context.Context, project domain.Project, coreFields []domain.PositionField, owner domain.ProjectAccess) error
	GetProject(ctx context.Context, projectID string) (domain.Project, error)
	// ListProjectsByUser returns projects the user holds any access grant on.
	ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error)
	// DeleteProject removes the project and cascades to its fields,
	// positions, properties, and access grants in one transaction.
	DeleteProject(ctx context.Context, projectID string) error
}

// FieldStore persists the per-project dynamic field schema.
type FieldStore interface {
	// AddField appends one custom field. The name must not collide with a
	// live field on the same project.
	AddField(ctx context.Context, field domain.PositionField) error
	GetField(ctx context.Context, fieldID string) (domain.PositionField, error)
	// ListFields returns fields in stored order. A non-empty names slice
	// restricts the result to that subset.
	ListFields(ctx context.Context, projectID string, includeDeleted bool, names []string) ([]domain.PositionField, error)
	// ReorderFields atomically rewrites order values (and optional renames)
	// for the given fields of one project.
	ReorderFields(ctx context.Context, projectID string, updates []FieldOrderUpdate, updatedAt time.Time) error
	// DeleteField soft-deletes a non-core field and removes property values
	// referencing it in the same transaction.
	DeleteField(ctx context.Context, fieldID string, deletedAt time.Time) error
}

// PositionStore persists EAV position records.
type PositionStore interface {
	// CreatePosition validates every property against the project schema
	// and the core-field completeness rule, then stores the position and
	// all its properties atomically. A rejected create persists nothing.
	CreatePosition(ctx context.Context, position domain.Position) error
	// CreatePositions applies CreatePosition validation to each entry and
	// commits the whole batch or none of it.
	CreatePositions(ctx context.Context, positions []domain.Position) error
	GetPosition(ctx context.Context, positionID string) (domain.Position, error)
	// UpdatePosition merges properties into the position by name. Supplied
	// names must reference live fields; core completeness is not re-checked.
	UpdatePosition(ctx context.Context, positionID string, properties []domain.PositionProperty, updatedAt time.Time) error
	DeletePosition(ctx context.Context, positionID string) error
	// SearchPositions returns the project's positions whose property rows
	// satisfy the filter, each with properties ordered by field order.
	SearchPositions(ctx context.Context, projectID string, filter PositionFilter) ([]domain.Position, error)
}

// AccessStore persists project access grants.
type AccessStore interface {
	AddAccess(ctx context.Context, access domain.ProjectAccess) error
	GetAccess(ctx context.Context, accessID string) (domain.ProjectAccess, error)
	ListAccess(ctx context.Context, projectID string) ([]domain.ProjectAccess, error)
	// DeleteAccess removes a non-OWNER grant. OWNER rows are rejected.
	DeleteAccess(ctx context.Context, accessID string) error
}

// SettingsStore persists per-user display preferences.
type SettingsStore interface {
	// GetUserSettings returns ErrNotFound when the user has no stored row.
	GetUserSettings(ctx context.Context, userID string) (domain.UserSettings, error)
	PutUserSettings(ctx context.Context, settings domain.UserSettings) error
}

// TelemetryStore appends operational events.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, event TelemetryEvent) error
}

// Store combines every mapping persistence contract.
type Store interface {
	ProjectStore
	FieldStore
	PositionStore
	AccessStore
	SettingsStore
	TelemetryStore
	Close() error
}
