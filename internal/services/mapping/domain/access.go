package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	apperrors "github.com/simplemapping/simplemapping/internal/errors"
	"github.com/simplemapping/simplemapping/internal/id"
)

// AccessType describes the level of a project access grant.
type AccessType int

const (
	// AccessTypeUnspecified represents an invalid access type value.
	AccessTypeUnspecified AccessType = iota
	// AccessTypeOwner is the single grant created with the project.
	AccessTypeOwner
	// AccessTypePublic opens the project without invitations.
	AccessTypePublic
	// AccessTypeReadOnly grants invited users read access.
	AccessTypeReadOnly
	// AccessTypeCollaborator grants invited users write access.
	AccessTypeCollaborator
)

// String returns the wire name of the access type.
func (t AccessType) String() string {
	switch t {
	case AccessTypeOwner:
		return "OWNER"
	case AccessTypePublic:
		return "PUBLIC"
	case AccessTypeReadOnly:
		return "READONLY"
	case AccessTypeCollaborator:
		return "COLLABORATOR"
	default:
		return "UNSPECIFIED"
	}
}

// ParseAccessType maps a wire name to an access type.
func ParseAccessType(value string) AccessType {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "OWNER":
		return AccessTypeOwner
	case "PUBLIC":
		return AccessTypePublic
	case "READONLY":
		return AccessTypeReadOnly
	case "COLLABORATOR":
		return AccessTypeCollaborator
	default:
		return AccessTypeUnspecified
	}
}

// ProjectAccess associates a project with an access level and the locale
// preferences shown to invited users.
type ProjectAccess struct {
	ID                string
	ProjectID         string
	UserID            string
	Type              AccessType
	Language          string
	MeasurementSystem string
	GPSFormat         string
	MapType           string
	Message           string
	Invitees          []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateAccessInput describes a requested non-owner access grant.
type CreateAccessInput struct {
	ProjectID         string
	UserID            string
	Type              AccessType
	Language          string
	MeasurementSystem string
	GPSFormat         string
	MapType           string
	Message           string
	Invitees          []string
}

// CreateAccess validates input and builds a grant with a generated ID.
// OWNER grants are never created through this path; they exist only from
// project creation via GrantOwner.
func CreateAccess(input CreateAccessInput, now func() time.Time, idGenerator func() (string, error)) (ProjectAccess, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateAccessInput(input)
	if err != nil {
		return ProjectAccess{}, err
	}

	accessID, err := idGenerator()
	if err != nil {
		return ProjectAccess{}, fmt.Errorf("generate access id: %w", err)
	}

	createdAt := now().UTC()
	return ProjectAccess{
		ID:                accessID,
		ProjectID:         normalized.ProjectID,
		UserID:            normalized.UserID,
		Type:              normalized.Type,
		Language:          normalized.Language,
		MeasurementSystem: normalized.MeasurementSystem,
		GPSFormat:         normalized.GPSFormat,
		MapType:           normalized.MapType,
		Message:           normalized.Message,
		Invitees:          normalized.Invitees,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}, nil
}

// NormalizeCreateAccessInput trims and validates access input.
func NormalizeCreateAccessInput(input CreateAccessInput) (CreateAccessInput, error) {
	input.ProjectID = strings.TrimSpace(input.ProjectID)
	input.UserID = strings.TrimSpace(input.UserID)
	input.Message = strings.TrimSpace(input.Message)
	if input.UserID == "" {
		return CreateAccessInput{}, ErrEmptyActor
	}

	switch input.Type {
	case AccessTypeOwner:
		return CreateAccessInput{}, apperrors.New(apperrors.CodeAccessOwnerImmutable, "owner access cannot be added")
	case AccessTypePublic, AccessTypeReadOnly, AccessTypeCollaborator:
	default:
		return CreateAccessInput{}, apperrors.New(apperrors.CodeAccessInvalidType, "access type is required")
	}

	invitees := make([]string, 0, len(input.Invitees))
	for _, raw := range input.Invitees {
		address := strings.TrimSpace(raw)
		if address == "" {
			continue
		}
		if _, err := mail.ParseAddress(address); err != nil {
			return CreateAccessInput{}, apperrors.WithMetadata(
				apperrors.CodeAccessInvalidInvitee,
				"invitee address is not a valid email",
				map[string]string{"Email": address},
			)
		}
		invitees = append(invitees, address)
	}
	if input.Type != AccessTypePublic && len(invitees) == 0 {
		return CreateAccessInput{}, apperrors.New(
			apperrors.CodeAccessInviteesRequired,
			"non-public access requires at least one invitee",
		)
	}
	input.Invitees = invitees
	return input, nil
}

// GrantOwner builds the single OWNER grant created at project birth. The
// owner inherits the creating actor's settings-facing locale defaults.
func GrantOwner(projectID, ownerID string, settings UserSettings, now func() time.Time, idGenerator func() (string, error)) (ProjectAccess, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	projectID = strings.TrimSpace(projectID)
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return ProjectAccess{}, ErrEmptyActor
	}

	accessID, err := idGenerator()
	if err != nil {
		return ProjectAccess{}, fmt.Errorf("generate access id: %w", err)
	}

	createdAt := now().UTC()
	return ProjectAccess{
		ID:                accessID,
		ProjectID:         projectID,
		UserID:            ownerID,
		Type:              AccessTypeOwner,
		Language:          settings.DefaultLanguage,
		MeasurementSystem: settings.DefaultMeasurementSystem,
		GPSFormat:         settings.DefaultGPSFormat,
		MapType:           settings.DefaultGoogleMapType,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}, nil
}
