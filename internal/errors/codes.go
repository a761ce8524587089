// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Project errors
	CodeProjectNameEmpty Code = "PROJECT_NAME_EMPTY"
	CodeProjectNotFound  Code = "PROJECT_NOT_FOUND"

	// Actor errors
	CodeActorEmpty Code = "ACTOR_EMPTY"

	// Position field errors
	CodeFieldNameEmpty       Code = "FIELD_NAME_EMPTY"
	CodeFieldInvalidType     Code = "FIELD_INVALID_TYPE"
	CodeFieldNameTaken       Code = "FIELD_NAME_TAKEN"
	CodeFieldNotFound        Code = "FIELD_NOT_FOUND"
	CodeFieldCoreImmutable   Code = "FIELD_CORE_IMMUTABLE"
	CodeFieldNotOnProject    Code = "FIELD_NOT_ON_PROJECT"
	CodeFieldOrderIncomplete Code = "FIELD_ORDER_INCOMPLETE"

	// Position errors
	CodePositionNotFound          Code = "POSITION_NOT_FOUND"
	CodePositionNoProperties      Code = "POSITION_NO_PROPERTIES"
	CodePositionMissingCoreValue  Code = "POSITION_MISSING_CORE_VALUE"
	CodePositionValueTypeMismatch Code = "POSITION_VALUE_TYPE_MISMATCH"
	CodePositionDuplicateProperty Code = "POSITION_DUPLICATE_PROPERTY"

	// Search errors
	CodeSearchInvalidQuery Code = "SEARCH_INVALID_QUERY"

	// Project access errors
	CodeAccessInvalidType      Code = "ACCESS_INVALID_TYPE"
	CodeAccessOwnerImmutable   Code = "ACCESS_OWNER_IMMUTABLE"
	CodeAccessInviteesRequired Code = "ACCESS_INVITEES_REQUIRED"
	CodeAccessInvalidInvitee   Code = "ACCESS_INVALID_INVITEE"
	CodeAccessNotFound         Code = "ACCESS_NOT_FOUND"

	// User settings errors
	CodeSettingsInvalidValue Code = "SETTINGS_INVALID_VALUE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// RPC boundary numeric codes. The boundary surfaces a numeric code and a
// message for every rejected request.
const (
	RPCCodeUnknown    = 1000
	RPCCodeNotFound   = 1001
	RPCCodeValidation = 1002
	RPCCodeConflict   = 1004
)

// RPCCode maps domain codes to the boundary's numeric error codes.
func (c Code) RPCCode() int {
	switch c {
	// Validation failures: caller-supplied data fails a precondition
	// checkable without side effects.
	case CodeProjectNameEmpty,
		CodeActorEmpty,
		CodeFieldNameEmpty,
		CodeFieldInvalidType,
		CodeFieldNameTaken,
		CodeFieldOrderIncomplete,
		CodePositionNoProperties,
		CodePositionMissingCoreValue,
		CodePositionValueTypeMismatch,
		CodePositionDuplicateProperty,
		CodeSearchInvalidQuery,
		CodeAccessInvalidType,
		CodeAccessInviteesRequired,
		CodeAccessInvalidInvitee,
		CodeSettingsInvalidValue:
		return RPCCodeValidation

	// Conflicts: the request is well-formed but violates a structural
	// invariant of the project.
	case CodeFieldCoreImmutable,
		CodeFieldNotOnProject,
		CodeAccessOwnerImmutable:
		return RPCCodeConflict

	case CodeProjectNotFound,
		CodeFieldNotFound,
		CodePositionNotFound,
		CodeAccessNotFound,
		CodeNotFound:
		return RPCCodeNotFound

	default:
		return RPCCodeUnknown
	}
}

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c.RPCCode() {
	case RPCCodeValidation:
		return codes.InvalidArgument
	case RPCCodeConflict:
		return codes.FailedPrecondition
	case RPCCodeNotFound:
		return codes.NotFound
	default:
		return codes.Internal
	}
}
