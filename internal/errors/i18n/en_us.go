package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeProjectNameEmpty          = "PROJECT_NAME_EMPTY"
	CodeProjectNotFound           = "PROJECT_NOT_FOUND"
	CodeActorEmpty                = "ACTOR_EMPTY"
	CodeFieldNameEmpty            = "FIELD_NAME_EMPTY"
	CodeFieldInvalidType          = "FIELD_INVALID_TYPE"
	CodeFieldNameTaken            = "FIELD_NAME_TAKEN"
	CodeFieldNotFound             = "FIELD_NOT_FOUND"
	CodeFieldCoreImmutable        = "FIELD_CORE_IMMUTABLE"
	CodeFieldNotOnProject         = "FIELD_NOT_ON_PROJECT"
	CodeFieldOrderIncomplete      = "FIELD_ORDER_INCOMPLETE"
	CodePositionNotFound          = "POSITION_NOT_FOUND"
	CodePositionNoProperties      = "POSITION_NO_PROPERTIES"
	CodePositionMissingCoreValue  = "POSITION_MISSING_CORE_VALUE"
	CodePositionValueTypeMismatch = "POSITION_VALUE_TYPE_MISMATCH"
	CodePositionDuplicateProperty = "POSITION_DUPLICATE_PROPERTY"
	CodeSearchInvalidQuery        = "SEARCH_INVALID_QUERY"
	CodeAccessInvalidType         = "ACCESS_INVALID_TYPE"
	CodeAccessOwnerImmutable      = "ACCESS_OWNER_IMMUTABLE"
	CodeAccessInviteesRequired    = "ACCESS_INVITEES_REQUIRED"
	CodeAccessInvalidInvitee      = "ACCESS_INVALID_INVITEE"
	CodeAccessNotFound            = "ACCESS_NOT_FOUND"
	CodeSettingsInvalidValue      = "SETTINGS_INVALID_VALUE"
	CodeNotFound                  = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Project errors
		CodeProjectNameEmpty: "Project name cannot be empty",
		CodeProjectNotFound:  "The requested project was not found",
		CodeActorEmpty:       "A user identity is required",

		// Position field errors
		CodeFieldNameEmpty:       "Field name cannot be empty",
		CodeFieldInvalidType:     "Invalid field type specified",
		CodeFieldNameTaken:       "A field named {{.Name}} already exists on this project",
		CodeFieldNotFound:        "The requested field was not found",
		CodeFieldCoreImmutable:   "Core field {{.Name}} cannot be changed or removed",
		CodeFieldNotOnProject:    "Field {{.Name}} is not defined on this project",
		CodeFieldOrderIncomplete: "Field order entries must name distinct fields",

		// Position errors
		CodePositionNotFound:          "The requested position was not found",
		CodePositionNoProperties:      "A position requires at least one property",
		CodePositionMissingCoreValue:  "Core field {{.Name}} requires a non-empty value",
		CodePositionValueTypeMismatch: "Value {{.Value}} is not valid for {{.Type}} field {{.Name}}",
		CodePositionDuplicateProperty: "Property {{.Name}} is supplied more than once",

		// Search errors
		CodeSearchInvalidQuery: "The search query could not be understood",

		// Project access errors
		CodeAccessInvalidType:      "Invalid access type specified",
		CodeAccessOwnerImmutable:   "Owner access cannot be added or removed",
		CodeAccessInviteesRequired: "Non-public access requires at least one invitee email",
		CodeAccessInvalidInvitee:   "Invitee address {{.Email}} is not a valid email",
		CodeAccessNotFound:         "The requested access grant was not found",

		// User settings errors
		CodeSettingsInvalidValue: "Invalid settings value for {{.Field}}",

		// Storage errors
		CodeNotFound: "The requested resource was not found",
	},
}
