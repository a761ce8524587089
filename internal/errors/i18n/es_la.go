package i18n

var esLACatalog = &Catalog{
	locale: "es-LA",
	messages: map[Code]string{
		CodeProjectNameEmpty: "El nombre del proyecto no puede estar vacío",
		CodeProjectNotFound:  "No se encontró el proyecto solicitado",
		CodeActorEmpty:       "Se requiere una identidad de usuario",

		CodeFieldNameEmpty:       "El nombre del campo no puede estar vacío",
		CodeFieldInvalidType:     "Tipo de campo no válido",
		CodeFieldNameTaken:       "Ya existe un campo llamado {{.Name}} en este proyecto",
		CodeFieldNotFound:        "No se encontró el campo solicitado",
		CodeFieldCoreImmutable:   "El campo base {{.Name}} no se puede cambiar ni eliminar",
		CodeFieldNotOnProject:    "El campo {{.Name}} no está definido en este proyecto",
		CodeFieldOrderIncomplete: "El nuevo orden repite o deja vacíos campos de la lista",

		CodePositionNotFound:          "No se encontró la posición solicitada",
		CodePositionNoProperties:      "Una posición requiere al menos una propiedad",
		CodePositionMissingCoreValue:  "El campo base {{.Name}} requiere un valor no vacío",
		CodePositionValueTypeMismatch: "El valor {{.Value}} no es válido para el campo {{.Name}} de tipo {{.Type}}",
		CodePositionDuplicateProperty: "La propiedad {{.Name}} se suministró más de una vez",

		CodeSearchInvalidQuery: "No se pudo interpretar la consulta de búsqueda",

		CodeAccessInvalidType:      "Tipo de acceso no válido",
		CodeAccessOwnerImmutable:   "El acceso de propietario no se puede agregar ni eliminar",
		CodeAccessInviteesRequired: "El acceso no público requiere al menos un correo de invitado",
		CodeAccessInvalidInvitee:   "La dirección {{.Email}} no es un correo válido",
		CodeAccessNotFound:         "No se encontró el acceso solicitado",

		CodeSettingsInvalidValue: "Valor de configuración no válido para {{.Field}}",

		CodeNotFound: "No se encontró el recurso solicitado",
	},
}
