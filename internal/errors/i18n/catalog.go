// Package i18n provides localized user-facing messages for error codes.
package i18n

import (
	"strings"
	"text/template"

	"golang.org/x/text/language"
)

// Code mirrors the machine-readable error code as a plain string.
type Code = string

// Catalog holds user-facing message templates for one locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

// Locale returns the catalog's locale tag.
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Format renders the message template for code with the given metadata.
// Unknown codes fall back to a generic message; template failures fall
// back to the raw template text.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	if c == nil {
		return genericMessage
	}
	raw, ok := c.messages[code]
	if !ok {
		return genericMessage
	}
	if !strings.Contains(raw, "{{") {
		return raw
	}

	tmpl, err := template.New(code).Parse(raw)
	if err != nil {
		return raw
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, metadata); err != nil {
		return raw
	}
	return sb.String()
}

const genericMessage = "An unexpected error occurred"

// catalogs is ordered so the matcher falls back to en-US.
var catalogs = []*Catalog{enUSCatalog, esLACatalog}

var matcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(catalogs))
	for i, catalog := range catalogs {
		tags[i] = language.MustParse(catalog.locale)
	}
	return tags
}())

// GetCatalog returns the catalog that best matches the given locale tag,
// falling back to en-US. Matching tolerates underscore separators and
// resolves regional variants (EN_US, es and es-419 all find a catalog).
func GetCatalog(locale string) *Catalog {
	normalized := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	tag, err := language.Parse(normalized)
	if err != nil {
		return enUSCatalog
	}
	_, index, _ := matcher.Match(tag)
	return catalogs[index]
}
