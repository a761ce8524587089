package i18n

import (
	"strings"
	"testing"
)

func TestGetCatalogNormalizesLocale(t *testing.T) {
	t.Parallel()

	if got := GetCatalog("EN_US").Locale(); got != "en-US" {
		t.Fatalf("locale = %q, want en-US", got)
	}
	if got := GetCatalog("es-la").Locale(); got != "es-LA" {
		t.Fatalf("locale = %q, want es-LA", got)
	}
	if got := GetCatalog("fr-FR").Locale(); got != "en-US" {
		t.Fatalf("fallback locale = %q, want en-US", got)
	}
}

func TestGetCatalogMatchesRegionalVariants(t *testing.T) {
	t.Parallel()

	for _, locale := range []string{"es", "es-419", "es-MX", "en", "en-GB"} {
		got := GetCatalog(locale).Locale()
		want := "es-LA"
		if strings.HasPrefix(locale, "en") {
			want = "en-US"
		}
		if got != want {
			t.Fatalf("GetCatalog(%q) locale = %q, want %q", locale, got, want)
		}
	}
	if got := GetCatalog("not a tag").Locale(); got != "en-US" {
		t.Fatalf("invalid tag locale = %q, want en-US", got)
	}
}

func TestFormatTemplatesMetadata(t *testing.T) {
	t.Parallel()

	catalog := GetCatalog("en-US")
	got := catalog.Format(CodeFieldNameTaken, map[string]string{"Name": "favorite_color"})
	want := "A field named favorite_color already exists on this project"
	if got != want {
		t.Fatalf("formatted = %q, want %q", got, want)
	}
}

func TestFormatUnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	if got := GetCatalog("en-US").Format("NO_SUCH_CODE", nil); got != genericMessage {
		t.Fatalf("formatted = %q, want generic message", got)
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	t.Parallel()

	for code := range enUSCatalog.messages {
		if _, ok := esLACatalog.messages[code]; !ok {
			t.Fatalf("es-LA catalog missing code %s", code)
		}
	}
	for code := range esLACatalog.messages {
		if _, ok := enUSCatalog.messages[code]; !ok {
			t.Fatalf("en-US catalog missing code %s", code)
		}
	}
}
