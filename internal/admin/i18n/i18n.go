// Package i18n localizes the user-facing strings of the admin surface.
// German is the product's primary locale; English is kept as the source
// language for the catalog.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.German,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.German
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request based on the
// Accept-Language header. Falls back to the default locale.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			matched, _, _ := tagMatcher.Match(tags...)
			return canonical(matched)
		}
	}

	return Default()
}

// ParseTag coerces a locale string to a supported tag, falling back to the
// default locale for unknown values.
func ParseTag(value string) language.Tag {
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	matched, _, _ := tagMatcher.Match(parsed)
	return canonical(matched)
}

// canonical collapses matcher results (which may carry region subtags like
// de-u-rg-...) back to one of the supported base tags.
func canonical(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		sbase, _ := supported.Base()
		if base == sbase {
			return supported
		}
	}
	return Default()
}
