// Package i18n provides locale resolution and message printing for pages.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

var (
	supported = []language.Tag{language.AmericanEnglish, language.Spanish}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// ResolveTag picks the best supported language for the request:
// the lang query parameter first, then Accept-Language, then the default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			if matched, ok := match(tag); ok {
				return matched
			}
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if matched, ok := match(tags...); ok {
				return matched
			}
		}
	}

	return Default()
}

func match(tags ...language.Tag) (language.Tag, bool) {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.Tag{}, false
	}
	return supported[idx], true
}

// Localizer translates message keys for a single language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for tag.
func New(tag language.Tag) Localizer {
	return Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// FromRequest returns a Localizer for the request's resolved language.
func FromRequest(r *http.Request) Localizer {
	return New(ResolveTag(r))
}

// T formats the message registered under key.
func (l Localizer) T(key string, args ...any) string {
	if l.printer == nil {
		l = New(Default())
	}
	return l.printer.Sprintf(key, args...)
}

// Tag returns the language the Localizer prints in.
func (l Localizer) Tag() language.Tag {
	return l.tag
}
