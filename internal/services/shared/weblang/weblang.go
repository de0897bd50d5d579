// Package weblang resolves the effective page language for web requests.
package weblang

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// Param is the query parameter used to select a language.
	Param = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "cs_lang"
)

// supported lists the languages the site ships page chrome for. The first
// entry is the default.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Supported returns the supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ResolveTag determines the best language tag for the request. The bool
// reports whether the choice came from the query parameter and should be
// persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(Param)); value != "" {
		if tag, ok := parseTag(value); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(CookieName); err == nil {
		if tag, ok := parseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			_, index, _ := matcher.Match(tags...)
			return supported[index], false
		}
	}

	return Default(), false
}

// SetCookie persists the selected language on the response.
func SetCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func parseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supported[index], true
}
