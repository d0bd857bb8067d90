// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

/*
Package locale normalizes caller-supplied language tags to the fixed set of
display languages the catalogue carries translations for.

The mobile client forwards whatever the device reports ("de-AT", "EN-us",
"fr_CH" typed loosely, or nothing at all); everything downstream — filter
option keys, label resolution, row transforms — works exclusively with the
normalized code.
*/
package locale

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/vinera/vinera/internal/platform/constants"
)

// supported indexes the languages the catalogue is translated into.
var supported = func() map[string]bool {
	set := make(map[string]bool, len(constants.SupportedLanguages))
	for _, code := range constants.SupportedLanguages {
		set[code] = true
	}
	return set
}()

// Normalize maps an arbitrary language tag to a supported language code.
//
// The tag is lower-cased and truncated to its primary subtag; three-letter
// ISO codes are canonicalized ("deu" → "de") before the membership check.
// Unknown or empty input yields [constants.DefaultLanguage]. Normalize is a
// total function: it never fails, regardless of input.
func Normalize(input string) string {
	raw := strings.ToLower(strings.TrimSpace(input))
	if raw == "" {
		return constants.DefaultLanguage
	}

	// Primary subtag only: region and script variants share translations.
	// POSIX-style separators ("fr_CH") are treated like BCP-47 hyphens.
	primary := raw
	if i := strings.IndexAny(raw, "-_"); i >= 0 {
		primary = raw[:i]
	}

	// Canonicalize through BCP-47 so alias spellings land on the same base.
	if base, err := language.ParseBase(primary); err == nil {
		primary = base.String()
	}

	if supported[primary] {
		return primary
	}

	return constants.DefaultLanguage
}

// FromRequest extracts and normalizes the display language of a request.
// An explicit lang query parameter wins over the first Accept-Language
// entry; both fall through to the default language.
func FromRequest(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return Normalize(lang)
	}

	accept := r.Header.Get("Accept-Language")
	first, _, _ := strings.Cut(accept, ",")
	tag, _, _ := strings.Cut(first, ";")
	return Normalize(tag)
}
