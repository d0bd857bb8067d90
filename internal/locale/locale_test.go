// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package locale_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinera/vinera/internal/locale"
)

/*
TestNormalize covers the full normalization table: supported tags, regional
variants, casing, aliases, and the fallback for everything else.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_supported", "de", "de"},
		{"uppercase", "DE", "de"},
		{"regional_variant", "de-AT", "de"},
		{"mixed_case_regional", "EN-us", "en"},
		{"posix_separator", "fr_CH", "fr"},
		{"italian", "it-IT", "it"},
		{"three_letter_alias", "deu", "de"},
		{"unsupported_language", "es", "en"},
		{"unsupported_regional", "ja-JP", "en"},
		{"empty", "", "en"},
		{"whitespace", "   ", "en"},
		{"garbage", "not a language", "en"},
		{"lone_hyphen", "-", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Normalize(tt.input))
		})
	}
}

/*
TestFromRequest verifies the precedence: explicit lang parameter first, then
the first Accept-Language entry, then the default.
*/
func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/wines?lang=de-AT", nil)
	r.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	assert.Equal(t, "de", locale.FromRequest(r))

	r = httptest.NewRequest("GET", "/wines", nil)
	r.Header.Set("Accept-Language", "fr-CH;q=1.0,en;q=0.5")
	assert.Equal(t, "fr", locale.FromRequest(r))

	r = httptest.NewRequest("GET", "/wines", nil)
	assert.Equal(t, "en", locale.FromRequest(r))
}
