// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinera/vinera/internal/filter"
	"github.com/vinera/vinera/internal/reference"
)

// stubResolver maps lowercased labels to canonical keys per dimension.
type stubResolver struct {
	labels map[reference.Dimension]map[string]string
}

func (s *stubResolver) Resolve(dimension reference.Dimension, label string) (string, bool) {
	canonical, ok := s.labels[dimension][label]
	return canonical, ok
}

func newTranslator() *filter.Translator {
	resolver := &stubResolver{
		labels: map[reference.Dimension]map[string]string{
			reference.DimensionColor: {
				"Rot":   "red",
				"Rouge": "red",
				"Weiß":  "white",
			},
			reference.DimensionWineType: {
				"Schaumwein": "sparkling",
			},
		},
	}
	return filter.NewTranslator(resolver, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		expect []string
	}{
		{"drops_blanks_and_trims", []string{"", "  a  ", "   ", "b"}, []string{"a", "b"}},
		{"preserves_order", []string{"c", "a", "b"}, []string{"c", "a", "b"}},
		{"all_blank", []string{"", "  "}, nil},
		{"nil_input", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, filter.Sanitize(tt.input))
		})
	}
}

/*
TestTranslator_OmitsEmptyDimensions verifies that an empty selection produces
the zero backend filter — no dimension may survive as an empty constraint.
*/
func TestTranslator_OmitsEmptyDimensions(t *testing.T) {
	translator := newTranslator()

	backend := translator.Translate(filter.Selection{
		Countries: []string{"", "   "},
	})

	assert.True(t, backend.IsEmpty())
	assert.Nil(t, backend.Countries)
}

/*
TestTranslator_ResolvesLocalizedLabels verifies that color and wine type
labels are replaced by canonical keys while other dimensions pass through
sanitized but otherwise untouched.
*/
func TestTranslator_ResolvesLocalizedLabels(t *testing.T) {
	translator := newTranslator()

	backend := translator.Translate(filter.Selection{
		Colors:    []string{"Rot", "Weiß"},
		WineTypes: []string{"Schaumwein"},
		Countries: []string{" FR ", "IT"},
	})

	assert.Equal(t, []string{"red", "white"}, backend.Colors)
	assert.Equal(t, []string{"sparkling"}, backend.WineTypes)
	assert.Equal(t, []string{"FR", "IT"}, backend.Countries)
}

/*
TestTranslator_DropsUnknownLabels verifies that unresolvable labels vanish
without failing the translation, and that a dimension reduced to nothing is
omitted rather than kept as an empty list.
*/
func TestTranslator_DropsUnknownLabels(t *testing.T) {
	translator := newTranslator()

	backend := translator.Translate(filter.Selection{
		Colors: []string{"Rot", "Orange"},
	})
	assert.Equal(t, []string{"red"}, backend.Colors)

	backend = translator.Translate(filter.Selection{
		Colors: []string{"Orange"},
	})
	assert.Nil(t, backend.Colors)
	assert.True(t, backend.IsEmpty())
}
