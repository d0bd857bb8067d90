// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinera/vinera/internal/filter"
)

func TestUnitVolumeRoundTrip(t *testing.T) {
	assert.Equal(t, "0.75L", filter.FormatUnitVolume(0.75))
	assert.Equal(t, "1.50L", filter.FormatUnitVolume(1.5))

	volume, ok := filter.ParseUnitVolume("0.75L")
	assert.True(t, ok)
	assert.Equal(t, 0.75, volume)

	volume, ok = filter.ParseUnitVolume(" 1.5l ")
	assert.True(t, ok)
	assert.Equal(t, 1.5, volume)
}

func TestParseUnitVolume_Malformed(t *testing.T) {
	for _, label := range []string{"", "L", "abcL", "-0.75L", "0L"} {
		_, ok := filter.ParseUnitVolume(label)
		assert.False(t, ok, "label %q must not parse", label)
	}
}
