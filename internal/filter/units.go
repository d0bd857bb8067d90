// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatUnitVolume renders a bottle volume as the unit label the filter
// menus display, e.g. "0.75L".
func FormatUnitVolume(volume float64) string {
	return fmt.Sprintf("%.2fL", volume)
}

// ParseUnitVolume parses a unit label such as "0.75L" back to its numeric
// volume. The suffix is case-insensitive; a malformed label yields ok=false
// and the caller drops it from the filter.
func ParseUnitVolume(label string) (float64, bool) {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(label), "L"), "l")
	volume, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || volume <= 0 {
		return 0, false
	}
	return volume, true
}
