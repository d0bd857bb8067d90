// Copyright (c) 2026 Vinera. All rights reserved.
// Author: hello@vinera.app

// Package query parses URL query parameter values into Go types.
package query

import (
	"strings"
)

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
//
// The filter endpoints accept each dimension as one comma-separated
// parameter (e.g. ?country=France,Italy), so this is the standard entry
// point for filter values.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
