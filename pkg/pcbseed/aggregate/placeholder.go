// Package aggregate accumulates component totals, bills of materials and the
// per-date consumption ledger from typed source records.
package aggregate

import (
	"regexp"
	"strings"
)

// PlaceholderTokens are spreadsheet "blank" markers that never name a real part.
var PlaceholderTokens = map[string]struct{}{
	"NA":             {},
	"N/A":            {},
	"N.A":            {},
	"N A":            {},
	"NULL":           {},
	"NONE":           {},
	"-":              {},
	"--":             {},
	"NOT APPLICABLE": {},
}

var componentDelimiters = regexp.MustCompile(`[\\/,+]`)

// IsPlaceholder reports whether value is empty or a placeholder token.
func IsPlaceholder(value string) bool {
	token := strings.ToUpper(strings.TrimSpace(value))
	if token == "" {
		return true
	}
	_, ok := PlaceholderTokens[token]
	return ok
}

// SplitComponents splits a free-text component list on backslash, slash, comma
// and plus, dropping empty and placeholder tokens. Order is preserved.
func SplitComponents(value string) []string {
	if value == "" {
		return nil
	}

	var out []string
	for _, raw := range componentDelimiters.Split(value, -1) {
		token := strings.TrimSpace(raw)
		if IsPlaceholder(token) {
			continue
		}
		out = append(out, token)
	}
	return out
}
