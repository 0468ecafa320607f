package util

import "strings"

// CleanText collapses whitespace runs (incl. non-breaking spaces) into single
// spaces and trims the ends. HTML text nodes arrive full of both.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
