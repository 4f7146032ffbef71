package domain

import "strings"

// NormalizeTerm prepares a term for case-insensitive comparison:
// surrounding whitespace is trimmed and the result is lowercased.
// This must stay in sync with the lower(term) unique index, since the
// store compares normalized values against lower(term).
func NormalizeTerm(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// AcronymBase returns the acronym part of the common "ACRONYM (Full Name)"
// pattern: the text before the first '(' with whitespace trimmed.
// It returns "" when the term has no parenthesis or nothing precedes it,
// meaning there is no separate base to collide with.
func AcronymBase(term string) string {
	idx := strings.Index(term, "(")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(term[:idx])
}

// IsTestTerm reports whether a term carries the internal test marker:
// a leading or trailing underscore. Such records are excluded from normal
// use and removed by the cleanup pass.
func IsTestTerm(term string) bool {
	return strings.HasPrefix(term, "_") || strings.HasSuffix(term, "_")
}
