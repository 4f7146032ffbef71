package term

import (
	"strings"

	"github.com/feddict/feddict-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// normalizeFilter applies defaults and clamps values.
// Unknown SortBy values fall back to term order silently, not an error.
func normalizeFilter(f *domain.TermFilter) {
	switch f.SortBy {
	case domain.SortByTerm, domain.SortByCategory, domain.SortByDefinition, domain.SortByCreated:
		// valid
	default:
		f.SortBy = domain.SortByTerm
	}

	switch f.SortOrder {
	case domain.SortOrderAsc, domain.SortOrderDesc:
		// valid
	default:
		f.SortOrder = domain.SortOrderAsc
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}

// sortColumn returns the SQL column name for the current SortBy value.
func sortColumn(f domain.TermFilter) string {
	switch f.SortBy {
	case domain.SortByCategory:
		return "category"
	case domain.SortByDefinition:
		return "definition"
	case domain.SortByCreated:
		return "created_at"
	default:
		return "term"
	}
}

// sortDirection returns the SQL keyword for the current SortOrder value.
func sortDirection(f domain.TermFilter) string {
	if f.SortOrder == domain.SortOrderDesc {
		return "DESC"
	}
	return "ASC"
}

// escapeLike makes a string safe for use inside a LIKE/ILIKE pattern by
// escaping the backslash escape character and the % and _ wildcards.
// Everything else (parentheses included) is already literal in LIKE.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// containsPattern wraps escaped search text in wildcards for substring match.
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

// prefixPattern wraps escaped search text for prefix match.
func prefixPattern(s string) string {
	return escapeLike(s) + "%"
}
