package domain

// Sort fields accepted by TermFilter. Anything else silently falls back
// to SortByTerm: clients sending unknown values get the default order,
// not an error.
const (
	SortByTerm       = "term"
	SortByCategory   = "category"
	SortByDefinition = "definition"
	SortByCreated    = "created"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// TermFilter contains filtering, sorting, and pagination parameters for
// term queries. Limit/Offset are the already-resolved page window; page
// arithmetic lives in the service layer.
type TermFilter struct {
	// Search matches when the case-insensitive substring appears in term,
	// definition, or category. nil or blank means no text filter.
	// The value is treated literally; escaping is the query builder's job.
	Search *string

	// Category restricts to exact (case-sensitive) equality against the
	// persisted value. nil or blank means no category filter.
	Category *string

	SortBy    string
	SortOrder string

	Limit  int
	Offset int
}
