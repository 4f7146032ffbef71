package glossary

import "github.com/feddict/feddict-backend/internal/domain"

// TermPage is one page of list results together with the pagination
// envelope and the category facet for filter UIs.
type TermPage struct {
	Items      []domain.Term
	Total      int
	Page       int
	Pages      int
	Categories []string
}

// IngestReport summarizes a bulk ingest run. Processed is always the
// number of submitted records; Errors holds one message per failed record.
type IngestReport struct {
	Processed int
	Success   int
	Failed    int
	Errors    []string
}

// StatsResult describes the store footprint relative to the configured
// capacity.
type StatsResult struct {
	Terms         int64
	SizeBytes     int64
	CapacityBytes int64
	UsagePercent  float64
}
