package domain

import (
	"time"

	"github.com/google/uuid"
)

// Term is a single glossary entry: an acronym or short phrase, its
// definition, and a free-text category.
type Term struct {
	ID         uuid.UUID
	Term       string
	Definition string
	Category   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TermFields holds the three mutable fields of a term. Updates replace
// all of them; ID and CreatedAt are fixed at insert time.
type TermFields struct {
	Term       string
	Definition string
	Category   string
}

// TermCandidate is an unvalidated term-shaped record as produced by the
// upload decoding layer (CSV row, JSON object). It has not been trimmed
// or checked for duplicates yet.
type TermCandidate struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
}

// StoreStats describes the physical footprint of the term collection.
type StoreStats struct {
	SizeBytes int64
	Terms     int64
}
