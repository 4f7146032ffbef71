package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feddict/feddict-backend/internal/domain"
)

// SeedTerm inserts a term row directly, bypassing the repository, and
// returns the filled domain.Term.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, text, definition, category string) domain.Term {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	term := domain.Term{
		ID:         uuid.New(),
		Term:       text,
		Definition: definition,
		Category:   category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO terms (id, term, definition, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		term.ID, term.Term, term.Definition, term.Category, term.CreatedAt, term.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm insert: %v", err)
	}

	return term
}

// TruncateTerms empties the terms table. Call at the start of tests that
// need a known-empty store.
func TruncateTerms(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE terms`); err != nil {
		t.Fatalf("testhelper: truncate terms: %v", err)
	}
}
