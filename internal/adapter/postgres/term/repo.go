// Package term implements the term store using PostgreSQL.
// One table (terms) holds the whole glossary; uniqueness is enforced by a
// unique index on lower(term), which doubles as the race backstop for the
// application-level duplicate pre-check.
package term

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/feddict/feddict-backend/internal/adapter/postgres"
	"github.com/feddict/feddict-backend/internal/domain"
)

// builder is the shared squirrel statement builder with $N placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const termColumns = "id, term, definition, category, created_at, updated_at"

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new term repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for queries squirrel expresses poorly
// ---------------------------------------------------------------------------

const suggestSQL = `
SELECT term
FROM terms
WHERE term ILIKE $1 OR term ILIKE $2
ORDER BY (CASE WHEN term ILIKE $1 THEN 0 ELSE 1 END), lower(term)
LIMIT $3`

const statsSQL = `SELECT pg_total_relation_size('terms'), count(*) FROM terms`

const deleteTestTermsSQL = `DELETE FROM terms WHERE term LIKE '\_%' OR term LIKE '%\_'`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a term by primary key.
// Returns domain.ErrNotFound if the term does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	q := builder.Select(termColumns).From("terms").Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	t, err := scanTerm(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "term", id.String())
	}

	return t, nil
}

// GetByNormalized returns the term whose lower(term) equals the given
// normalized (trimmed, lowercased) value. This is the duplicate pre-check
// lookup; it hits the same expression as the unique index.
// Returns domain.ErrNotFound when no term matches.
func (r *Repo) GetByNormalized(ctx context.Context, normalized string) (*domain.Term, error) {
	q := builder.Select(termColumns).From("terms").
		Where(squirrel.Expr("lower(term) = ?", normalized))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	t, err := scanTerm(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "term", normalized)
	}

	return t, nil
}

// Find returns the page of terms matching the filter plus the total count
// of matches before pagination. The total is computed with the same
// predicates so pages = ceil(total/perPage) holds for the caller.
// Ordering is deterministic: ties within the sort key break by creation
// order (created_at, then id).
func (r *Repo) Find(ctx context.Context, f domain.TermFilter) ([]domain.Term, int, error) {
	normalizeFilter(&f)
	preds := predicates(f)

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countQ := builder.Select("count(*)").From("terms")
	for _, p := range preds {
		countQ = countQ.Where(p)
	}

	sql, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count terms: %w", err)
	}

	if total == 0 {
		return []domain.Term{}, 0, nil
	}

	selectQ := builder.Select(termColumns).From("terms")
	for _, p := range preds {
		selectQ = selectQ.Where(p)
	}
	selectQ = selectQ.
		OrderBy(sortColumn(f)+" "+sortDirection(f), "created_at ASC", "id ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err = selectQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build select: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("find terms: %w", err)
	}
	defer rows.Close()

	terms, err := scanTerms(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("find terms: %w", err)
	}

	return terms, total, nil
}

// DistinctCategories returns the set of category values currently in use,
// sorted. Returns an empty slice (not nil) for an empty store.
func (r *Repo) DistinctCategories(ctx context.Context) ([]string, error) {
	q := builder.Select("DISTINCT category").From("terms").OrderBy("category ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("distinct categories: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Suggest returns up to limit term names matching the query, prefix matches
// ranked before substring matches, alphabetical within each group.
// The lower(term) unique index guarantees the result is already
// case-insensitively de-duplicated. Empty query returns an empty result
// without a DB round trip.
func (r *Repo) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []string{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, suggestSQL,
		prefixPattern(query), containsPattern(query), limit)
	if err != nil {
		return nil, fmt.Errorf("suggest terms: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("suggest terms: %w", err)
		}
		names = append(names, n)
	}

	return names, rows.Err()
}

// Stats returns the on-disk size of the terms relation (table + indexes)
// and the number of stored terms.
func (r *Repo) Stats(ctx context.Context) (domain.StoreStats, error) {
	var s domain.StoreStats
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, statsSQL).
		Scan(&s.SizeBytes, &s.Terms)
	if err != nil {
		return domain.StoreStats{}, fmt.Errorf("collection stats: %w", err)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert assigns an id, persists the term, and returns the stored record
// with store-assigned timestamps.
// Returns domain.ErrAlreadyExists on a case-insensitive collision: the
// unique index on lower(term) is the backstop for races past the
// application-level pre-check.
func (r *Repo) Insert(ctx context.Context, fields domain.TermFields) (*domain.Term, error) {
	q := builder.Insert("terms").
		Columns("id", "term", "definition", "category").
		Values(uuid.New(), fields.Term, fields.Definition, fields.Category).
		Suffix("RETURNING " + termColumns)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	t, err := scanTerm(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "term", fields.Term)
	}

	return t, nil
}

// Update replaces all three mutable fields and bumps updated_at.
// Returns domain.ErrNotFound if the term does not exist and
// domain.ErrAlreadyExists if the new term text collides with another record.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, fields domain.TermFields) (*domain.Term, error) {
	q := builder.Update("terms").
		Set("term", fields.Term).
		Set("definition", fields.Definition).
		Set("category", fields.Category).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + termColumns)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	t, err := scanTerm(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "term", id.String())
	}

	return t, nil
}

// Delete removes a term. Returns true if a record was removed.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := builder.Delete("terms").Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err, "term", id.String())
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteMany removes the given set of terms and returns how many records
// were removed. Unknown ids are skipped, not an error.
func (r *Repo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := builder.Delete("terms").Where(squirrel.Eq{"id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete terms: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteAll removes every term and returns the count. Irreversible; the
// caller must have already verified the confirmation token.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	q := builder.Delete("terms")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete all terms: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteTestTerms removes records carrying the internal test marker
// (leading or trailing underscore). Run at startup and from cmd/cleanup.
func (r *Repo) DeleteTestTerms(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteTestTermsSQL)
	if err != nil {
		return 0, fmt.Errorf("delete test terms: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Predicates and scanning
// ---------------------------------------------------------------------------

// predicates translates the filter into squirrel predicates. Search input
// is escaped so LIKE wildcards and backslashes in user text match literally.
func predicates(f domain.TermFilter) []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer

	if f.Search != nil {
		if s := strings.TrimSpace(*f.Search); s != "" {
			p := containsPattern(s)
			preds = append(preds, squirrel.Or{
				squirrel.ILike{"term": p},
				squirrel.ILike{"definition": p},
				squirrel.ILike{"category": p},
			})
		}
	}

	if f.Category != nil {
		if c := strings.TrimSpace(*f.Category); c != "" {
			preds = append(preds, squirrel.Eq{"category": c})
		}
	}

	return preds
}

func scanTerm(row pgx.Row) (*domain.Term, error) {
	var t domain.Term
	err := row.Scan(&t.ID, &t.Term, &t.Definition, &t.Category, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTerms(rows pgx.Rows) ([]domain.Term, error) {
	terms := []domain.Term{}
	for rows.Next() {
		var t domain.Term
		if err := rows.Scan(&t.ID, &t.Term, &t.Definition, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity, ref string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, ref, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, ref, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, ref, err)
}
