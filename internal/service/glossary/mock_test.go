package glossary

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/internal/domain"
)

// termRepoMock implements termRepo with overridable functions.
// Calling a method whose func is unset panics, which makes an unexpected
// repo call an immediate test failure.
type termRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	GetByNormalizedFunc    func(ctx context.Context, normalized string) (*domain.Term, error)
	FindFunc               func(ctx context.Context, f domain.TermFilter) ([]domain.Term, int, error)
	DistinctCategoriesFunc func(ctx context.Context) ([]string, error)
	SuggestFunc            func(ctx context.Context, query string, limit int) ([]string, error)
	StatsFunc              func(ctx context.Context) (domain.StoreStats, error)
	InsertFunc             func(ctx context.Context, fields domain.TermFields) (*domain.Term, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, fields domain.TermFields) (*domain.Term, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteManyFunc         func(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteAllFunc          func(ctx context.Context) (int64, error)
	DeleteTestTermsFunc    func(ctx context.Context) (int64, error)
}

func (m *termRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *termRepoMock) GetByNormalized(ctx context.Context, normalized string) (*domain.Term, error) {
	return m.GetByNormalizedFunc(ctx, normalized)
}

func (m *termRepoMock) Find(ctx context.Context, f domain.TermFilter) ([]domain.Term, int, error) {
	return m.FindFunc(ctx, f)
}

func (m *termRepoMock) DistinctCategories(ctx context.Context) ([]string, error) {
	return m.DistinctCategoriesFunc(ctx)
}

func (m *termRepoMock) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	return m.SuggestFunc(ctx, query, limit)
}

func (m *termRepoMock) Stats(ctx context.Context) (domain.StoreStats, error) {
	return m.StatsFunc(ctx)
}

func (m *termRepoMock) Insert(ctx context.Context, fields domain.TermFields) (*domain.Term, error) {
	return m.InsertFunc(ctx, fields)
}

func (m *termRepoMock) Update(ctx context.Context, id uuid.UUID, fields domain.TermFields) (*domain.Term, error) {
	return m.UpdateFunc(ctx, id, fields)
}

func (m *termRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.DeleteFunc(ctx, id)
}

func (m *termRepoMock) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return m.DeleteManyFunc(ctx, ids)
}

func (m *termRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	return m.DeleteAllFunc(ctx)
}

func (m *termRepoMock) DeleteTestTerms(ctx context.Context) (int64, error) {
	return m.DeleteTestTermsFunc(ctx)
}

// noCollision is a GetByNormalized stub for tests where the candidate
// term is free.
func noCollision(_ context.Context, _ string) (*domain.Term, error) {
	return nil, domain.ErrNotFound
}

func testConfig() config.GlossaryConfig {
	return config.GlossaryConfig{
		DefaultPerPage:   20,
		MaxPerPage:       100,
		CategoryCacheTTL: 5 * time.Minute,
		MaxIngestRecords: 5000,
		SuggestLimit:     20,
		CapacityBytes:    536870912,
	}
}

func newTestService(repo *termRepoMock, cfg config.GlossaryConfig) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, repo, cfg)
}
