// Package glossary implements the business logic of the acronym glossary:
// validation, duplicate policy, pagination, bulk ingest, and the category
// facet cache. Persistence is behind the private termRepo interface.
package glossary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/internal/domain"
)

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	GetByNormalized(ctx context.Context, normalized string) (*domain.Term, error)
	Find(ctx context.Context, f domain.TermFilter) ([]domain.Term, int, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
	Stats(ctx context.Context) (domain.StoreStats, error)
	Insert(ctx context.Context, fields domain.TermFields) (*domain.Term, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.TermFields) (*domain.Term, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	DeleteTestTerms(ctx context.Context) (int64, error)
}

// Service coordinates glossary operations.
type Service struct {
	log        *slog.Logger
	terms      termRepo
	categories *categoryCache
	cfg        config.GlossaryConfig
}

// New creates a glossary service.
func New(log *slog.Logger, terms termRepo, cfg config.GlossaryConfig) *Service {
	return &Service{
		log:        log,
		terms:      terms,
		categories: newCategoryCache(cfg.CategoryCacheTTL),
		cfg:        cfg,
	}
}
