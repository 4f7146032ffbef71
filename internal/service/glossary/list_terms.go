package glossary

import (
	"context"
	"fmt"

	"github.com/feddict/feddict-backend/internal/domain"
)

// ListTerms returns one page of terms matching the filter, the pagination
// envelope, and the cached category facet. Out-of-range page and perPage
// values are clamped, unknown sort fields fall back to term ascending;
// list requests never fail on bad knobs, only on store errors.
func (s *Service) ListTerms(ctx context.Context, in ListInput) (*TermPage, error) {
	page, perPage := in.window(s.cfg)

	filter := domain.TermFilter{
		Search:    in.Search,
		Category:  in.Category,
		SortBy:    in.SortBy,
		SortOrder: in.SortOrder,
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	}

	items, total, err := s.terms.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}

	return &TermPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Pages:      pages,
		Categories: categories,
	}, nil
}
