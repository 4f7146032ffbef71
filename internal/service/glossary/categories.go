package glossary

import "context"

// Categories returns the distinct category values currently in use,
// served from a TTL cache to keep the facet off the hot path of every
// list request.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.categories.get(ctx, s.terms.DistinctCategories)
}
