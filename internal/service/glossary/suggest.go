package glossary

import (
	"context"
	"fmt"
	"strings"
)

// SuggestTerms returns term names for autocomplete: prefix matches first,
// then substring matches, capped at the configured limit. A blank query
// yields an empty result.
func (s *Service) SuggestTerms(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	names, err := s.terms.Suggest(ctx, query, s.cfg.SuggestLimit)
	if err != nil {
		return nil, fmt.Errorf("suggest terms: %w", err)
	}

	return names, nil
}
