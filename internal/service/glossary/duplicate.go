package glossary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/feddict/feddict-backend/internal/domain"
)

// findCollision implements the duplicate policy for a candidate term text.
// Two checks run against the store, both case-insensitive:
//
//  1. the full text ("RFP" vs "rfp"),
//  2. the acronym base, the text before the first parenthesis
//     ("ABC (Alpha Beta Corp)" collides with an existing "ABC").
//
// excludeID skips the record being updated so a term can keep its own name.
// Returns the colliding term, or nil when the text is free.
func (s *Service) findCollision(ctx context.Context, text string, excludeID *uuid.UUID) (*domain.Term, error) {
	keys := []string{domain.NormalizeTerm(text)}
	if base := domain.AcronymBase(text); base != "" {
		if n := domain.NormalizeTerm(base); n != keys[0] {
			keys = append(keys, n)
		}
	}

	for _, key := range keys {
		existing, err := s.terms.GetByNormalized(ctx, key)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("duplicate check: %w", err)
		}
		if excludeID != nil && existing.ID == *excludeID {
			continue
		}
		return existing, nil
	}

	return nil, nil
}
