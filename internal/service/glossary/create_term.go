package glossary

import (
	"context"
	"fmt"

	"github.com/feddict/feddict-backend/internal/domain"
)

// CreateTerm validates the input, applies the duplicate policy, and
// persists a new term.
// Returns domain.ErrValidation for bad input and a *domain.DuplicateError
// (wrapping domain.ErrAlreadyExists) for collisions.
func (s *Service) CreateTerm(ctx context.Context, in TermInput) (*domain.Term, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.findCollision(ctx, in.Term, nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Term: in.Term, Existing: existing.Term}
	}

	term, err := s.terms.Insert(ctx, in.fields())
	if err != nil {
		return nil, fmt.Errorf("create term: %w", err)
	}

	s.log.Info("term created", "term", term.Term, "id", term.ID)

	return term, nil
}
