package glossary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feddict/feddict-backend/internal/domain"
)

// UpdateTerm replaces all three fields of an existing term. The duplicate
// policy applies to the new text, excluding the record itself so a term
// can be renamed in case only or keep its name while the definition
// changes.
func (s *Service) UpdateTerm(ctx context.Context, id uuid.UUID, in TermInput) (*domain.Term, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.terms.GetByID(ctx, id); err != nil {
		return nil, err
	}

	existing, err := s.findCollision(ctx, in.Term, &id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Term: in.Term, Existing: existing.Term}
	}

	term, err := s.terms.Update(ctx, id, in.fields())
	if err != nil {
		return nil, fmt.Errorf("update term: %w", err)
	}

	s.log.Info("term updated", "term", term.Term, "id", term.ID)

	return term, nil
}
