package glossary

import (
	"context"

	"github.com/google/uuid"

	"github.com/feddict/feddict-backend/internal/domain"
)

// GetTerm returns a single term by id.
// Returns domain.ErrNotFound if no such term exists.
func (s *Service) GetTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	return s.terms.GetByID(ctx, id)
}
