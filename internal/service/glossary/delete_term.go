package glossary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/feddict/feddict-backend/internal/domain"
)

// deleteAllPrefix plus the current UTC date forms the confirmation token
// that guards DeleteAllTerms.
const deleteAllPrefix = "CONFIRM_DELETE_ALL_"

// DeleteTerm removes a single term.
// Returns domain.ErrNotFound if the term does not exist.
func (s *Service) DeleteTerm(ctx context.Context, id uuid.UUID) error {
	removed, err := s.terms.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete term: %w", err)
	}
	if !removed {
		return fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}

	s.log.Info("term deleted", "id", id)

	return nil
}

// DeleteTerms removes a batch of terms by id and returns how many records
// were removed. Unknown ids are skipped. An empty batch is a validation
// error.
func (s *Service) DeleteTerms(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids", "at least one id is required")
	}

	count, err := s.terms.DeleteMany(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete terms: %w", err)
	}

	s.log.Info("terms deleted", "requested", len(ids), "deleted", count)

	return count, nil
}

// DeleteAllTerms wipes the whole glossary. The caller must supply the
// confirmation token for today, "CONFIRM_DELETE_ALL_" followed by the
// current UTC date as YYYY-MM-DD. Anything else is rejected with
// domain.ErrConfirmationMismatch and nothing is deleted.
func (s *Service) DeleteAllTerms(ctx context.Context, confirmation string) (int64, error) {
	expected := deleteAllPrefix + time.Now().UTC().Format("2006-01-02")
	if confirmation != expected {
		return 0, fmt.Errorf("delete all terms: %w", domain.ErrConfirmationMismatch)
	}

	count, err := s.terms.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all terms: %w", err)
	}

	s.log.Warn("all terms deleted", "count", count)

	return count, nil
}

// CleanupTestTerms removes leftover records carrying the internal test
// marker (leading or trailing underscore). Run at startup and on demand.
func (s *Service) CleanupTestTerms(ctx context.Context) (int64, error) {
	count, err := s.terms.DeleteTestTerms(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup test terms: %w", err)
	}

	if count > 0 {
		s.log.Info("test terms cleaned up", "count", count)
	}

	return count, nil
}
