package glossary

import (
	"context"
	"fmt"
	"strings"

	"github.com/feddict/feddict-backend/internal/domain"
)

// IngestTerms loads a batch of candidate records one by one: each record
// is validated, checked against the duplicate policy, and inserted
// independently. A failing record is reported and skipped, never aborting
// the run, and successful inserts are not rolled back. The report always
// satisfies Processed == Success + Failed.
//
// An empty batch or one larger than the configured maximum is rejected
// up front with a validation error.
func (s *Service) IngestTerms(ctx context.Context, candidates []domain.TermCandidate) (*IngestReport, error) {
	if len(candidates) == 0 {
		return nil, domain.NewValidationError("records", "at least one record is required")
	}
	if len(candidates) > s.cfg.MaxIngestRecords {
		return nil, domain.NewValidationError("records",
			fmt.Sprintf("at most %d records per upload", s.cfg.MaxIngestRecords))
	}

	report := &IngestReport{Processed: len(candidates)}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ingest terms: %w", err)
		}

		if err := s.ingestOne(ctx, c); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, ingestErrorMessage(c, err))
			continue
		}
		report.Success++
	}

	s.log.Info("ingest finished",
		"processed", report.Processed,
		"success", report.Success,
		"failed", report.Failed)

	return report, nil
}

func (s *Service) ingestOne(ctx context.Context, c domain.TermCandidate) error {
	in := TermInput{Term: c.Term, Definition: c.Definition, Category: c.Category}
	in.normalize()
	if err := in.validate(); err != nil {
		return err
	}

	existing, err := s.findCollision(ctx, in.Term, nil)
	if err != nil {
		return err
	}
	if existing != nil {
		return &domain.DuplicateError{Term: in.Term, Existing: existing.Term}
	}

	if _, err := s.terms.Insert(ctx, in.fields()); err != nil {
		return err
	}

	return nil
}

func ingestErrorMessage(c domain.TermCandidate, err error) string {
	label := strings.TrimSpace(c.Term)
	if label == "" {
		label = "unknown"
	}
	return fmt.Sprintf("term %q: %v", label, err)
}
