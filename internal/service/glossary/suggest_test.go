package glossary

import (
	"context"
	"testing"
)

func TestSuggestTerms_BlankQuerySkipsStore(t *testing.T) {
	t.Parallel()

	// SuggestFunc stays nil: a store call would panic.
	svc := newTestService(&termRepoMock{}, testConfig())

	names, err := svc.SuggestTerms(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no suggestions, got %v", names)
	}
}

func TestSuggestTerms_PassesConfiguredLimit(t *testing.T) {
	t.Parallel()

	var gotLimit int
	repo := &termRepoMock{
		SuggestFunc: func(_ context.Context, query string, limit int) ([]string, error) {
			gotLimit = limit
			return []string{"RFP", "RFQ"}, nil
		},
	}
	cfg := testConfig()
	cfg.SuggestLimit = 7
	svc := newTestService(repo, cfg)

	names, err := svc.SuggestTerms(context.Background(), "RF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 7 {
		t.Errorf("limit: got %d, want 7", gotLimit)
	}
	if len(names) != 2 {
		t.Errorf("names: got %v", names)
	}
}
