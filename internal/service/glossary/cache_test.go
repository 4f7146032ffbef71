package glossary

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCategories_ServedFromCacheWithinTTL(t *testing.T) {
	t.Parallel()

	fetches := 0
	repo := &termRepoMock{
		DistinctCategoriesFunc: func(_ context.Context) ([]string, error) {
			fetches++
			return []string{"Contracting", "Procurement"}, nil
		},
	}
	svc := newTestService(repo, testConfig())

	for i := 0; i < 5; i++ {
		cats, err := svc.Categories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cats) != 2 {
			t.Fatalf("got %v, want 2 categories", cats)
		}
	}

	if fetches != 1 {
		t.Errorf("fetches: got %d, want 1 (cache must absorb repeats)", fetches)
	}
}

func TestCategories_RefetchesAfterTTL(t *testing.T) {
	t.Parallel()

	fetches := 0
	repo := &termRepoMock{
		DistinctCategoriesFunc: func(_ context.Context) ([]string, error) {
			fetches++
			return []string{"Contracting"}, nil
		},
	}
	cfg := testConfig()
	cfg.CategoryCacheTTL = time.Millisecond
	svc := newTestService(repo, cfg)

	if _, err := svc.Categories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := svc.Categories(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetches != 2 {
		t.Errorf("fetches: got %d, want 2 (TTL expiry must refetch)", fetches)
	}
}

func TestCategories_FetchErrorIsNotCached(t *testing.T) {
	t.Parallel()

	fetches := 0
	repo := &termRepoMock{
		DistinctCategoriesFunc: func(_ context.Context) ([]string, error) {
			fetches++
			if fetches == 1 {
				return nil, errors.New("connection refused")
			}
			return []string{"Contracting"}, nil
		},
	}
	svc := newTestService(repo, testConfig())

	if _, err := svc.Categories(context.Background()); err == nil {
		t.Fatal("expected the first fetch error to surface")
	}

	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if len(cats) != 1 {
		t.Errorf("got %v, want the refetched facet", cats)
	}
}
