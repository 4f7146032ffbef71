// Command seeder loads the initial set of federal acquisition terms into
// an empty glossary. It is idempotent: terms that already exist (by the
// case-insensitive duplicate policy) are skipped, not overwritten.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/feddict/feddict-backend/internal/adapter/postgres"
	"github.com/feddict/feddict-backend/internal/adapter/postgres/term"
	"github.com/feddict/feddict-backend/internal/app"
	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/internal/domain"
	"github.com/feddict/feddict-backend/internal/service/glossary"
)

var initialTerms = []glossary.TermInput{
	{
		Term:       "BAFO",
		Definition: "Best and Final Offer: the last proposal revision a bidder may submit after negotiations conclude.",
		Category:   "Contracting",
	},
	{
		Term:       "RFP",
		Definition: "Request for Proposal: a solicitation asking vendors to propose solutions and pricing for a requirement.",
		Category:   "Procurement",
	},
	{
		Term:       "FAR",
		Definition: "Federal Acquisition Regulation: the primary rulebook governing executive-branch procurement.",
		Category:   "Regulations",
	},
	{
		Term:       "IDIQ",
		Definition: "Indefinite Delivery/Indefinite Quantity: a contract vehicle for an unspecified quantity of supplies or services over a fixed period.",
		Category:   "Contracts",
	},
	{
		Term:       "SOW",
		Definition: "Statement of Work: the document defining the activities, deliverables, and timeline a contractor must execute.",
		Category:   "Documentation",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := glossary.New(logger, term.New(pool), cfg.Glossary)
	txm := postgres.NewTxManager(pool)

	// One transaction for the whole load: a failed run leaves no partial seed.
	var created, skipped int
	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		for _, in := range initialTerms {
			_, err := svc.CreateTerm(ctx, in)
			switch {
			case err == nil:
				created++
			case errors.Is(err, domain.ErrAlreadyExists):
				skipped++
			default:
				return fmt.Errorf("seed term %q: %w", in.Term, err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed", slog.Int("created", created), slog.Int("skipped", skipped))
}
