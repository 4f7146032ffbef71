package glossary

import (
	"strings"
	"unicode/utf8"

	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/internal/domain"
)

const (
	maxTermLength       = 100
	minDefinitionLength = 10
	minCategoryLength   = 2
)

// TermInput carries the caller-supplied fields for create and update.
type TermInput struct {
	Term       string
	Definition string
	Category   string
}

// normalize trims all fields in place and returns the receiver for chaining.
func (in *TermInput) normalize() *TermInput {
	in.Term = strings.TrimSpace(in.Term)
	in.Definition = strings.TrimSpace(in.Definition)
	in.Category = strings.TrimSpace(in.Category)
	return in
}

// validate checks the (already trimmed) input and collects every failing
// field instead of stopping at the first.
func (in *TermInput) validate() error {
	var errs []domain.FieldError

	switch {
	case in.Term == "":
		errs = append(errs, domain.FieldError{Field: "term", Message: "term is required"})
	case utf8.RuneCountInString(in.Term) > maxTermLength:
		errs = append(errs, domain.FieldError{Field: "term", Message: "term must be at most 100 characters"})
	case domain.IsTestTerm(in.Term):
		errs = append(errs, domain.FieldError{Field: "term", Message: "term must not start or end with an underscore"})
	}

	switch {
	case in.Definition == "":
		errs = append(errs, domain.FieldError{Field: "definition", Message: "definition is required"})
	case utf8.RuneCountInString(in.Definition) < minDefinitionLength:
		errs = append(errs, domain.FieldError{Field: "definition", Message: "definition must be at least 10 characters"})
	}

	switch {
	case in.Category == "":
		errs = append(errs, domain.FieldError{Field: "category", Message: "category is required"})
	case utf8.RuneCountInString(in.Category) < minCategoryLength:
		errs = append(errs, domain.FieldError{Field: "category", Message: "category must be at least 2 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (in *TermInput) fields() domain.TermFields {
	return domain.TermFields{
		Term:       in.Term,
		Definition: in.Definition,
		Category:   in.Category,
	}
}

// ListInput carries the query parameters of a list request. Zero values
// mean "use the default": page 1, the configured default page size, sort
// by term ascending.
type ListInput struct {
	Search    *string
	Category  *string
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// window resolves page/perPage into a clamped limit and offset.
// Out-of-range values are corrected silently, never rejected.
func (in ListInput) window(cfg config.GlossaryConfig) (page, perPage int) {
	page = in.Page
	if page < 1 {
		page = 1
	}

	perPage = in.PerPage
	if perPage < 1 {
		perPage = cfg.DefaultPerPage
	}
	if perPage > cfg.MaxPerPage {
		perPage = cfg.MaxPerPage
	}

	return page, perPage
}
