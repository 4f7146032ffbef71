package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/feddict/feddict-backend/internal/domain"
	"github.com/feddict/feddict-backend/internal/service/glossary"
)

// glossaryService defines the minimal interface needed by TermHandler.
type glossaryService interface {
	ListTerms(ctx context.Context, in glossary.ListInput) (*glossary.TermPage, error)
	GetTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	CreateTerm(ctx context.Context, in glossary.TermInput) (*domain.Term, error)
	UpdateTerm(ctx context.Context, id uuid.UUID, in glossary.TermInput) (*domain.Term, error)
	DeleteTerm(ctx context.Context, id uuid.UUID) error
	SuggestTerms(ctx context.Context, query string) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
}

// TermHandler serves the public term endpoints and the authenticated CRUD.
type TermHandler struct {
	svc glossaryService
	log *slog.Logger
}

// NewTermHandler creates a TermHandler.
func NewTermHandler(svc glossaryService, logger *slog.Logger) *TermHandler {
	return &TermHandler{svc: svc, log: logger.With("handler", "terms")}
}

type termRequest struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category"`
}

type termResponse struct {
	ID         string    `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type listResponse struct {
	Items      []termResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Pages      int            `json:"pages"`
	Categories []string       `json:"categories"`
}

// List handles GET /terms.
// Query: search, category, sort_by, sort_order, page, per_page.
func (h *TermHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in := glossary.ListInput{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if v := q.Get("search"); v != "" {
		in.Search = &v
	}
	if v := q.Get("category"); v != "" {
		in.Category = &v
	}
	if v := q.Get("page"); v != "" {
		in.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("per_page"); v != "" {
		in.PerPage, _ = strconv.Atoi(v)
	}

	page, err := h.svc.ListTerms(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(page))
}

// Get handles GET /terms/{id}.
func (h *TermHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	term, err := h.svc.GetTerm(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// Create handles POST /terms.
func (h *TermHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	term, err := h.svc.CreateTerm(r.Context(), glossary.TermInput{
		Term:       req.Term,
		Definition: req.Definition,
		Category:   req.Category,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTermResponse(term))
}

// Update handles PUT /terms/{id}.
func (h *TermHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	term, err := h.svc.UpdateTerm(r.Context(), id, glossary.TermInput{
		Term:       req.Term,
		Definition: req.Definition,
		Category:   req.Category,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// Delete handles DELETE /terms/{id}.
func (h *TermHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTerm(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Suggest handles GET /terms/suggest?q=...
func (h *TermHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.SuggestTerms(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": names})
}

// Categories handles GET /categories.
func (h *TermHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (h *TermHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "term not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid term id")
		return uuid.Nil, false
	}
	return id, true
}

func toTermResponse(t *domain.Term) termResponse {
	return termResponse{
		ID:         t.ID.String(),
		Term:       t.Term,
		Definition: t.Definition,
		Category:   t.Category,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toListResponse(page *glossary.TermPage) listResponse {
	items := make([]termResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toTermResponse(&page.Items[i]))
	}
	return listResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Pages:      page.Pages,
		Categories: page.Categories,
	}
}
