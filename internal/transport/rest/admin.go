package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/feddict/feddict-backend/internal/domain"
	"github.com/feddict/feddict-backend/internal/service/glossary"
	"github.com/feddict/feddict-backend/pkg/ctxutil"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	DeleteTerms(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteAllTerms(ctx context.Context, confirmation string) (int64, error)
	IngestTerms(ctx context.Context, candidates []domain.TermCandidate) (*glossary.IngestReport, error)
	CleanupTestTerms(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*glossary.StatsResult, error)
}

// AdminHandler serves the authenticated admin endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type deleteAllRequest struct {
	Confirmation string `json:"confirmation"`
}

type ingestResponse struct {
	Processed int      `json:"processed"`
	Success   int      `json:"success"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

type statsResponse struct {
	Terms         int64   `json:"terms"`
	SizeBytes     int64   `json:"sizeBytes"`
	CapacityBytes int64   `json:"capacityBytes"`
	UsagePercent  float64 `json:"usagePercent"`
}

// BulkDelete handles POST /admin/terms/bulk-delete.
func (h *AdminHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid term id: "+raw)
			return
		}
		ids = append(ids, id)
	}

	count, err := h.svc.DeleteTerms(r.Context(), ids)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": count})
}

// DeleteAll handles POST /admin/terms/delete-all. The request must carry
// the confirmation token for the current UTC date.
func (h *AdminHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	var req deleteAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count, err := h.svc.DeleteAllTerms(r.Context(), req.Confirmation)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	admin, _ := ctxutil.AdminUserFromCtx(r.Context())
	h.log.WarnContext(r.Context(), "glossary wiped",
		slog.Int64("deleted", count),
		slog.String("admin", admin))

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": count})
}

// Ingest handles POST /admin/terms/upload. The body is a JSON array or a
// CSV document (raw or as a multipart file field named "file").
func (h *AdminHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	candidates, err := decodeCandidates(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.svc.IngestTerms(r.Context(), candidates)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ingestResponse{
		Processed: report.Processed,
		Success:   report.Success,
		Failed:    report.Failed,
		Errors:    report.Errors,
	})
}

// Cleanup handles POST /admin/cleanup: removes leftover test-marker terms.
func (h *AdminHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CleanupTestTerms(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": count})
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Terms:         result.Terms,
		SizeBytes:     result.SizeBytes,
		CapacityBytes: result.CapacityBytes,
		UsagePercent:  result.UsagePercent,
	})
}

// VerifyAuth handles GET /verify-auth. Reaching the handler means the
// basic-auth middleware accepted the credentials.
func (h *AdminHandler) VerifyAuth(w http.ResponseWriter, r *http.Request) {
	admin, _ := ctxutil.AdminUserFromCtx(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "user": admin})
}

func (h *AdminHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConfirmationMismatch):
		writeError(w, http.StatusBadRequest, "confirmation token mismatch")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
