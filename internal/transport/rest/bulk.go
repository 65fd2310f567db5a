package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/backoffice/internal/domain"
	"github.com/heartmarshall/backoffice/internal/service/bulk"
)

type bulkService interface {
	Apply(ctx context.Context, input bulk.ApplyInput) (bulk.Result, error)
}

// BulkHandler applies bulk actions to ledger collections.
type BulkHandler struct {
	svc bulkService
	log *slog.Logger
}

// NewBulkHandler creates a BulkHandler.
func NewBulkHandler(svc bulkService, logger *slog.Logger) *BulkHandler {
	return &BulkHandler{
		svc: svc,
		log: logger.With("handler", "bulk"),
	}
}

// BulkUpdate runs an action on the selected ids or, in All mode, on every
// record matching the filter passed in the query string.
// POST /api/{entity}/bulk-update/{action}?status=pending  {"mode":"All"}
func (h *BulkHandler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	entity, ok := entityFromPath(w, r)
	if !ok {
		return
	}

	var req bulkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := bulk.ApplyInput{
		Entity: entity,
		Action: domain.BulkAction(r.PathValue("action")),
		Mode:   req.Mode,
		IDs:    req.IDs,
	}
	if req.Mode == domain.BulkModeAll {
		q := r.URL.Query()
		input.Search = optional(q, paramSearch)
		input.Status = optional(q, paramStatus)
	}

	res, err := h.svc.Apply(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := bulkResponse{Message: res.Message}
	resp.Data.Affected = res.Affected
	writeJSON(w, http.StatusOK, resp)
}
