package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/backoffice/internal/service/ordering"
)

type orderingService interface {
	Reorder(ctx context.Context, input ordering.ReorderInput) (int, error)
}

// ReorderHandler persists the order of a sortable collection.
type ReorderHandler struct {
	svc orderingService
	log *slog.Logger
}

// NewReorderHandler creates a ReorderHandler.
func NewReorderHandler(svc orderingService, logger *slog.Logger) *ReorderHandler {
	return &ReorderHandler{
		svc: svc,
		log: logger.With("handler", "reorder"),
	}
}

// BulkUpdateSort replaces the sort ranks of the whole collection.
// POST /api/{entity}/bulk-update-sort  {"items":[{"id":3,"sort":1},...]}
func (h *ReorderHandler) BulkUpdateSort(w http.ResponseWriter, r *http.Request) {
	entity, ok := entityFromPath(w, r)
	if !ok {
		return
	}

	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.svc.Reorder(r.Context(), ordering.ReorderInput{Entity: entity, Items: req.Items})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp reorderResponse
	resp.Data.Updated = updated
	writeJSON(w, http.StatusOK, resp)
}
