package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/backoffice/internal/domain"
	"github.com/heartmarshall/backoffice/internal/service/listing"
)

type listService interface {
	ListItems(ctx context.Context, input listing.ListInput) ([]domain.OrderedItem, int, error)
	ListRecords(ctx context.Context, input listing.ListInput) ([]domain.LedgerRecord, int, error)
}

// ListHandler serves filtered, paginated collection reads.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{
		svc: svc,
		log: logger.With("handler", "list"),
	}
}

// List returns one page of a collection and the total number of matches.
// GET /api/{entity}?search=&status=&sort=title:asc&limit=20&page=1&populate=category
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	entity, ok := entityFromPath(w, r)
	if !ok {
		return
	}

	input, err := parseListQuery(entity, r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if entity.IsSortable() {
		items, total, err := h.svc.ListItems(r.Context(), input)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		resp := listResponse[itemResponse]{Items: make([]itemResponse, 0, len(items)), Count: total}
		for _, it := range items {
			resp.Items = append(resp.Items, toItemResponse(it))
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	records, total, err := h.svc.ListRecords(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := listResponse[recordResponse]{Items: make([]recordResponse, 0, len(records)), Count: total}
	for _, rec := range records {
		resp.Items = append(resp.Items, toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// entityFromPath reads the {entity} path value and answers 404 for unknown
// collections.
func entityFromPath(w http.ResponseWriter, r *http.Request) (domain.Entity, bool) {
	entity := domain.Entity(r.PathValue("entity"))
	if !entity.IsValid() {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown collection %q", entity))
		return "", false
	}
	return entity, true
}
