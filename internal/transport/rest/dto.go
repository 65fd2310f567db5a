package rest

import (
	"time"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// ---------------------------------------------------------------------------
// List responses
// ---------------------------------------------------------------------------

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

type itemResponse struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	Slug       string        `json:"slug"`
	Status     string        `json:"status"`
	Sort       int           `json:"sort"`
	CategoryID *int64        `json:"category_id,omitempty"`
	Category   *itemResponse `json:"category,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

type recordResponse struct {
	ID           int64      `json:"id"`
	Reference    string     `json:"reference"`
	CustomerName string     `json:"customer_name"`
	AmountCents  int64      `json:"amount_cents"`
	Status       string     `json:"status"`
	Eligible     bool       `json:"eligible"`
	SettledAt    *time.Time `json:"settled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toItemResponse(it domain.OrderedItem) itemResponse {
	resp := itemResponse{
		ID:         it.ID,
		Title:      it.Title,
		Slug:       it.Slug,
		Status:     string(it.Status),
		Sort:       it.Sort,
		CategoryID: it.CategoryID,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
	if it.Category != nil {
		cat := toItemResponse(*it.Category)
		resp.Category = &cat
	}
	return resp
}

func toRecordResponse(rec domain.LedgerRecord) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		Reference:    rec.Reference,
		CustomerName: rec.CustomerName,
		AmountCents:  rec.AmountCents,
		Status:       string(rec.Status),
		Eligible:     rec.Eligible(),
		SettledAt:    rec.SettledAt,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

type reorderRequest struct {
	Items []domain.ReorderItem `json:"items"`
}

type reorderResponse struct {
	Data struct {
		Updated int `json:"updated"`
	} `json:"data"`
}

type bulkRequest struct {
	Mode domain.BulkMode `json:"mode"`
	IDs  []int64         `json:"ids,omitempty"`
}

type bulkResponse struct {
	Message string `json:"message"`
	Data    struct {
		Affected int `json:"affected"`
	} `json:"data"`
}
