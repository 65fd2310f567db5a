package listapi

import (
	"time"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// Item is a row of a sortable collection as returned by the list endpoint.
type Item struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Status     string    `json:"status"`
	Sort       int       `json:"sort"`
	CategoryID *int64    `json:"category_id,omitempty"`
	Category   *Item     `json:"category,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Record is a ledger row (commission, order).
type Record struct {
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

// ListResponse is one page of a collection plus the total match count.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

type ReorderRequest struct {
	Items []domain.ReorderItem `json:"items"`
}

type ReorderResponse struct {
	Data struct {
		Updated int `json:"updated"`
	} `json:"data"`
}

// BulkActionRequest is the body of a bulk action. IDs is only sent in
// Selected mode.
type BulkActionRequest struct {
	Mode domain.BulkMode `json:"mode"`
	IDs  []int64         `json:"ids,omitempty"`
}

type BulkActionResponse struct {
	Message string `json:"message"`
	Data    struct {
		Affected int `json:"affected"`
	} `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}
