package domain

import "time"

// OrderedItem is a record of a sortable collection (categories, articles,
// galleries, courses). Sort defines display order and is not guaranteed to be
// contiguous until the collection is compacted.
type OrderedItem struct {
	ID         int64
	Title      string
	Slug       string
	Status     ItemStatus
	Sort       int
	CategoryID *int64 // articles only
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *OrderedItem // populated on request, not stored
}

// LedgerRecord is a status-bearing record (commission, order) that can be
// selected for bulk actions while it is pending.
type LedgerRecord struct {
	ID           int64
	Reference    string
	CustomerName string
	AmountCents  int64
	Status       RecordStatus
	SettledAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Eligible reports whether the record may be selected for a bulk action.
func (r LedgerRecord) Eligible() bool {
	return r.Status == RecordStatusPending
}
