package domain

// UnboundedLimit requests the whole collection instead of one page. Sortable
// screens use it because a reorder has to see every row.
const UnboundedLimit = -1

// ListFilter contains filtering/pagination parameters for list queries.
type ListFilter struct {
	Search     *string
	Status     *string
	CategoryID *int64
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
	Populate   []string
}

// IsSortable reports whether rows listed with this filter may be dragged.
// Sort order is only meaningful over the full, unfiltered collection.
func (f ListFilter) IsSortable() bool {
	return (f.Search == nil || *f.Search == "") && (f.Status == nil || *f.Status == "")
}

// Unbounded reports whether the caller asked for every row.
func (f ListFilter) Unbounded() bool {
	return f.Limit == UnboundedLimit
}

// Populates reports whether the relation was requested.
func (f ListFilter) Populates(relation string) bool {
	for _, p := range f.Populate {
		if p == relation {
			return true
		}
	}
	return false
}

// ReorderItem represents an item to reorder with its new 1-based sort rank.
type ReorderItem struct {
	ID   int64 `json:"id"`
	Sort int   `json:"sort"`
}

var (
	itemSortFields   = []string{"sort", "title", "slug", "status", "created_at", "updated_at", "id"}
	recordSortFields = []string{"created_at", "amount_cents", "reference", "customer_name", "status", "id"}
)

// SortFieldsFor returns the columns a list of the entity may be ordered by.
func SortFieldsFor(e Entity) []string {
	switch {
	case e.IsSortable():
		return itemSortFields
	case e.IsLedger():
		return recordSortFields
	}
	return nil
}
