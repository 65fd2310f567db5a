package domain

// Entity identifies an admin collection exposed by the list API.
type Entity string

const (
	EntityCategories  Entity = "categories"
	EntityArticles    Entity = "articles"
	EntityGalleries   Entity = "galleries"
	EntityCourses     Entity = "courses"
	EntityCommissions Entity = "commissions"
	EntityOrders      Entity = "orders"
)

func (e Entity) String() string { return string(e) }

func (e Entity) IsValid() bool {
	return e.IsSortable() || e.IsLedger()
}

// IsSortable reports whether the collection carries a user-managed sort rank.
func (e Entity) IsSortable() bool {
	switch e {
	case EntityCategories, EntityArticles, EntityGalleries, EntityCourses:
		return true
	}
	return false
}

// IsLedger reports whether the collection holds status-bearing records that
// accept bulk actions.
func (e Entity) IsLedger() bool {
	switch e {
	case EntityCommissions, EntityOrders:
		return true
	}
	return false
}

// SortableEntities lists every collection that supports reordering.
func SortableEntities() []Entity {
	return []Entity{EntityCategories, EntityArticles, EntityGalleries, EntityCourses}
}

// ItemStatus is the publication state of an ordered item.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusActive, ItemStatusInactive:
		return true
	}
	return false
}

// RecordStatus is the settlement state of a ledger record.
type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusPaid      RecordStatus = "paid"
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusCancelled RecordStatus = "cancelled"
)

func (s RecordStatus) String() string { return string(s) }

func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusPending, RecordStatusPaid, RecordStatusCompleted, RecordStatusCancelled:
		return true
	}
	return false
}
