package domain

import "testing"

func TestEntity_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entity   Entity
		sortable bool
		ledger   bool
	}{
		{EntityCategories, true, false},
		{EntityArticles, true, false},
		{EntityGalleries, true, false},
		{EntityCourses, true, false},
		{EntityCommissions, false, true},
		{EntityOrders, false, true},
		{Entity("coupons"), false, false},
		{Entity(""), false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.entity), func(t *testing.T) {
			t.Parallel()
			if got := tt.entity.IsSortable(); got != tt.sortable {
				t.Errorf("IsSortable() = %v, want %v", got, tt.sortable)
			}
			if got := tt.entity.IsLedger(); got != tt.ledger {
				t.Errorf("IsLedger() = %v, want %v", got, tt.ledger)
			}
			if got := tt.entity.IsValid(); got != (tt.sortable || tt.ledger) {
				t.Errorf("IsValid() = %v", got)
			}
		})
	}
}

func TestSortableEntities_AllSortable(t *testing.T) {
	t.Parallel()

	for _, e := range SortableEntities() {
		if !e.IsSortable() {
			t.Errorf("%s listed as sortable but IsSortable() = false", e)
		}
	}
}

func TestRecordStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status RecordStatus
		want   bool
	}{
		{RecordStatusPending, true},
		{RecordStatusPaid, true},
		{RecordStatusCompleted, true},
		{RecordStatusCancelled, true},
		{RecordStatus("refunded"), false},
		{RecordStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("RecordStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestLedgerRecord_Eligible(t *testing.T) {
	t.Parallel()

	if !(LedgerRecord{Status: RecordStatusPending}).Eligible() {
		t.Error("pending record should be eligible")
	}
	for _, s := range []RecordStatus{RecordStatusPaid, RecordStatusCompleted, RecordStatusCancelled} {
		if (LedgerRecord{Status: s}).Eligible() {
			t.Errorf("%s record should not be eligible", s)
		}
	}
}

func TestTransitionFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entity Entity
		action BulkAction
		want   Transition
		ok     bool
	}{
		{EntityCommissions, BulkActionPay, Transition{RecordStatusPending, RecordStatusPaid}, true},
		{EntityCommissions, BulkActionCancel, Transition{RecordStatusPending, RecordStatusCancelled}, true},
		{EntityCommissions, BulkActionComplete, Transition{}, false},
		{EntityOrders, BulkActionComplete, Transition{RecordStatusPending, RecordStatusCompleted}, true},
		{EntityOrders, BulkActionPay, Transition{}, false},
		{EntityCategories, BulkActionCancel, Transition{}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.entity)+"/"+string(tt.action), func(t *testing.T) {
			t.Parallel()
			got, ok := TransitionFor(tt.entity, tt.action)
			if ok != tt.ok || got != tt.want {
				t.Errorf("TransitionFor = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestListFilter_IsSortable(t *testing.T) {
	t.Parallel()

	empty := ""
	search := "shoes"
	status := "active"

	tests := []struct {
		name   string
		filter ListFilter
		want   bool
	}{
		{"no filters", ListFilter{}, true},
		{"empty search", ListFilter{Search: &empty}, true},
		{"search", ListFilter{Search: &search}, false},
		{"status", ListFilter{Status: &status}, false},
		{"both", ListFilter{Search: &search, Status: &status}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.filter.IsSortable(); got != tt.want {
				t.Errorf("IsSortable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortFieldsFor(t *testing.T) {
	t.Parallel()

	if fields := SortFieldsFor(EntityArticles); fields[0] != "sort" {
		t.Errorf("articles should sort by rank first, got %v", fields)
	}
	if fields := SortFieldsFor(EntityOrders); fields[0] != "created_at" {
		t.Errorf("orders should sort by created_at first, got %v", fields)
	}
	if fields := SortFieldsFor(Entity("coupons")); fields != nil {
		t.Errorf("unknown entity should have no sort fields, got %v", fields)
	}
}
