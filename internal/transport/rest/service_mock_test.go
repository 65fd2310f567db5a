package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/backoffice/internal/domain"
	"github.com/heartmarshall/backoffice/internal/service/bulk"
	"github.com/heartmarshall/backoffice/internal/service/listing"
	"github.com/heartmarshall/backoffice/internal/service/ordering"
)

// ---------------------------------------------------------------------------
// listService
// ---------------------------------------------------------------------------

var _ listService = &listServiceMock{}

type listServiceMock struct {
	ListItemsFunc   func(ctx context.Context, input listing.ListInput) ([]domain.OrderedItem, int, error)
	ListRecordsFunc func(ctx context.Context, input listing.ListInput) ([]domain.LedgerRecord, int, error)

	calls struct {
		ListItems   []struct{ Input listing.ListInput }
		ListRecords []struct{ Input listing.ListInput }
	}
	lockListItems   sync.RWMutex
	lockListRecords sync.RWMutex
}

func (mock *listServiceMock) ListItems(ctx context.Context, input listing.ListInput) ([]domain.OrderedItem, int, error) {
	if mock.ListItemsFunc == nil {
		panic("listServiceMock.ListItemsFunc: method is nil but listService.ListItems was just called")
	}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, struct{ Input listing.ListInput }{Input: input})
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, input)
}

func (mock *listServiceMock) ListItemsCalls() []struct{ Input listing.ListInput } {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *listServiceMock) ListRecords(ctx context.Context, input listing.ListInput) ([]domain.LedgerRecord, int, error) {
	if mock.ListRecordsFunc == nil {
		panic("listServiceMock.ListRecordsFunc: method is nil but listService.ListRecords was just called")
	}
	mock.lockListRecords.Lock()
	mock.calls.ListRecords = append(mock.calls.ListRecords, struct{ Input listing.ListInput }{Input: input})
	mock.lockListRecords.Unlock()
	return mock.ListRecordsFunc(ctx, input)
}

func (mock *listServiceMock) ListRecordsCalls() []struct{ Input listing.ListInput } {
	mock.lockListRecords.RLock()
	calls := mock.calls.ListRecords
	mock.lockListRecords.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// orderingService
// ---------------------------------------------------------------------------

var _ orderingService = &orderingServiceMock{}

type orderingServiceMock struct {
	ReorderFunc func(ctx context.Context, input ordering.ReorderInput) (int, error)

	calls struct {
		Reorder []struct{ Input ordering.ReorderInput }
	}
	lockReorder sync.RWMutex
}

func (mock *orderingServiceMock) Reorder(ctx context.Context, input ordering.ReorderInput) (int, error) {
	if mock.ReorderFunc == nil {
		panic("orderingServiceMock.ReorderFunc: method is nil but orderingService.Reorder was just called")
	}
	mock.lockReorder.Lock()
	mock.calls.Reorder = append(mock.calls.Reorder, struct{ Input ordering.ReorderInput }{Input: input})
	mock.lockReorder.Unlock()
	return mock.ReorderFunc(ctx, input)
}

func (mock *orderingServiceMock) ReorderCalls() []struct{ Input ordering.ReorderInput } {
	mock.lockReorder.RLock()
	calls := mock.calls.Reorder
	mock.lockReorder.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// bulkService
// ---------------------------------------------------------------------------

var _ bulkService = &bulkServiceMock{}

type bulkServiceMock struct {
	ApplyFunc func(ctx context.Context, input bulk.ApplyInput) (bulk.Result, error)

	calls struct {
		Apply []struct{ Input bulk.ApplyInput }
	}
	lockApply sync.RWMutex
}

func (mock *bulkServiceMock) Apply(ctx context.Context, input bulk.ApplyInput) (bulk.Result, error) {
	if mock.ApplyFunc == nil {
		panic("bulkServiceMock.ApplyFunc: method is nil but bulkService.Apply was just called")
	}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, struct{ Input bulk.ApplyInput }{Input: input})
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, input)
}

func (mock *bulkServiceMock) ApplyCalls() []struct{ Input bulk.ApplyInput } {
	mock.lockApply.RLock()
	calls := mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}
