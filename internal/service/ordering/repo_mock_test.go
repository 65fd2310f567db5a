package ordering

import (
	"context"
	"sync"

	"github.com/heartmarshall/backoffice/internal/domain"
)

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	EntityFunc         func() domain.Entity
	IDsFunc            func(ctx context.Context) ([]int64, error)
	BulkUpdateSortFunc func(ctx context.Context, items []domain.ReorderItem) (int, error)
	CompactFunc        func(ctx context.Context) (int, error)

	calls struct {
		IDs            []struct{ Ctx context.Context }
		BulkUpdateSort []struct {
			Ctx   context.Context
			Items []domain.ReorderItem
		}
		Compact []struct{ Ctx context.Context }
	}
	lockIDs            sync.RWMutex
	lockBulkUpdateSort sync.RWMutex
	lockCompact        sync.RWMutex
}

func (mock *collectionRepoMock) Entity() domain.Entity {
	if mock.EntityFunc == nil {
		panic("collectionRepoMock.EntityFunc: method is nil but collectionRepo.Entity was just called")
	}
	return mock.EntityFunc()
}

func (mock *collectionRepoMock) IDs(ctx context.Context) ([]int64, error) {
	if mock.IDsFunc == nil {
		panic("collectionRepoMock.IDsFunc: method is nil but collectionRepo.IDs was just called")
	}
	mock.lockIDs.Lock()
	mock.calls.IDs = append(mock.calls.IDs, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockIDs.Unlock()
	return mock.IDsFunc(ctx)
}

func (mock *collectionRepoMock) IDsCalls() []struct{ Ctx context.Context } {
	mock.lockIDs.RLock()
	calls := mock.calls.IDs
	mock.lockIDs.RUnlock()
	return calls
}

func (mock *collectionRepoMock) BulkUpdateSort(ctx context.Context, items []domain.ReorderItem) (int, error) {
	if mock.BulkUpdateSortFunc == nil {
		panic("collectionRepoMock.BulkUpdateSortFunc: method is nil but collectionRepo.BulkUpdateSort was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.ReorderItem
	}{Ctx: ctx, Items: items}
	mock.lockBulkUpdateSort.Lock()
	mock.calls.BulkUpdateSort = append(mock.calls.BulkUpdateSort, callInfo)
	mock.lockBulkUpdateSort.Unlock()
	return mock.BulkUpdateSortFunc(ctx, items)
}

func (mock *collectionRepoMock) BulkUpdateSortCalls() []struct {
	Ctx   context.Context
	Items []domain.ReorderItem
} {
	mock.lockBulkUpdateSort.RLock()
	calls := mock.calls.BulkUpdateSort
	mock.lockBulkUpdateSort.RUnlock()
	return calls
}

func (mock *collectionRepoMock) Compact(ctx context.Context) (int, error) {
	if mock.CompactFunc == nil {
		panic("collectionRepoMock.CompactFunc: method is nil but collectionRepo.Compact was just called")
	}
	mock.lockCompact.Lock()
	mock.calls.Compact = append(mock.calls.Compact, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockCompact.Unlock()
	return mock.CompactFunc(ctx)
}

func (mock *collectionRepoMock) CompactCalls() []struct{ Ctx context.Context } {
	mock.lockCompact.RLock()
	calls := mock.calls.Compact
	mock.lockCompact.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{ Ctx context.Context }
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{ Ctx context.Context } {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
