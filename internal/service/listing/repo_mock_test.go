package listing

import (
	"context"
	"sync"

	"github.com/heartmarshall/backoffice/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	EntityFunc func() domain.Entity
	ListFunc   func(ctx context.Context, filter domain.ListFilter) ([]domain.OrderedItem, int, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.ListFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *itemRepoMock) Entity() domain.Entity {
	if mock.EntityFunc == nil {
		panic("itemRepoMock.EntityFunc: method is nil but itemRepo.Entity was just called")
	}
	return mock.EntityFunc()
}

func (mock *itemRepoMock) List(ctx context.Context, filter domain.ListFilter) ([]domain.OrderedItem, int, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ListFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *itemRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	EntityFunc func() domain.Entity
	ListFunc   func(ctx context.Context, filter domain.ListFilter) ([]domain.LedgerRecord, int, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.ListFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *recordRepoMock) Entity() domain.Entity {
	if mock.EntityFunc == nil {
		panic("recordRepoMock.EntityFunc: method is nil but recordRepo.Entity was just called")
	}
	return mock.EntityFunc()
}

func (mock *recordRepoMock) List(ctx context.Context, filter domain.ListFilter) ([]domain.LedgerRecord, int, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ListFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *recordRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ categoryLoader = &categoryLoaderMock{}

type categoryLoaderMock struct {
	LoadManyFunc func(ctx context.Context, ids []int64) (map[int64]*domain.OrderedItem, error)

	calls struct {
		LoadMany []struct {
			Ctx context.Context
			IDs []int64
		}
	}
	lockLoadMany sync.RWMutex
}

func (mock *categoryLoaderMock) LoadMany(ctx context.Context, ids []int64) (map[int64]*domain.OrderedItem, error) {
	if mock.LoadManyFunc == nil {
		panic("categoryLoaderMock.LoadManyFunc: method is nil but categoryLoader.LoadMany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{Ctx: ctx, IDs: ids}
	mock.lockLoadMany.Lock()
	mock.calls.LoadMany = append(mock.calls.LoadMany, callInfo)
	mock.lockLoadMany.Unlock()
	return mock.LoadManyFunc(ctx, ids)
}

func (mock *categoryLoaderMock) LoadManyCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockLoadMany.RLock()
	calls := mock.calls.LoadMany
	mock.lockLoadMany.RUnlock()
	return calls
}
