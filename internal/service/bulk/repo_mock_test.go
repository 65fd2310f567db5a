package bulk

import (
	"context"
	"sync"

	"github.com/heartmarshall/backoffice/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	EntityFunc             func() domain.Entity
	TransitionByIDsFunc    func(ctx context.Context, ids []int64, tr domain.Transition) (int, error)
	TransitionByFilterFunc func(ctx context.Context, filter domain.ListFilter, tr domain.Transition) (int, error)

	calls struct {
		TransitionByIDs []struct {
			Ctx context.Context
			IDs []int64
			Tr  domain.Transition
		}
		TransitionByFilter []struct {
			Ctx    context.Context
			Filter domain.ListFilter
			Tr     domain.Transition
		}
	}
	lockTransitionByIDs    sync.RWMutex
	lockTransitionByFilter sync.RWMutex
}

func (mock *ledgerRepoMock) Entity() domain.Entity {
	if mock.EntityFunc == nil {
		panic("ledgerRepoMock.EntityFunc: method is nil but ledgerRepo.Entity was just called")
	}
	return mock.EntityFunc()
}

func (mock *ledgerRepoMock) TransitionByIDs(ctx context.Context, ids []int64, tr domain.Transition) (int, error) {
	if mock.TransitionByIDsFunc == nil {
		panic("ledgerRepoMock.TransitionByIDsFunc: method is nil but ledgerRepo.TransitionByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
		Tr  domain.Transition
	}{Ctx: ctx, IDs: ids, Tr: tr}
	mock.lockTransitionByIDs.Lock()
	mock.calls.TransitionByIDs = append(mock.calls.TransitionByIDs, callInfo)
	mock.lockTransitionByIDs.Unlock()
	return mock.TransitionByIDsFunc(ctx, ids, tr)
}

func (mock *ledgerRepoMock) TransitionByIDsCalls() []struct {
	Ctx context.Context
	IDs []int64
	Tr  domain.Transition
} {
	mock.lockTransitionByIDs.RLock()
	calls := mock.calls.TransitionByIDs
	mock.lockTransitionByIDs.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) TransitionByFilter(ctx context.Context, filter domain.ListFilter, tr domain.Transition) (int, error) {
	if mock.TransitionByFilterFunc == nil {
		panic("ledgerRepoMock.TransitionByFilterFunc: method is nil but ledgerRepo.TransitionByFilter was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ListFilter
		Tr     domain.Transition
	}{Ctx: ctx, Filter: filter, Tr: tr}
	mock.lockTransitionByFilter.Lock()
	mock.calls.TransitionByFilter = append(mock.calls.TransitionByFilter, callInfo)
	mock.lockTransitionByFilter.Unlock()
	return mock.TransitionByFilterFunc(ctx, filter, tr)
}

func (mock *ledgerRepoMock) TransitionByFilterCalls() []struct {
	Ctx    context.Context
	Filter domain.ListFilter
	Tr     domain.Transition
} {
	mock.lockTransitionByFilter.RLock()
	calls := mock.calls.TransitionByFilter
	mock.lockTransitionByFilter.RUnlock()
	return calls
}
