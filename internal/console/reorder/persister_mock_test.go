package reorder

import (
	"context"
	"sync"

	"github.com/heartmarshall/backoffice/internal/domain"
)

// Ensure, that persisterMock does implement persister.
var _ persister = &persisterMock{}

type persisterMock struct {
	// ReorderFunc mocks the Reorder method.
	ReorderFunc func(ctx context.Context, entity domain.Entity, items []domain.ReorderItem) (int, error)

	calls struct {
		Reorder []struct {
			Ctx    context.Context
			Entity domain.Entity
			Items  []domain.ReorderItem
		}
	}
	lockReorder sync.RWMutex
}

// Reorder calls ReorderFunc.
func (mock *persisterMock) Reorder(ctx context.Context, entity domain.Entity, items []domain.ReorderItem) (int, error) {
	if mock.ReorderFunc == nil {
		panic("persisterMock.ReorderFunc: method is nil but persister.Reorder was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Entity domain.Entity
		Items  []domain.ReorderItem
	}{
		Ctx:    ctx,
		Entity: entity,
		Items:  items,
	}
	mock.lockReorder.Lock()
	mock.calls.Reorder = append(mock.calls.Reorder, callInfo)
	mock.lockReorder.Unlock()
	return mock.ReorderFunc(ctx, entity, items)
}

// ReorderCalls gets all the calls that were made to Reorder.
func (mock *persisterMock) ReorderCalls() []struct {
	Ctx    context.Context
	Entity domain.Entity
	Items  []domain.ReorderItem
} {
	var calls []struct {
		Ctx    context.Context
		Entity domain.Entity
		Items  []domain.ReorderItem
	}
	mock.lockReorder.RLock()
	calls = mock.calls.Reorder
	mock.lockReorder.RUnlock()
	return calls
}
