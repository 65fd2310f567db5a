package bulk

import (
	"context"
	"net/url"
	"sync"

	"github.com/heartmarshall/backoffice/internal/console/listapi"
	"github.com/heartmarshall/backoffice/internal/domain"
)

// Ensure, that clientMock does implement client.
var _ client = &clientMock{}

type clientMock struct {
	// BulkActionFunc mocks the BulkAction method.
	BulkActionFunc func(ctx context.Context, entity domain.Entity, action domain.BulkAction, req listapi.BulkActionRequest, params url.Values) (*listapi.BulkActionResponse, error)

	calls struct {
		BulkAction []struct {
			Ctx    context.Context
			Entity domain.Entity
			Action domain.BulkAction
			Req    listapi.BulkActionRequest
			Params url.Values
		}
	}
	lockBulkAction sync.RWMutex
}

// BulkAction calls BulkActionFunc.
func (mock *clientMock) BulkAction(ctx context.Context, entity domain.Entity, action domain.BulkAction, req listapi.BulkActionRequest, params url.Values) (*listapi.BulkActionResponse, error) {
	if mock.BulkActionFunc == nil {
		panic("clientMock.BulkActionFunc: method is nil but client.BulkAction was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Entity domain.Entity
		Action domain.BulkAction
		Req    listapi.BulkActionRequest
		Params url.Values
	}{
		Ctx:    ctx,
		Entity: entity,
		Action: action,
		Req:    req,
		Params: params,
	}
	mock.lockBulkAction.Lock()
	mock.calls.BulkAction = append(mock.calls.BulkAction, callInfo)
	mock.lockBulkAction.Unlock()
	return mock.BulkActionFunc(ctx, entity, action, req, params)
}

// BulkActionCalls gets all the calls that were made to BulkAction.
func (mock *clientMock) BulkActionCalls() []struct {
	Ctx    context.Context
	Entity domain.Entity
	Action domain.BulkAction
	Req    listapi.BulkActionRequest
	Params url.Values
} {
	var calls []struct {
		Ctx    context.Context
		Entity domain.Entity
		Action domain.BulkAction
		Req    listapi.BulkActionRequest
		Params url.Values
	}
	mock.lockBulkAction.RLock()
	calls = mock.calls.BulkAction
	mock.lockBulkAction.RUnlock()
	return calls
}
