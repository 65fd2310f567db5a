// Package bulk applies a server-side action to selected records or to every
// record matching the active filter, behind an explicit confirmation step.
package bulk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync/atomic"

	"github.com/heartmarshall/backoffice/internal/console/listapi"
	"github.com/heartmarshall/backoffice/internal/domain"
)

// ErrNotConfirmable is returned by Confirm when the confirmation is disabled
// or another action is still running.
var ErrNotConfirmable = errors.New("bulk action cannot be confirmed")

type client interface {
	BulkAction(ctx context.Context, entity domain.Entity, action domain.BulkAction, req listapi.BulkActionRequest, params url.Values) (*listapi.BulkActionResponse, error)
}

type selectionStore interface {
	Selected() []int64
	Reset()
}

type notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Refresher reloads the list view after a successful action.
type Refresher interface {
	Refresh(ctx context.Context, q listapi.Query) error
}

// RefreshFunc adapts a function to Refresher.
type RefreshFunc func(ctx context.Context, q listapi.Query) error

func (f RefreshFunc) Refresh(ctx context.Context, q listapi.Query) error { return f(ctx, q) }

// Confirmation describes what Confirm will do. Exactly one mode is offered:
// Selected when the selection is non-empty, otherwise All.
type Confirmation struct {
	Mode    domain.BulkMode
	IDs     []int64 // Selected mode only
	Query   listapi.Query
	Count   int
	Enabled bool
}

// Controller runs one named action for one entity.
type Controller struct {
	entity  domain.Entity
	action  domain.BulkAction
	client  client
	store   selectionStore
	notify  notifier
	refresh Refresher
	log     *slog.Logger

	loading atomic.Bool
}

// New creates a Controller.
func New(entity domain.Entity, action domain.BulkAction, c client, store selectionStore, n notifier, r Refresher, logger *slog.Logger) *Controller {
	return &Controller{
		entity:  entity,
		action:  action,
		client:  c,
		store:   store,
		notify:  n,
		refresh: r,
		log:     logger.With("controller", "bulk", "entity", string(entity), "action", string(action)),
	}
}

// Loading reports whether an action is in flight.
func (c *Controller) Loading() bool {
	return c.loading.Load()
}

// Prepare builds the confirmation for the current view. matching is the
// number of records the query matches on the server.
func (c *Controller) Prepare(q listapi.Query, matching int) Confirmation {
	ids := c.store.Selected()
	loading := c.Loading()

	if len(ids) > 0 {
		return Confirmation{
			Mode:    domain.BulkModeSelected,
			IDs:     ids,
			Query:   q,
			Count:   len(ids),
			Enabled: !loading,
		}
	}
	return Confirmation{
		Mode:    domain.BulkModeAll,
		Query:   q,
		Count:   matching,
		Enabled: !loading && matching > 0,
	}
}

// Confirm executes a prepared action. On success the selection is reset and
// the view is refreshed without pagination; on failure the selection is kept
// and the server message is shown. Every failure is also returned.
func (c *Controller) Confirm(ctx context.Context, conf Confirmation) (*listapi.BulkActionResponse, error) {
	if !conf.Enabled || (conf.Mode == domain.BulkModeSelected && len(conf.IDs) == 0) {
		return nil, ErrNotConfirmable
	}
	if !c.loading.CompareAndSwap(false, true) {
		return nil, ErrNotConfirmable
	}
	defer c.loading.Store(false)

	req := listapi.BulkActionRequest{Mode: conf.Mode}
	var params url.Values
	if conf.Mode == domain.BulkModeSelected {
		req.IDs = conf.IDs
	} else {
		params = conf.Query.Filter()
	}

	resp, err := c.client.BulkAction(ctx, c.entity, c.action, req, params)
	if err != nil {
		c.log.WarnContext(ctx, "bulk action failed",
			slog.String("mode", conf.Mode.String()),
			slog.Int("count", conf.Count),
			slog.String("error", err.Error()),
		)
		c.notify.Error(ctx, listapi.UserMessage(err))
		return nil, err
	}

	c.store.Reset()

	msg := resp.Message
	if msg == "" {
		msg = fmt.Sprintf("%d %s updated", resp.Data.Affected, c.entity)
	}
	c.notify.Success(ctx, msg)

	c.log.InfoContext(ctx, "bulk action applied",
		slog.String("mode", conf.Mode.String()),
		slog.Int("affected", resp.Data.Affected),
	)

	if err := c.refresh.Refresh(ctx, conf.Query.WithoutPagination()); err != nil {
		c.notify.Error(ctx, listapi.UserMessage(err))
		return resp, fmt.Errorf("refresh %s: %w", c.entity, err)
	}
	return resp, nil
}
