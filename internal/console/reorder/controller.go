// Package reorder drives optimistic drag-and-drop reordering of a sortable
// collection and persists each completed move.
package reorder

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/backoffice/internal/console/listapi"
	"github.com/heartmarshall/backoffice/internal/domain"
)

type persister interface {
	Reorder(ctx context.Context, entity domain.Entity, items []domain.ReorderItem) (int, error)
}

type notifier interface {
	Error(ctx context.Context, msg string)
}

// Controller owns the locally materialized order of one list view.
//
// A completed drag updates the local order immediately and persists it in
// the background. Persistence calls are not ordered against each other and a
// failure is only reported: the local order is kept until the next Load.
type Controller struct {
	entity  domain.Entity
	persist persister
	notify  notifier
	log     *slog.Logger

	mu       sync.Mutex
	items    []listapi.Item
	sortable bool
	state    State

	inflight sync.WaitGroup
}

// New creates a Controller for entity.
func New(entity domain.Entity, persist persister, notify notifier, logger *slog.Logger) *Controller {
	return &Controller{
		entity:  entity,
		persist: persist,
		notify:  notify,
		log:     logger.With("controller", "reorder", "entity", string(entity)),
		state:   Idle{},
	}
}

// Load replaces the local list with a fresh server copy fetched for q and
// resets the drag session.
func (c *Controller) Load(items []listapi.Item, q listapi.Query) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]listapi.Item(nil), items...)
	c.sortable = q.IsSortable()
	c.state = Idle{}
}

// Sortable reports whether rows may be dragged in the loaded view.
func (c *Controller) Sortable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortable
}

// State returns the current drag session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns a snapshot of the local order.
func (c *Controller) Items() []listapi.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]listapi.Item(nil), c.items...)
}

// DragStart begins a gesture on row i. It is ignored when the view is not
// sortable or i is out of range.
func (c *Controller) DragStart(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sortable || !c.inRange(i) {
		return
	}
	c.state = start(i)
}

// DragOver re-targets the gesture to the hovered row j.
func (c *Controller) DragOver(j int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.inRange(j) {
		return
	}
	c.state = over(c.state, j)
}

// DragEnd finishes the gesture whose source row is k. When k differs from the
// tracked index, the row at k moves to the tracked position and the new order
// is persisted. It reports whether a persistence call was issued.
func (c *Controller) DragEnd(ctx context.Context, k int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, to, moved := end(c.state, k)
	c.state = next
	if !moved || !c.sortable || !c.inRange(k) {
		return false
	}

	c.items = move(c.items, k, to)
	payload := ranks(c.items)

	c.inflight.Add(1)
	go c.save(context.WithoutCancel(ctx), payload)
	return true
}

// Wait blocks until every issued persistence call has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) save(ctx context.Context, items []domain.ReorderItem) {
	defer c.inflight.Done()

	updated, err := c.persist.Reorder(ctx, c.entity, items)
	if err != nil {
		c.log.WarnContext(ctx, "reorder failed", slog.Int("items", len(items)), slog.String("error", err.Error()))
		c.notify.Error(ctx, listapi.UserMessage(err))
		return
	}
	c.log.DebugContext(ctx, "reorder saved", slog.Int("updated", updated))
}

// inRange must be called with mu held.
func (c *Controller) inRange(i int) bool {
	return i >= 0 && i < len(c.items)
}

// move returns a new slice with the element at from reinserted at to.
func move[T any](items []T, from, to int) []T {
	out := make([]T, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	elem := items[from]
	out = append(out, elem)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = elem
	return out
}

// ranks numbers the list 1..N in its current order.
func ranks(items []listapi.Item) []domain.ReorderItem {
	out := make([]domain.ReorderItem, len(items))
	for i, it := range items {
		out[i] = domain.ReorderItem{ID: it.ID, Sort: i + 1}
	}
	return out
}
