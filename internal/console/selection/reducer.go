// Package selection tracks the records picked for a bulk action.
package selection

import (
	"errors"
	"fmt"
	"slices"
)

// ErrSelectionLimit is returned when an action would grow the selection past
// its limit. The state is left unchanged.
var ErrSelectionLimit = errors.New("selection limit reached")

// Kind names a reducer action.
type Kind int

const (
	KindAdd Kind = iota + 1
	KindRemove
	KindReplace
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "ADD"
	case KindRemove:
		return "REMOVE"
	case KindReplace:
		return "REPLACE"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Action is a single change to the selection.
type Action struct {
	Kind Kind
	IDs  []int64
}

func Add(ids ...int64) Action     { return Action{Kind: KindAdd, IDs: ids} }
func Remove(ids ...int64) Action  { return Action{Kind: KindRemove, IDs: ids} }
func Replace(ids ...int64) Action { return Action{Kind: KindReplace, IDs: ids} }

// State is an immutable set of selected IDs bounded by MaxLimit. A
// non-positive MaxLimit means no limit.
type State struct {
	MaxLimit int
	ids      map[int64]struct{}
}

// NewState returns an empty selection.
func NewState(maxLimit int) State {
	return State{MaxLimit: maxLimit}
}

func (s State) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s State) Len() int { return len(s.ids) }

// Full reports whether no further ID can be added.
func (s State) Full() bool {
	return s.MaxLimit > 0 && len(s.ids) >= s.MaxLimit
}

// IDs returns the selected IDs in ascending order.
func (s State) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Reduce applies a to s. ADD and REPLACE fail with ErrSelectionLimit when the
// result would exceed MaxLimit; REMOVE always succeeds. An unknown action kind
// panics.
func Reduce(s State, a Action) (State, error) {
	var next map[int64]struct{}

	switch a.Kind {
	case KindAdd:
		next = make(map[int64]struct{}, len(s.ids)+len(a.IDs))
		for id := range s.ids {
			next[id] = struct{}{}
		}
		for _, id := range a.IDs {
			next[id] = struct{}{}
		}
	case KindRemove:
		next = make(map[int64]struct{}, len(s.ids))
		for id := range s.ids {
			next[id] = struct{}{}
		}
		for _, id := range a.IDs {
			delete(next, id)
		}
		return State{MaxLimit: s.MaxLimit, ids: next}, nil
	case KindReplace:
		next = make(map[int64]struct{}, len(a.IDs))
		for _, id := range a.IDs {
			next[id] = struct{}{}
		}
	default:
		panic(fmt.Sprintf("selection: unknown action kind %v", a.Kind))
	}

	if s.MaxLimit > 0 && len(next) > s.MaxLimit {
		return s, fmt.Errorf("%v of %d ids: %w", a.Kind, len(a.IDs), ErrSelectionLimit)
	}
	return State{MaxLimit: s.MaxLimit, ids: next}, nil
}
