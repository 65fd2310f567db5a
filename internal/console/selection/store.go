package selection

import (
	"errors"
	"sync"

	"github.com/heartmarshall/backoffice/internal/console/listapi"
)

// ErrIneligible is returned when toggling on a record that may not be
// selected.
var ErrIneligible = errors.New("record is not eligible for selection")

// Store holds the selection of one list view and derives per-row and
// per-page checkbox state from it. It is safe for concurrent use.
type Store struct {
	eligible func(listapi.Record) bool

	mu    sync.Mutex
	state State
}

// NewStore creates an empty Store. A nil eligible predicate uses the record's
// own Eligible flag.
func NewStore(maxLimit int, eligible func(listapi.Record) bool) *Store {
	if eligible == nil {
		eligible = func(r listapi.Record) bool { return r.Eligible }
	}
	return &Store{
		eligible: eligible,
		state:    NewState(maxLimit),
	}
}

// Dispatch applies a to the selection.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.state, a)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// Toggle flips the checkbox of row. Unchecking always succeeds; checking
// fails without dispatching when the row is disabled.
func (s *Store) Toggle(row listapi.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Has(row.ID) {
		s.state, _ = Reduce(s.state, Remove(row.ID))
		return nil
	}
	if !s.eligible(row) {
		return ErrIneligible
	}
	if s.state.Full() {
		return ErrSelectionLimit
	}

	next, err := Reduce(s.state, Add(row.ID))
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// ToggleAll flips the page-level checkbox: when every eligible row of page is
// selected they are removed, otherwise the selection becomes exactly the
// eligible rows of page.
func (s *Store) ToggleAll(page []listapi.Record) error {
	ids := s.eligibleIDs(page)

	s.mu.Lock()
	defer s.mu.Unlock()

	if checkAll(s.state, ids) {
		s.state, _ = Reduce(s.state, Remove(ids...))
		return nil
	}

	next, err := Reduce(s.state, Replace(ids...))
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// CheckAll reports whether the page checkbox is checked: page has eligible
// rows and all of them are selected.
func (s *Store) CheckAll(page []listapi.Record) bool {
	ids := s.eligibleIDs(page)

	s.mu.Lock()
	defer s.mu.Unlock()
	return checkAll(s.state, ids)
}

// Disabled reports whether the checkbox of row is disabled: the row is
// ineligible, or the selection is full and the row is not part of it.
func (s *Store) Disabled(row listapi.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.eligible(row) {
		return true
	}
	return s.state.Full() && !s.state.Has(row.ID)
}

// CanSelect reports whether row may be added to the selection.
func (s *Store) CanSelect(row listapi.Record) bool {
	return !s.Disabled(row)
}

func (s *Store) Has(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Has(id)
}

// Selected returns the selected IDs in ascending order.
func (s *Store) Selected() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IDs()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Len()
}

// MaxLimit returns the selection cap.
func (s *Store) MaxLimit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.MaxLimit
}

// Reset clears the selection.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, _ = Reduce(s.state, Replace())
}

func (s *Store) eligibleIDs(page []listapi.Record) []int64 {
	ids := make([]int64, 0, len(page))
	for _, r := range page {
		if s.eligible(r) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func checkAll(st State, ids []int64) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !st.Has(id) {
			return false
		}
	}
	return true
}
