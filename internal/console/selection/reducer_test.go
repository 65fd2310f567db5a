package selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReduce(t *testing.T, s State, a Action) State {
	t.Helper()
	next, err := Reduce(s, a)
	require.NoError(t, err)
	return next
}

func TestReduce_Add(t *testing.T) {
	t.Parallel()

	s := mustReduce(t, NewState(0), Add(3, 1, 3))
	s = mustReduce(t, s, Add(2))

	assert.Equal(t, []int64{1, 2, 3}, s.IDs())
}

func TestReduce_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	once := mustReduce(t, NewState(5), Add(9))
	twice := mustReduce(t, once, Add(9))

	assert.Equal(t, once.IDs(), twice.IDs())
	assert.Equal(t, 1, twice.Len())
}

func TestReduce_Remove(t *testing.T) {
	t.Parallel()

	s := mustReduce(t, NewState(0), Add(1, 2, 3))
	s = mustReduce(t, s, Remove(2, 42))

	assert.Equal(t, []int64{1, 3}, s.IDs())
}

func TestReduce_Replace(t *testing.T) {
	t.Parallel()

	s := mustReduce(t, NewState(0), Add(1, 2))
	s = mustReduce(t, s, Replace(7, 8))
	assert.Equal(t, []int64{7, 8}, s.IDs())

	s = mustReduce(t, s, Replace())
	assert.Zero(t, s.Len())
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	before := mustReduce(t, NewState(0), Add(1))
	_ = mustReduce(t, before, Add(2))
	_ = mustReduce(t, before, Remove(1))

	assert.Equal(t, []int64{1}, before.IDs())
}

func TestReduce_RejectsOverflow(t *testing.T) {
	t.Parallel()

	s := mustReduce(t, NewState(2), Add(5, 7))

	for _, a := range []Action{Add(9), Replace(1, 2, 3)} {
		next, err := Reduce(s, a)
		assert.ErrorIs(t, err, ErrSelectionLimit, a.Kind.String())
		assert.Equal(t, []int64{5, 7}, next.IDs())
	}

	// Re-adding a member does not grow the set.
	next, err := Reduce(s, Add(7))
	require.NoError(t, err)
	assert.Equal(t, 2, next.Len())
}

func TestReduce_RemoveIgnoresLimit(t *testing.T) {
	t.Parallel()

	s := mustReduce(t, NewState(1), Add(5))
	s = mustReduce(t, s, Remove(5))

	assert.Zero(t, s.Len())
}

func TestReduce_UnknownKindPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "selection: unknown action kind Kind(0)", func() {
		_, _ = Reduce(NewState(0), Action{IDs: []int64{1}})
	})
	assert.Panics(t, func() {
		_, _ = Reduce(NewState(0), Action{Kind: Kind(99)})
	})
}

func TestReduce_CapHoldsForRandomAdds(t *testing.T) {
	t.Parallel()

	const maxLimit = 10
	rng := rand.New(rand.NewSource(42))
	s := NewState(maxLimit)

	for i := 0; i < 500; i++ {
		batch := make([]int64, rng.Intn(4)+1)
		for j := range batch {
			batch[j] = int64(rng.Intn(40))
		}
		var a Action
		switch rng.Intn(3) {
		case 0:
			a = Add(batch...)
		case 1:
			a = Remove(batch...)
		default:
			a = Replace(batch...)
		}
		s, _ = Reduce(s, a)
		require.LessOrEqual(t, s.Len(), maxLimit)
	}
}
