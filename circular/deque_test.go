package circular_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/gammazero/deque"
	"github.com/stretchr/testify/require"

	"github.com/hrissan/deque/circular"
	"github.com/hrissan/deque/dequeerrors"
)

const randomOperations = 100000

type point struct {
	x int
	y int
}

func requireContent[T any](t *testing.T, cb *circular.Buffer[T], expected []T) {
	t.Helper()
	require.Equal(t, len(expected), cb.Len())
	for i, value := range expected {
		require.Equal(t, value, cb.Index(i), "differ in position %d", i)
	}
}

func TestPushPopScenario(t *testing.T) {
	var cb circular.Buffer[int]
	require.True(t, cb.Empty())

	cb.PushBack(1)
	cb.PushBack(2)
	cb.PushFront(0)
	requireContent(t, &cb, []int{0, 1, 2})

	value, err := cb.PopFront()
	require.NoError(t, err)
	require.Equal(t, 0, value)
	requireContent(t, &cb, []int{1, 2})

	front, err := cb.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)
	back, err := cb.Back()
	require.NoError(t, err)
	require.Equal(t, 2, back)

	value, err = cb.PopBack()
	require.NoError(t, err)
	require.Equal(t, 2, value)
	requireContent(t, &cb, []int{1})

	value, err = cb.PopBack()
	require.NoError(t, err)
	require.Equal(t, 1, value)
	require.True(t, cb.Empty())

	_, err = cb.PopBack()
	require.ErrorIs(t, err, dequeerrors.ErrEmptyContainer)
	_, err = cb.PopFront()
	require.ErrorIs(t, err, dequeerrors.ErrEmptyContainer)
	_, err = cb.Front()
	require.ErrorIs(t, err, dequeerrors.ErrEmptyContainer)
	_, err = cb.Back()
	require.ErrorIs(t, err, dequeerrors.ErrEmptyContainer)
	require.PanicsWithValue(t, dequeerrors.ErrEmptyContainer, func() { cb.FrontRef() })
	require.PanicsWithValue(t, dequeerrors.ErrEmptyContainer, func() { cb.BackRef() })
}

func TestIndexBounds(t *testing.T) {
	var cb circular.Buffer[string]
	cb.PushBack("b")
	cb.PushFront("a")

	_, err := cb.At(2)
	require.ErrorIs(t, err, dequeerrors.ErrIndexOutOfRange)
	_, err = cb.At(-1)
	require.ErrorIs(t, err, dequeerrors.ErrIndexOutOfRange)
	require.ErrorIs(t, cb.Set(2, "c"), dequeerrors.ErrIndexOutOfRange)
	require.PanicsWithValue(t, dequeerrors.ErrIndexOutOfRange, func() { cb.Index(2) })
	require.PanicsWithValue(t, dequeerrors.ErrIndexOutOfRange, func() { cb.IndexRef(-1) })

	require.NoError(t, cb.Set(1, "c"))
	*cb.IndexRef(0) = "z"
	value, err := cb.At(1)
	require.NoError(t, err)
	require.Equal(t, "c", value)
	requireContent(t, &cb, []string{"z", "c"})

	*cb.FrontRef() = "front"
	*cb.BackRef() = "back"
	requireContent(t, &cb, []string{"front", "back"})
}

func TestCapacity(t *testing.T) {
	cb := circular.NewBuffer[int](0)
	require.Equal(t, 4, cb.Cap())
	for i := 0; i < 3; i++ {
		cb.PushBack(i)
	}
	require.Equal(t, 4, cb.Cap())
	cb.PushFront(-1) // would leave no free slot
	require.Equal(t, 8, cb.Cap())
	requireContent(t, cb, []int{-1, 0, 1, 2})

	require.Equal(t, 8, circular.NewBuffer[int](4).Cap())
	require.Equal(t, 8, circular.NewBuffer[int](7).Cap())
	require.Equal(t, 16, circular.NewBuffer[int](8).Cap())

	var zero circular.Buffer[int]
	require.Equal(t, 0, zero.Cap())
	zero.VerifyInvariants()
	first, second := zero.Slices()
	require.Empty(t, first)
	require.Empty(t, second)
}

func TestReserveOverflow(t *testing.T) {
	require.PanicsWithValue(t, dequeerrors.ErrCapacityOverflow, func() { circular.NewBuffer[int](math.MaxInt) })
	require.PanicsWithValue(t, dequeerrors.ErrCapacityOverflow, func() { circular.NewBuffer[byte](math.MaxInt/2 + 1) })

	var cb circular.Buffer[int]
	cb.PushBack(1)
	require.PanicsWithValue(t, dequeerrors.ErrCapacityOverflow, func() { cb.Reserve(math.MaxInt) })
	requireContent(t, &cb, []int{1}) // untouched, panic happens before reallocation
}

func TestReserveKeepsOrder(t *testing.T) {
	var cb circular.Buffer[int]
	for i := 0; i < 3; i++ {
		cb.PushFront(i)
	}
	cb.Reserve(100)
	require.Equal(t, 128, cb.Cap())
	requireContent(t, &cb, []int{2, 1, 0})
	capacity := cb.Cap()
	cb.Reserve(10) // never shrinks
	require.Equal(t, capacity, cb.Cap())
}

func TestGrowShrinkTransparent(t *testing.T) {
	var cb circular.Buffer[point]
	var mirror []point
	grows := 0
	for i := 0; i < 100; i++ {
		capacity := cb.Cap()
		p := point{x: i, y: -i}
		if i%3 == 0 {
			cb.PushFront(p)
			mirror = append([]point{p}, mirror...)
		} else {
			cb.PushBack(p)
			mirror = append(mirror, p)
		}
		if cb.Cap() > capacity {
			grows++
		}
		cb.VerifyInvariants()
		requireContent(t, &cb, mirror)
	}
	require.GreaterOrEqual(t, grows, 3)

	shrinks := 0
	for !cb.Empty() {
		capacity := cb.Cap()
		value, err := cb.PopFront()
		require.NoError(t, err)
		require.Equal(t, mirror[0], value)
		mirror = mirror[1:]
		if cb.Cap() < capacity {
			shrinks++
		}
		cb.VerifyInvariants()
		requireContent(t, &cb, mirror)
	}
	require.GreaterOrEqual(t, shrinks, 2)
	require.Equal(t, 4, cb.Cap())
}

func TestNoThrashingAtBoundary(t *testing.T) {
	var cb circular.Buffer[int]
	for i := 0; i < 8; i++ {
		cb.PushBack(i)
	}
	capacity := cb.Cap()
	require.Equal(t, 16, capacity)
	for i := 0; i < 100; i++ {
		_, err := cb.PopBack()
		require.NoError(t, err)
		require.Equal(t, capacity, cb.Cap())
		cb.PushBack(i)
		require.Equal(t, capacity, cb.Cap())
	}
}

func TestEquivalenceToReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	var cb circular.Buffer[point]
	reference := deque.New[point]()
	for i := 0; i < randomOperations; i++ {
		p := point{x: rnd.Intn(1000), y: rnd.Intn(1000)}
		switch rnd.Intn(4) {
		case 0:
			cb.PushBack(p)
			reference.PushBack(p)
		case 1:
			cb.PushFront(p)
			reference.PushFront(p)
		case 2:
			if reference.Len() != 0 {
				value, err := cb.PopBack()
				require.NoError(t, err)
				require.Equal(t, reference.PopBack(), value)
			}
		case 3:
			if reference.Len() != 0 {
				value, err := cb.PopFront()
				require.NoError(t, err)
				require.Equal(t, reference.PopFront(), value)
			}
		}
		require.Equal(t, reference.Len(), cb.Len())
		if i%1000 == 0 || cb.Len() < 8 {
			for j := 0; j < cb.Len(); j++ {
				require.Equal(t, reference.At(j), cb.Index(j), "differ in position %d", j)
			}
		}
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	var cb circular.Buffer[*point]
	for i := 0; i < 20; i++ {
		cb.PushFront(&point{x: i})
	}
	capacity := cb.Cap()
	cb.Clear()
	require.True(t, cb.Empty())
	require.Equal(t, capacity, cb.Cap())
	cb.PushBack(&point{x: 7})
	requireContent(t, &cb, []*point{{x: 7}})
}

func TestCloneIsDeep(t *testing.T) {
	var cb circular.Buffer[int]
	for i := 0; i < 10; i++ {
		cb.PushFront(i)
	}
	clone := cb.Clone()
	require.Equal(t, cb.Cap(), clone.Cap())
	requireContent(t, clone, slices.Collect(cb.Values()))

	require.NoError(t, clone.Set(0, 100))
	clone.PushBack(-1)
	require.Equal(t, 9, cb.Index(0))
	require.Equal(t, 10, cb.Len())

	var assigned circular.Buffer[int]
	assigned.PushBack(42)
	assigned.DeepAssign(&cb)
	requireContent(t, &assigned, slices.Collect(cb.Values()))
	*assigned.FrontRef() = 55
	require.Equal(t, 9, cb.Index(0))
	assigned.DeepAssign(&assigned)
	require.Equal(t, 55, assigned.Index(0))
}

func TestSwap(t *testing.T) {
	var a, b circular.Buffer[int]
	a.PushBack(1)
	a.PushBack(2)
	b.PushFront(3)
	a.Swap(&b)
	requireContent(t, &a, []int{3})
	requireContent(t, &b, []int{1, 2})
}

func TestSequences(t *testing.T) {
	var cb circular.Buffer[int]
	for i := 0; i < 5; i++ {
		cb.PushFront(i)
		cb.PushBack(i * 10)
	}
	expected := []int{4, 3, 2, 1, 0, 0, 10, 20, 30, 40}
	require.Equal(t, expected, slices.Collect(cb.Values()))

	var indexes []int
	for i, value := range cb.All() {
		require.Equal(t, expected[i], value)
		indexes = append(indexes, i)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, indexes)

	var backward []int
	for i, value := range cb.Backward() {
		require.Equal(t, expected[i], value)
		backward = append(backward, value)
	}
	reversed := slices.Clone(expected)
	slices.Reverse(reversed)
	require.Equal(t, reversed, backward)

	var firstTwo []int
	for value := range cb.Values() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, value)
	}
	require.Equal(t, []int{4, 3}, firstTwo)

	s1, s2 := cb.Slices()
	require.Equal(t, expected, append(slices.Clone(s1), s2...))
}
