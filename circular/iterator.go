// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package circular

import (
	"github.com/hrissan/deque/algo"
	"github.com/hrissan/deque/dequeerrors"
)

// Iterator is logical offset from head, resolved to slot (head + offset) & mask
// only when dereferenced, so it never points into storage freed by reallocation.
// Arithmetic clamps instead of wrapping: going before begin() snaps to BeforeBegin,
// going further than one past end() snaps to PastEnd, both are not dereferenceable.
// end() itself is InRange with offset == Len().
// Any push/pop invalidates all iterators, dereferencing them panics.

type PositionKind uint8

const (
	BeforeBegin PositionKind = iota
	InRange
	PastEnd
)

type Position struct {
	Kind   PositionKind
	Offset int // only for InRange, in [0, Len()]
}

type Iterator[T any] struct {
	buf        *Buffer[T]
	kind       PositionKind
	offset     int
	generation uint64
}

func (s *Buffer[T]) iteratorAt(offset int) Iterator[T] {
	return Iterator[T]{buf: s, kind: InRange, offset: offset, generation: s.generation}
}

func (s *Buffer[T]) Begin() Iterator[T] { return s.iteratorAt(0) }
func (s *Buffer[T]) End() Iterator[T]   { return s.iteratorAt(s.size) }

func (s *Buffer[T]) CBegin() ConstIterator[T] { return s.Begin().Const() }
func (s *Buffer[T]) CEnd() ConstIterator[T]   { return s.End().Const() }

func (s *Buffer[T]) RBegin() algo.ReverseIterator[T, Iterator[T]] {
	return algo.MakeReverse[T](s.End())
}

func (s *Buffer[T]) REnd() algo.ReverseIterator[T, Iterator[T]] {
	return algo.MakeReverse[T](s.Begin())
}

func (s *Buffer[T]) CRBegin() algo.ConstReverseIterator[T, ConstIterator[T]] {
	return algo.MakeConstReverse[T](s.CEnd())
}

func (s *Buffer[T]) CREnd() algo.ConstReverseIterator[T, ConstIterator[T]] {
	return algo.MakeConstReverse[T](s.CBegin())
}

func (it Iterator[T]) Position() Position {
	if it.kind != InRange {
		return Position{Kind: it.kind}
	}
	return Position{Kind: InRange, Offset: it.offset}
}

// -1 for BeforeBegin, Len()+1 for PastEnd, so distances stay small
func (it Iterator[T]) logicalPosition() int {
	if it.buf == nil {
		panic(dequeerrors.ErrIteratorUnbound)
	}
	switch it.kind {
	case BeforeBegin:
		return -1
	case PastEnd:
		return it.buf.size + 1
	}
	return it.offset
}

// Valid reports if no structural mutation happened since iterator was created.
func (it Iterator[T]) Valid() bool {
	return it.buf != nil && it.generation == it.buf.generation
}

func (it Iterator[T]) Add(n int) Iterator[T] {
	current := it.logicalPosition() // in [-1, size+1], so expressions below never overflow
	switch {
	case n < -current:
		it.kind = BeforeBegin
		it.offset = 0
	case n > it.buf.size-current:
		it.kind = PastEnd
		it.offset = 0
	default:
		it.kind = InRange
		it.offset = current + n
	}
	return it
}

func (it *Iterator[T]) Advance(n int) { *it = it.Add(n) }
func (it *Iterator[T]) Next()         { it.Advance(1) }
func (it *Iterator[T]) Prev()         { it.Advance(-1) }

func (it Iterator[T]) mustSameBuffer(other Iterator[T]) {
	if it.buf != other.buf {
		panic(dequeerrors.ErrIteratorMismatch)
	}
}

func (it Iterator[T]) Sub(other Iterator[T]) int {
	it.mustSameBuffer(other)
	return it.logicalPosition() - other.logicalPosition()
}

// Iterators of different buffers are never equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.buf == other.buf && it.kind == other.kind && it.offset == other.offset
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	it.mustSameBuffer(other)
	return it.logicalPosition() < other.logicalPosition()
}

func (it Iterator[T]) LessEq(other Iterator[T]) bool    { return !other.Less(it) }
func (it Iterator[T]) Greater(other Iterator[T]) bool   { return other.Less(it) }
func (it Iterator[T]) GreaterEq(other Iterator[T]) bool { return !it.Less(other) }

func (it Iterator[T]) Ref() *T {
	if it.buf == nil {
		panic(dequeerrors.ErrIteratorUnbound)
	}
	if it.generation != it.buf.generation {
		panic(dequeerrors.ErrIteratorInvalidated)
	}
	if it.kind != InRange || it.offset >= it.buf.size {
		panic(dequeerrors.ErrSentinelDereference)
	}
	return &it.buf.elements[it.buf.slot(it.offset)]
}

func (it Iterator[T]) Get() T { return *it.Ref() }

func (it Iterator[T]) Set(value T) { *it.Ref() = value }

// At is it.Add(n).Get()
func (it Iterator[T]) At(n int) T { return it.Add(n).Get() }

func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

// Read-only view of Iterator, has no Set and Ref.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (c ConstIterator[T]) Position() Position { return c.it.Position() }
func (c ConstIterator[T]) Valid() bool        { return c.it.Valid() }

func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Add(n)} }

func (c *ConstIterator[T]) Advance(n int) { c.it.Advance(n) }
func (c *ConstIterator[T]) Next()         { c.it.Next() }
func (c *ConstIterator[T]) Prev()         { c.it.Prev() }

func (c ConstIterator[T]) Sub(other ConstIterator[T]) int        { return c.it.Sub(other.it) }
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool     { return c.it.Equal(other.it) }
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool      { return c.it.Less(other.it) }
func (c ConstIterator[T]) LessEq(other ConstIterator[T]) bool    { return c.it.LessEq(other.it) }
func (c ConstIterator[T]) Greater(other ConstIterator[T]) bool   { return c.it.Greater(other.it) }
func (c ConstIterator[T]) GreaterEq(other ConstIterator[T]) bool { return c.it.GreaterEq(other.it) }

func (c ConstIterator[T]) Get() T     { return c.it.Get() }
func (c ConstIterator[T]) At(n int) T { return c.it.At(n) }
