// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package circular

import (
	"iter"
	"math"

	"github.com/hrissan/deque/dequeerrors"
)

// Double-ended queue on a circular buffer.
// Capacity is always power of 2, so slot of logical index i is (head + i) & mask.
// At least one slot is always free, so head == tail means empty, never full.
// Buffer doubles when push would fill the last free slot,
// and halves when pop leaves it at most 1/4 utilized, so alternating
// push/pop at the capacity boundary does not reallocate every time.

const baselineCapacity = 4 // also minimum, we never shrink below

const healthChecks = false

type Buffer[T any] struct {
	elements []T // length == capacity == 2^x, or 0 before first push
	head     int // slot of first element
	tail     int // slot after last element, always free
	size     int

	generation uint64 // incremented on every structural mutation, iterators remember it
}

// capacity is number of elements which can be pushed without reallocation
func NewBuffer[T any](capacity int) *Buffer[T] {
	s := &Buffer[T]{}
	s.Reserve(capacity)
	return s
}

func (s *Buffer[T]) Len() int {
	return s.size
}

func (s *Buffer[T]) Cap() int {
	return len(s.elements)
}

func (s *Buffer[T]) Empty() bool {
	return s.size == 0
}

func (s *Buffer[T]) mask() int { return len(s.elements) - 1 }

func (s *Buffer[T]) slot(pos int) int { return (s.head + pos) & s.mask() }

// Two parts of circular buffer
func (s *Buffer[T]) Slices() ([]T, []T) {
	if s.size == 0 {
		return nil, nil
	}
	if s.head < s.tail {
		return s.elements[s.head:s.tail], nil
	}
	return s.elements[s.head:], s.elements[:s.tail]
}

// old elements are viewed through Slices() before any field is changed
func (s *Buffer[T]) reallocate(newCapacity int) {
	if newCapacity <= s.size || newCapacity&(newCapacity-1) != 0 {
		panic(dequeerrors.ErrInvariantViolated)
	}
	s1, s2 := s.Slices()
	elements := make([]T, newCapacity) // size will forever be equal to capacity
	off := copy(elements, s1)
	off += copy(elements[off:], s2)
	if off != s.size {
		panic(dequeerrors.ErrInvariantViolated)
	}
	s.elements = elements
	s.head = 0
	s.tail = off
	s.generation++
}

// After Reserve, n elements fit without reallocation.
// Pops may still shrink buffer later.
func (s *Buffer[T]) Reserve(n int) {
	capacity := max(baselineCapacity, len(s.elements))
	for capacity <= n { // one slot must stay free
		if capacity > math.MaxInt/2 {
			panic(dequeerrors.ErrCapacityOverflow)
		}
		capacity *= 2
	}
	if capacity > len(s.elements) {
		s.reallocate(capacity)
	}
}

func (s *Buffer[T]) growIfFull() {
	if s.size+1 >= len(s.elements) {
		s.reallocate(max(baselineCapacity, len(s.elements)*2))
	}
}

func (s *Buffer[T]) shrinkIfSparse() {
	capacity := len(s.elements)
	if s.size*4 <= capacity && capacity/2 >= baselineCapacity {
		s.reallocate(capacity / 2)
	}
}

func (s *Buffer[T]) PushBack(element T) {
	s.growIfFull()
	s.elements[s.tail] = element
	s.tail = (s.tail + 1) & s.mask()
	s.size++
	s.generation++
	s.checkInvariants()
}

func (s *Buffer[T]) PushFront(element T) {
	s.growIfFull()
	s.head = (s.head - 1) & s.mask()
	s.elements[s.head] = element
	s.size++
	s.generation++
	s.checkInvariants()
}

func (s *Buffer[T]) PopBack() (T, error) {
	var empty T
	if s.size == 0 {
		return empty, dequeerrors.ErrEmptyContainer
	}
	s.tail = (s.tail - 1) & s.mask()
	element := s.elements[s.tail]
	s.elements[s.tail] = empty // do not have dangling references in unused parts of buffer
	s.size--
	s.generation++
	s.shrinkIfSparse()
	s.checkInvariants()
	return element, nil
}

func (s *Buffer[T]) PopFront() (T, error) {
	var empty T
	if s.size == 0 {
		return empty, dequeerrors.ErrEmptyContainer
	}
	element := s.elements[s.head]
	s.elements[s.head] = empty
	s.head = (s.head + 1) & s.mask()
	s.size--
	s.generation++
	s.shrinkIfSparse()
	s.checkInvariants()
	return element, nil
}

func (s *Buffer[T]) Front() (T, error) {
	if s.size == 0 {
		var empty T
		return empty, dequeerrors.ErrEmptyContainer
	}
	return s.elements[s.head], nil
}

func (s *Buffer[T]) FrontRef() *T {
	if s.size == 0 {
		panic(dequeerrors.ErrEmptyContainer)
	}
	return &s.elements[s.head]
}

func (s *Buffer[T]) Back() (T, error) {
	if s.size == 0 {
		var empty T
		return empty, dequeerrors.ErrEmptyContainer
	}
	return s.elements[(s.tail-1)&s.mask()], nil
}

func (s *Buffer[T]) BackRef() *T {
	if s.size == 0 {
		panic(dequeerrors.ErrEmptyContainer)
	}
	return &s.elements[(s.tail-1)&s.mask()]
}

func (s *Buffer[T]) Index(pos int) T {
	return *s.IndexRef(pos)
}

func (s *Buffer[T]) IndexRef(pos int) *T {
	if pos < 0 || pos >= s.size {
		panic(dequeerrors.ErrIndexOutOfRange)
	}
	return &s.elements[s.slot(pos)]
}

func (s *Buffer[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= s.size {
		var empty T
		return empty, dequeerrors.ErrIndexOutOfRange
	}
	return s.elements[s.slot(pos)], nil
}

func (s *Buffer[T]) Set(pos int, element T) error {
	if pos < 0 || pos >= s.size {
		return dequeerrors.ErrIndexOutOfRange
	}
	s.elements[s.slot(pos)] = element
	return nil
}

// Capacity is kept
func (s *Buffer[T]) Clear() {
	var empty T
	s1, s2 := s.Slices()
	for i := range s1 {
		s1[i] = empty
	}
	for i := range s2 {
		s2[i] = empty
	}
	s.head = 0
	s.tail = 0
	s.size = 0
	s.generation++
}

func (s *Buffer[T]) Clone() *Buffer[T] {
	return &Buffer[T]{
		elements: append([]T(nil), s.elements...),
		head:     s.head,
		tail:     s.tail,
		size:     s.size,
	}
}

// Iterators into s are invalidated, iterators into other are not.
func (s *Buffer[T]) DeepAssign(other *Buffer[T]) {
	if s == other {
		return
	}
	*s = Buffer[T]{
		elements:   append([]T(nil), other.elements...),
		head:       other.head,
		tail:       other.tail,
		size:       other.size,
		generation: s.generation + 1,
	}
}

// Iterators into both buffers are invalidated.
func (s *Buffer[T]) Swap(other *Buffer[T]) {
	s.elements, other.elements = other.elements, s.elements
	s.head, other.head = other.head, s.head
	s.tail, other.tail = other.tail, s.tail
	s.size, other.size = other.size, s.size
	generation := max(s.generation, other.generation) + 1
	s.generation = generation
	other.generation = generation
}

func (s *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(i, s.elements[s.slot(i)]) {
				return
			}
		}
	}
}

func (s *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.size; i++ {
			if !yield(s.elements[s.slot(i)]) {
				return
			}
		}
	}
}

// Backward iterates from back to front, with logical indexes.
func (s *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.size - 1; i >= 0 && i < s.size; i-- {
			if !yield(i, s.elements[s.slot(i)]) {
				return
			}
		}
	}
}

func (s *Buffer[T]) checkInvariants() {
	if healthChecks {
		s.verifyInvariants()
	}
}

func (s *Buffer[T]) verifyInvariants() {
	capacity := len(s.elements)
	if capacity == 0 {
		if s.size != 0 || s.head != 0 || s.tail != 0 {
			panic(dequeerrors.ErrInvariantViolated)
		}
		return
	}
	if capacity&(capacity-1) != 0 || s.size >= capacity {
		panic(dequeerrors.ErrInvariantViolated)
	}
	if (s.head+s.size)&s.mask() != s.tail {
		panic(dequeerrors.ErrInvariantViolated)
	}
}
