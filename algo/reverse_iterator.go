// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package algo

// Reverse iterator refers to the element one before its base,
// so reverse of end() refers to the last element, reverse of begin() is reverse end.
// Arithmetic and ordering are inverted relative to base.

type ReverseIterator[T any, It Mutable[T, It]] struct {
	base It
}

func MakeReverse[T any, It Mutable[T, It]](base It) ReverseIterator[T, It] {
	return ReverseIterator[T, It]{base: base}
}

func (r ReverseIterator[T, It]) Base() It { return r.base }

func (r ReverseIterator[T, It]) Add(n int) ReverseIterator[T, It] {
	return ReverseIterator[T, It]{base: r.base.Add(-n)}
}

func (r *ReverseIterator[T, It]) Advance(n int) { r.base = r.base.Add(-n) }
func (r *ReverseIterator[T, It]) Next()         { r.Advance(1) }
func (r *ReverseIterator[T, It]) Prev()         { r.Advance(-1) }

func (r ReverseIterator[T, It]) Sub(other ReverseIterator[T, It]) int {
	return other.base.Sub(r.base)
}

func (r ReverseIterator[T, It]) Equal(other ReverseIterator[T, It]) bool {
	return r.base.Equal(other.base)
}

func (r ReverseIterator[T, It]) Less(other ReverseIterator[T, It]) bool {
	return other.base.Less(r.base)
}

func (r ReverseIterator[T, It]) LessEq(other ReverseIterator[T, It]) bool {
	return !other.Less(r)
}

func (r ReverseIterator[T, It]) Greater(other ReverseIterator[T, It]) bool {
	return other.Less(r)
}

func (r ReverseIterator[T, It]) GreaterEq(other ReverseIterator[T, It]) bool {
	return !r.Less(other)
}

func (r ReverseIterator[T, It]) Get() T { return r.base.Add(-1).Get() }

func (r ReverseIterator[T, It]) Set(value T) { r.base.Add(-1).Set(value) }

// At is r.Add(n).Get()
func (r ReverseIterator[T, It]) At(n int) T { return r.Add(n).Get() }

// Same as ReverseIterator, but without Set, for read-only base iterators.
type ConstReverseIterator[T any, It RandomAccess[T, It]] struct {
	base It
}

func MakeConstReverse[T any, It RandomAccess[T, It]](base It) ConstReverseIterator[T, It] {
	return ConstReverseIterator[T, It]{base: base}
}

func (r ConstReverseIterator[T, It]) Base() It { return r.base }

func (r ConstReverseIterator[T, It]) Add(n int) ConstReverseIterator[T, It] {
	return ConstReverseIterator[T, It]{base: r.base.Add(-n)}
}

func (r *ConstReverseIterator[T, It]) Advance(n int) { r.base = r.base.Add(-n) }
func (r *ConstReverseIterator[T, It]) Next()         { r.Advance(1) }
func (r *ConstReverseIterator[T, It]) Prev()         { r.Advance(-1) }

func (r ConstReverseIterator[T, It]) Sub(other ConstReverseIterator[T, It]) int {
	return other.base.Sub(r.base)
}

func (r ConstReverseIterator[T, It]) Equal(other ConstReverseIterator[T, It]) bool {
	return r.base.Equal(other.base)
}

func (r ConstReverseIterator[T, It]) Less(other ConstReverseIterator[T, It]) bool {
	return other.base.Less(r.base)
}

func (r ConstReverseIterator[T, It]) LessEq(other ConstReverseIterator[T, It]) bool {
	return !other.Less(r)
}

func (r ConstReverseIterator[T, It]) Greater(other ConstReverseIterator[T, It]) bool {
	return other.Less(r)
}

func (r ConstReverseIterator[T, It]) GreaterEq(other ConstReverseIterator[T, It]) bool {
	return !r.Less(other)
}

func (r ConstReverseIterator[T, It]) Get() T { return r.base.Add(-1).Get() }

func (r ConstReverseIterator[T, It]) At(n int) T { return r.Add(n).Get() }
