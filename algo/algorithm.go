// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package algo

// All algorithms work on half-open range [first, last).
// Type of elements cannot be inferred from iterator methods, so call as Reverse[int](first, last).

func Distance[T any, It RandomAccess[T, It]](first It, last It) int {
	return last.Sub(first)
}

// Reverse reverses range in place.
func Reverse[T any, It Mutable[T, It]](first It, last It) {
	for first.Less(last) {
		last = last.Add(-1)
		if !first.Less(last) {
			return
		}
		a, b := first.Get(), last.Get()
		first.Set(b)
		last.Set(a)
		first = first.Add(1)
	}
}

// Copy copies at most len(dst) elements, returns number of elements copied.
func Copy[T any, It RandomAccess[T, It]](first It, last It, dst []T) int {
	n := 0
	for ; n < len(dst) && first.Less(last); n++ {
		dst[n] = first.Get()
		first = first.Add(1)
	}
	return n
}

// CopyTo writes range to dFirst, dFirst must refer to enough elements.
// Returns iterator past the last element written.
func CopyTo[T any, In RandomAccess[T, In], Out Mutable[T, Out]](first In, last In, dFirst Out) Out {
	for first.Less(last) {
		dFirst.Set(first.Get())
		first = first.Add(1)
		dFirst = dFirst.Add(1)
	}
	return dFirst
}

// Collect copies range into new slice, visiting every step-th element.
func Collect[T any, It RandomAccess[T, It]](first It, last It, step int) []T {
	if step <= 0 {
		panic("step must be positive")
	}
	var result []T
	for ; first.Less(last); first = first.Add(step) {
		result = append(result, first.Get())
	}
	return result
}

// Find returns first iterator in range referring to element for which pred is true, or last.
func Find[T any, It RandomAccess[T, It]](first It, last It, pred func(T) bool) It {
	for ; first.Less(last); first = first.Add(1) {
		if pred(first.Get()) {
			return first
		}
	}
	return last
}

// Equal compares range with the range of the same length starting at other.
// Range starting at other must have at least last.Sub(first) elements.
func Equal[T comparable, It RandomAccess[T, It], Other RandomAccess[T, Other]](first It, last It, other Other) bool {
	for ; first.Less(last); first = first.Add(1) {
		if first.Get() != other.Get() {
			return false
		}
		other = other.Add(1)
	}
	return true
}
