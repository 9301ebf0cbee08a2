// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package algo

// Random access iterator is a value, arithmetic returns new value.
// It refers to the element of some sequence, element is read by Get.
// Ordering and Sub are defined only for iterators of the same sequence.
type RandomAccess[T any, It any] interface {
	Add(n int) It
	Sub(other It) int // distance from other to this
	Equal(other It) bool
	Less(other It) bool
	Get() T
}

// Mutable iterator also writes referred element.
type Mutable[T any, It any] interface {
	RandomAccess[T, It]
	Set(value T)
}
