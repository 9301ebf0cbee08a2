// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package dequeerrors

import (
	"fmt"
)

// errors are static, so returning or panicking with them never allocates

type Error struct {
	contract bool // violation of caller contract, reported by panic
	code     int
	text     string
}

func (e *Error) Error() string {
	if e.contract {
		return fmt.Sprintf("deque (contract): %d %s", e.code, e.text)
	}
	return fmt.Sprintf("deque: %d %s", e.code, e.text)
}

// Contract reports if error is only ever raised by panic.
func (e *Error) Contract() bool { return e.contract }

func (e *Error) Code() int { return e.code }

func NewRecoverable(code int, text string) error {
	return &Error{
		code: code,
		text: text,
	}
}

func NewContract(code int, text string) error {
	return &Error{
		contract: true,
		code:     code,
		text:     text,
	}
}

var ErrEmptyContainer = NewRecoverable(-100, "operation requires non-empty container")
var ErrIndexOutOfRange = NewRecoverable(-101, "index out of range")

var ErrSentinelDereference = NewContract(-200, "dereference of iterator outside [begin, end)")
var ErrIteratorInvalidated = NewContract(-201, "iterator used after structural mutation of its buffer")
var ErrIteratorMismatch = NewContract(-202, "iterators belong to different buffers")
var ErrInvariantViolated = NewContract(-203, "circular buffer invariant violated")
var ErrIteratorUnbound = NewContract(-204, "iterator is not bound to a buffer")
var ErrCapacityOverflow = NewContract(-205, "requested capacity does not fit int")
