// SPDX-License-Identifier: MIT
// Package partition: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// partition package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. Panics are reserved for programmer errors
// in private helpers and for violated call preconditions documented as such.

package partition

import "errors"

var (
	// ErrBadDomain is returned when a stack is requested over a non-positive
	// domain size.
	ErrBadDomain = errors.New("partition: domain size must be > 0")

	// ErrBadKeySpace is returned when the declared key range is negative.
	ErrBadKeySpace = errors.New("partition: key space must be >= 0")

	// ErrUnderflow is returned by Pop at depth zero.
	ErrUnderflow = errors.New("partition: depth underflow")

	// ErrBadDepth is returned when a requested depth is negative.
	ErrBadDepth = errors.New("partition: depth must be >= 0")

	// ErrBadPartition is returned when a seed partition does not cover the
	// domain exactly once.
	ErrBadPartition = errors.New("partition: cells are not a partition of the domain")

	// ErrNotDiscrete is returned by Labeling when some cell still holds more
	// than one element.
	ErrNotDiscrete = errors.New("partition: stack is not discrete")

	// ErrUnknownElement is returned when an element outside the domain is
	// referenced.
	ErrUnknownElement = errors.New("partition: element outside domain")
)
