// SPDX-License-Identifier: MIT
// Package bincode: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// bincode package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. Panics are reserved for violated call
// preconditions documented as programmer errors (relabeling length, word
// index range, reentrant scratch use).

package bincode

import "errors"

var (
	// ErrNilMatrix indicates that a nil *binmat.Dense was passed to a
	// constructor.
	ErrNilMatrix = errors.New("bincode: nil input matrix")

	// ErrNilCode indicates that a nil Code was passed to a package function.
	ErrNilCode = errors.New("bincode: nil code")

	// ErrNilStack indicates that a nil column partition stack was supplied.
	ErrNilStack = errors.New("bincode: nil column stack")

	// ErrDomainMismatch indicates that the supplied column stack's domain
	// size does not equal the code's degree.
	ErrDomainMismatch = errors.New("bincode: column stack does not match code degree")

	// ErrDimensionTooLarge is returned when a linear code's dimension cannot
	// address 2^dimension words in scratch memory. No partial structure is
	// returned.
	ErrDimensionTooLarge = errors.New("bincode: linear dimension too large")
)
