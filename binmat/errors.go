// SPDX-License-Identifier: MIT
// Package binmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the binmat
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers.

package binmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "binmat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	// Creation must validate shape before allocation.
	ErrBadShape = errors.New("binmat: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/RowBits) MUST return this, not panic.
	ErrOutOfRange = errors.New("binmat: index out of range")

	// ErrRaggedRows indicates that ingested rows do not all share one length.
	ErrRaggedRows = errors.New("binmat: ragged rows")

	// ErrNotBinary signals that an entry outside {0,1} was observed where the
	// binary-entry policy requires 0/1 (ingestion, Set).
	ErrNotBinary = errors.New("binmat: entry not 0 or 1")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("binmat: nil matrix")

	// ErrLengthMismatch indicates that a destination bitset's capacity does
	// not match the matrix column count in RowBits.
	ErrLengthMismatch = errors.New("binmat: destination length mismatch")
)
