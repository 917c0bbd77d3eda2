// SPDX-License-Identifier: MIT
// Package autgroup: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// autgroup package. All operations MUST return these sentinels (or context
// errors propagated verbatim) and tests MUST check them via errors.Is.

package autgroup

import "errors"

var (
	// ErrNilCode indicates that a nil bincode.Code was passed to Search.
	ErrNilCode = errors.New("autgroup: nil code")

	// ErrBadBase indicates that the supplied starting partition does not
	// partition the code's column set.
	ErrBadBase = errors.New("autgroup: base is not a partition of the columns")
)
