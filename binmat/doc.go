// Package binmat offers dense 0/1 matrices used as construction input for
// binary code structures.
//
// The binmat package provides:
//
//   - Dense, a flat row-major matrix whose entries are restricted to {0,1},
//     with O(1) element access and strict fail-fast validation.
//   - FromRows, an ingestion helper that validates shape and binarity of
//     caller-supplied integer rows.
//   - RowBits, a bit-packed export of a single row into a bitset.Set, which
//     is how code constructors consume the matrix.
//
// Dense is best for the small, dense incidence data this library targets;
// O(rows*cols) memory and build time are acceptable by design.
//
// See the examples in this package and bincode for usage patterns.
package binmat
