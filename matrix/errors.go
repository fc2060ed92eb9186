// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap at the detection site with matrixErrorf so the
// operation name travels with the sentinel; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> name -> shape -> allocation -> dimension mismatch -> argument (direction/range).

var (
	// ErrInvalidDimensions is returned when rows==0 or cols==0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNameTooLong is returned when len(name)+1 exceeds MaxNameLen.
	// The +1 accounts for the terminator byte carried by the on-disk format.
	ErrNameTooLong = errors.New("matrix: name too long")

	// ErrInvalidName is returned for an empty name or a name containing a NUL byte.
	ErrInvalidName = errors.New("matrix: invalid name")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDirection is returned for a shift direction other than left/right.
	ErrInvalidDirection = errors.New("matrix: invalid shift direction")

	// ErrInvalidRange is returned by RandomFill when low > high.
	ErrInvalidRange = errors.New("matrix: invalid range")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAllocation is returned when the backing buffer cannot be provided:
	// rows*cols overflows, or exceeds the configured element limit.
	ErrAllocation = errors.New("matrix: allocation failed")
)

// matrixErrorf wraps err with an operation tag: "<op>: <err>".
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
