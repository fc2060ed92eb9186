// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operations minimal by delegating name/shape/nil checks here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap again.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"strings"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateName ensures name is non-empty, NUL-free and that its encoded form
// (bytes plus one terminator) fits in MaxNameLen.
//
// Errors: ErrInvalidName, ErrNameTooLong.
// Complexity: O(len(name)).
func ValidateName(name string) error {
	if name == "" || strings.IndexByte(name, 0) >= 0 {
		return validatorErrorf("ValidateName", ErrInvalidName)
	}
	if len(name)+1 > MaxNameLen {
		return validatorErrorf("ValidateName", ErrNameTooLong)
	}

	return nil
}

// ValidateShape ensures rows > 0 and cols > 0.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}

// ValidateNotNil ensures every given matrix reference is non-nil.
// Complexity: O(len(ms)).
func ValidateNotNil(ms ...*Matrix) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}
