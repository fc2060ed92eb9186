// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels over resolved *Matrix operands: Add, Duplicate,
//     Equal, Shift and RandomFill.
//   - Operations never resolve names and never resize; outputs must be
//     pre-created with the right shape.
//
// Determinism & Performance:
//   - Single flat pass 0..n-1 over the row-major buffer.
//   - No allocations; O(r*c) time.
//
// Arithmetic is uint32 with wraparound (no promotion, no saturation).

package matrix

import "fmt"

const (
	ctxAdd        = "Add"
	ctxDuplicate  = "Duplicate"
	ctxShift      = "Shift"
	ctxRandomFill = "RandomFill"
)

// Add writes c[i] = a[i] + b[i] for every element, wrapping on overflow.
//
// Inputs:
//   - a, b: operands of identical shape.
//   - c: pre-created destination of the same shape; may alias a or b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch. On error c is untouched.
// Complexity: Time O(r*c), Space O(1).
func Add(a, b, c *Matrix) error {
	if err := ValidateNotNil(a, b, c); err != nil {
		return matrixErrorf(ctxAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(ctxAdd, err)
	}
	if err := ValidateSameShape(a, c); err != nil {
		return matrixErrorf(ctxAdd, err)
	}
	for i := range c.data {
		c.data[i] = a.data[i] + b.data[i]
	}

	return nil
}

// Duplicate copies the whole buffer of src into dst.
// Post-condition on success: Equal(src, dst).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (dst shape differs).
func Duplicate(src, dst *Matrix) error {
	if err := ValidateNotNil(src, dst); err != nil {
		return matrixErrorf(ctxDuplicate, err)
	}
	if err := ValidateSameShape(src, dst); err != nil {
		return matrixErrorf(ctxDuplicate, err)
	}
	copy(dst.data, src.data)

	return nil
}

// Equal reports whether a and b hold the same shape and identical elements.
//
// A shape mismatch is NOT an error: it returns false, the same as differing data.
// Names are not compared. Nil operands compare unequal.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Shift applies a logical shift by amount to every element in place.
//
// Behavior highlights:
//   - Unsigned semantics: vacated bits are zero, no sign extension.
//   - amount >= ElementBits clears every element (each bit is shifted out).
//
// Errors: ErrNilMatrix, ErrInvalidDirection.
func Shift(m *Matrix, dir Direction, amount uint) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxShift, err)
	}
	if !dir.valid() {
		return matrixErrorf(ctxShift, fmt.Errorf("%s: %w", dir, ErrInvalidDirection))
	}
	if amount >= ElementBits {
		m.Fill(0)
		return nil
	}
	if dir == Left {
		for i := range m.data {
			m.data[i] <<= amount
		}
		return nil
	}
	for i := range m.data {
		m.data[i] >>= amount
	}

	return nil
}

// RandomFill sets every element to a value drawn uniformly from [low, high].
//
// Implementation:
//   - Stage 1: validate m and low <= high.
//   - Stage 2: draw from WithRand's generator, or the global math/rand/v2 source.
//
// Behavior highlights:
//   - low == high fills a constant; [0, MaxUint32] is a legal range.
//   - No modulo bias (Uint64N rejection sampling).
//
// Errors: ErrNilMatrix, ErrInvalidRange. On error m is untouched.
func RandomFill(m *Matrix, low, high uint32, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxRandomFill, err)
	}
	if low > high {
		return matrixErrorf(ctxRandomFill, fmt.Errorf("[%d,%d]: %w", low, high, ErrInvalidRange))
	}
	o := gatherOptions(opts...)
	for i := range m.data {
		m.data[i] = o.uniform(low, high)
	}

	return nil
}
