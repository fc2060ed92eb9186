// SPDX-License-Identifier: MIT

// Package matrix - named row-major uint32 storage & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Fix the shape at creation; no operation resizes a Matrix.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/Data/Load: O(r*c).

package matrix

import (
	"fmt"
	"math/bits"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew  = "New"
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxLoad = "Load"
)

// ---------- Formatting literals ----------

const (
	_fmtHeader = "Matrix Contents (%s):\nDIM = (%d,%d)\n"
	_fmtSep    = " "
	_fmtRowEnd = "\n"
)

// Matrix is a named, fixed-shape, row-major matrix of uint32 values.
//   - name is at most MaxNameLen-1 bytes and never contains NUL.
//   - rows, cols are > 0 and never change after New.
//   - data has length rows*cols (offset = i*cols + j).
type Matrix struct {
	name       string   // identifier, unique among live registry entries
	rows, cols int      // fixed shape
	data       []uint32 // contiguous row-major storage
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix called name.
//
// Implementation:
//   - Stage 1: validate the name (ErrInvalidName, ErrNameTooLong).
//   - Stage 2: validate the shape (ErrInvalidDimensions).
//   - Stage 3: check rows*cols against overflow and the element cap (ErrAllocation).
//   - Stage 4: allocate a zero-filled buffer.
//
// Errors are wrapped with "New: ..." and match their sentinel via errors.Is.
// Complexity: Time O(r*c), Space O(r*c).
func New(name string, rows, cols int, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateName(name); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	n, err := elementCount(rows, cols, o.maxElements)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Matrix{
		name: name,
		rows: rows,
		cols: cols,
		data: make([]uint32, n),
	}, nil
}

// elementCount returns rows*cols or ErrAllocation on overflow / cap violation.
func elementCount(rows, cols int, limit uint64) (int, error) {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > limit {
		return 0, fmt.Errorf("%d×%d exceeds %d elements: %w", rows, cols, limit, ErrAllocation)
	}

	return int(lo), nil
}

// Name returns the matrix identifier.
func (m *Matrix) Name() string { return m.name }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns rows*cols, the number of stored elements.
func (m *Matrix) Len() int { return len(m.data) }

// indexOf bounds-checks (row,col) and returns the row-major offset.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (uint32, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v at (row, col) or returns ErrOutOfRange.
func (m *Matrix) Set(row, col int, v uint32) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Fill writes v into every element.
func (m *Matrix) Fill(v uint32) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Data returns a row-major copy of the elements. The caller owns the slice.
func (m *Matrix) Data() []uint32 {
	out := make([]uint32, len(m.data))
	copy(out, m.data)

	return out
}

// Load copies src into the matrix buffer. len(src) must equal Len();
// the matrix never aliases src.
func (m *Matrix) Load(src []uint32) error {
	if len(src) != len(m.data) {
		return matrixErrorf(ctxLoad, ErrDimensionMismatch)
	}
	copy(m.data, src)

	return nil
}

// Clone returns a deep copy with the same name, shape and data.
func (m *Matrix) Clone() *Matrix {
	data := make([]uint32, len(m.data))
	copy(data, m.data)

	return &Matrix{name: m.name, rows: m.rows, cols: m.cols, data: data}
}

// String renders the name, the shape and one line per row:
//
//	Matrix Contents (A):
//	DIM = (2,2)
//	1 2
//	3 4
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, _fmtHeader, m.name, m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", m.data[base+j])
		}
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}
