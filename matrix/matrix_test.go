// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/matreg/matrix"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroInitialized(t *testing.T) {
	t.Parallel()
	m := MustNew(t, "A", 3, 4)
	require.Equal(t, "A", m.Name())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 12, m.Len())
	for _, v := range m.Data() {
		require.Zero(t, v)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", matrix.MaxNameLen) // +1 terminator overflows
	cases := []struct {
		name       string
		matName    string
		rows, cols int
		want       error
	}{
		{"zero rows", "A", 0, 3, matrix.ErrInvalidDimensions},
		{"zero cols", "A", 3, 0, matrix.ErrInvalidDimensions},
		{"negative", "A", -1, 3, matrix.ErrInvalidDimensions},
		{"empty name", "", 1, 1, matrix.ErrInvalidName},
		{"nul in name", "a\x00b", 1, 1, matrix.ErrInvalidName},
		{"name too long", long, 1, 1, matrix.ErrNameTooLong},
		{"name before shape", long, 0, 0, matrix.ErrNameTooLong},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.New(tc.matName, tc.rows, tc.cols)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestNew_NameAtBound(t *testing.T) {
	t.Parallel()
	name := strings.Repeat("n", matrix.MaxNameLen-1)
	m, err := matrix.New(name, 1, 1)
	require.NoError(t, err)
	require.Equal(t, name, m.Name())
}

func TestNew_AllocationCap(t *testing.T) {
	t.Parallel()
	_, err := matrix.New("big", 1000, 1000, matrix.WithMaxElements(999_999))
	require.ErrorIs(t, err, matrix.ErrAllocation)

	m, err := matrix.New("ok", 1000, 1000, matrix.WithMaxElements(1_000_000))
	require.NoError(t, err)
	require.Equal(t, 1_000_000, m.Len())

	// Overflowing product must not wrap into a small allocation.
	_, err = matrix.New("huge", 1<<40, 1<<40)
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

func TestAtSet_Bounds(t *testing.T) {
	t.Parallel()
	m := MustNew(t, "A", 2, 3)
	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, uint32(7), v)
	// row-major offset i*cols+j
	require.Equal(t, uint32(7), m.Data()[1*3+2])

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
}

func TestLoad_CopiesAndValidates(t *testing.T) {
	t.Parallel()
	src := []uint32{1, 2, 3, 4}
	m := NewFilled(t, "A", 2, 2, src)
	src[0] = 99
	v, _ := m.At(0, 0)
	require.Equal(t, uint32(1), v, "Load must not alias the source slice")

	err := m.Load([]uint32{1, 2, 3})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestData_ReturnsCopy(t *testing.T) {
	t.Parallel()
	m := NewFilled(t, "A", 1, 2, []uint32{5, 6})
	d := m.Data()
	d[0] = 0
	v, _ := m.At(0, 0)
	require.Equal(t, uint32(5), v)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()
	m := NewFilled(t, "A", 2, 2, []uint32{1, 2, 3, 4})
	c := m.Clone()
	require.True(t, matrix.Equal(m, c))
	require.Equal(t, m.Name(), c.Name())
	require.NoError(t, c.Set(0, 0, 42))
	require.False(t, matrix.Equal(m, c))
}

func TestString_Format(t *testing.T) {
	t.Parallel()
	m := NewFilled(t, "A", 2, 2, []uint32{1, 2, 3, 4})
	want := "Matrix Contents (A):\nDIM = (2,2)\n1 2\n3 4\n"
	require.Equal(t, want, m.String())
}
