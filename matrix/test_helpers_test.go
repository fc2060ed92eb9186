// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix tests.
//   • Keep fixtures seeded so failures reproduce.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/matreg/matrix"
)

// MustNew ALLOCATES a zeroed rows×cols matrix or fails the test.
func MustNew(t testing.TB, name string, rows, cols int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(name, rows, cols)
	if err != nil {
		t.Fatalf("New(%q,%d,%d): %v", name, rows, cols, err)
	}

	return m
}

// NewFilled BUILDS a rows×cols matrix from a row-major flat slice.
func NewFilled(t testing.TB, name string, rows, cols int, vals []uint32) *matrix.Matrix {
	t.Helper()
	m := MustNew(t, name, rows, cols)
	if err := m.Load(vals); err != nil {
		t.Fatalf("Load(%d values into %d×%d): %v", len(vals), rows, cols, err)
	}

	return m
}

// Seeded RETURNS a reproducible generator for RandomFill.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
