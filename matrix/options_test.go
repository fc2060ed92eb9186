// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matreg/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	o := matrix.NewOptions()
	require.Equal(t, uint64(matrix.DefaultMaxElements), o.MaxElements())
}

func TestOptions_LaterWins(t *testing.T) {
	t.Parallel()
	o := matrix.NewOptions(matrix.WithMaxElements(10), nil, matrix.WithMaxElements(20))
	require.Equal(t, uint64(20), o.MaxElements())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { matrix.WithMaxElements(0) })
	require.Panics(t, func() { matrix.WithRand(nil) })
}
