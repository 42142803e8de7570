package matrix_test

import (
	"math"
	"testing"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	_, err := matrix.ValidateSquare(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, _ := matrix.NewDense(2, 3)
	_, err = matrix.ValidateSquare(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestValidateDistance(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"ok", [][]float64{{0, 1}, {2, 0}}, nil},
		{"diagonal", [][]float64{{1, 1}, {2, 0}}, matrix.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1}, {2, 0}}, matrix.ErrNegative},
		{"nan", [][]float64{{0, math.NaN()}, {2, 0}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{0, 1}, {math.Inf(1), 0}}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromRows(tc.rows)
			require.NoError(t, err)
			err = matrix.ValidateDistance(m, 1e-12)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSymmetric(t *testing.T) {
	sym, _ := matrix.FromRows([][]float64{{0, 3}, {3, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym, _ := matrix.FromRows([][]float64{{0, 3}, {4, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 0.5), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 1))
}

func TestAllClose(t *testing.T) {
	a, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	b, _ := matrix.FromRows([][]float64{{0, 1 + 1e-12}, {1, 0}})
	c, _ := matrix.FromRows([][]float64{{0, 2}, {1, 0}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, c, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	d, _ := matrix.NewSquare(3)
	_, err = matrix.AllClose(a, d, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
