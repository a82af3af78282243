package sparse_test

import (
	"testing"

	"github.com/nmtrmail/decades-documentation/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCOO constructs the coordinate form of the 3x4 fixture, deliberately
// out of row order to exercise the no-ordering-invariant contract:
//
//	[1 0 2 0]
//	[0 0 3 0]
//	[4 5 0 6]
func buildCOO(t *testing.T) *sparse.COO {
	t.Helper()
	m, err := sparse.NewCOO(3, 4,
		[]int{2, 0, 1, 2, 0, 2},
		[]int{0, 0, 2, 1, 2, 3},
		[]float64{4, 1, 3, 5, 2, 6},
	)
	require.NoError(t, err)

	return m
}

func TestNewCOO_Valid(t *testing.T) {
	m := buildCOO(t)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, 6, m.NNZ())
}

func TestNewCOO_Validation(t *testing.T) {
	cases := []struct {
		name   string
		rows   int
		cols   int
		rowIdx []int
		colIdx []int
		data   []float64
	}{
		{"length mismatch", 3, 4, []int{0, 1}, []int{0}, []float64{1, 2}},
		{"row out of range", 3, 4, []int{3}, []int{0}, []float64{1}},
		{"col out of range", 3, 4, []int{0}, []int{4}, []float64{1}},
		{"negative row", 3, 4, []int{-1}, []int{0}, []float64{1}},
		{"negative shape", -2, 4, []int{}, []int{}, []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.NewCOO(tc.rows, tc.cols, tc.rowIdx, tc.colIdx, tc.data)
			assert.ErrorIs(t, err, sparse.ErrInvalidFormat)
		})
	}
}

func TestCOO_At(t *testing.T) {
	m := buildCOO(t)

	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)
}

// TestCOO_At_SumsDuplicates pins duplicate handling at the COO level.
func TestCOO_At_SumsDuplicates(t *testing.T) {
	m, err := sparse.NewCOO(2, 2, []int{0, 0, 1}, []int{1, 1, 0}, []float64{1.5, 2.5, 7})
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestCOO_Clone_Independent(t *testing.T) {
	m := buildCOO(t)
	c := m.Clone()

	c.RowIndices()[0] = 0
	c.Data()[0] = 99
	assert.Equal(t, 2, m.RowIndices()[0])
	assert.Equal(t, 4.0, m.Data()[0])
}
