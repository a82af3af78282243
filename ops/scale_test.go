package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/nmtrmail/decades-documentation/ops"
	"github.com/nmtrmail/decades-documentation/sparse"
)

// TestScaleCSR scales the shared fixture and checks values, pattern and
// receiver isolation.
func TestScaleCSR(t *testing.T) {
	a := buildLeft(t)

	out, err := ops.ScaleCSR(a, 2.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 5, 7.5, 10, 12.5, 15}, out.Data())

	// Pattern carried verbatim, receiver untouched.
	assert.Equal(t, a.Indptr(), out.Indptr())
	assert.Equal(t, a.Indices(), out.Indices())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())
}

// TestScaleCSC and TestScaleCOO cover the other sparse containers.
func TestScaleCSC(t *testing.T) {
	a, err := sparse.CSRToCSC(buildLeft(t))
	require.NoError(t, err)

	out, err := ops.ScaleCSC(a, -1)
	require.NoError(t, err)
	for k, v := range a.Data() {
		assert.Equal(t, -v, out.Data()[k])
	}
}

func TestScaleCOO(t *testing.T) {
	a, err := sparse.CSRToCOO(buildLeft(t))
	require.NoError(t, err)

	out, err := ops.ScaleCOO(a, 10)
	require.NoError(t, err)
	for k, v := range a.Data() {
		assert.Equal(t, 10*v, out.Data()[k])
	}
}

// TestScaleTriangular scales a half-matrix of order 4.
func TestScaleTriangular(t *testing.T) {
	tri, err := sparse.NewTriangular(4, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	out, err := ops.ScaleTriangular(tri, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6, 9, 12, 15, 18}, out.Data())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, tri.Data())
}

// TestScaleDense delegates to gonum.
func TestScaleDense(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	out, err := ops.ScaleDense(m, -1)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(mat.NewDense(2, 2, []float64{-1, -2, -3, -4}), out, 1e-12))
}

// TestScale_ZeroKeepsPattern: scaling by zero stores explicit zeros rather
// than dropping entries; EliminateZeros is the cleanup.
func TestScale_ZeroKeepsPattern(t *testing.T) {
	a := buildLeft(t)

	out, err := ops.ScaleCSR(a, 0)
	require.NoError(t, err)
	assert.Equal(t, a.NNZ(), out.NNZ())
	assert.Equal(t, 0, out.EliminateZeros().NNZ())
}

// TestScale_NilOperand covers the nil guard per container.
func TestScale_NilOperand(t *testing.T) {
	_, err := ops.ScaleCSR(nil, 1)
	assert.ErrorIs(t, err, ops.ErrNilOperand)

	_, err = ops.ScaleCSC(nil, 1)
	assert.ErrorIs(t, err, ops.ErrNilOperand)

	_, err = ops.ScaleCOO(nil, 1)
	assert.ErrorIs(t, err, ops.ErrNilOperand)

	_, err = ops.ScaleTriangular(nil, 1)
	assert.ErrorIs(t, err, ops.ErrNilOperand)

	_, err = ops.ScaleDense(nil, 1)
	assert.ErrorIs(t, err, ops.ErrNilOperand)
}
