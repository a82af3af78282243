package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmtrmail/decades-documentation/kernel"
)

// TestNewSpec builds a full declaration and checks the stored contract.
func TestNewSpec(t *testing.T) {
	in, err := kernel.SignatureFor(kernel.KindCSR)
	require.NoError(t, err)
	out, err := kernel.SignatureFor(kernel.KindCOO)
	require.NoError(t, err)

	spec, err := kernel.NewSpec("spmv", kernel.MultiThreaded,
		[]kernel.Signature{in}, []kernel.Signature{out})
	require.NoError(t, err)
	assert.Equal(t, "spmv", spec.Name)
	assert.Equal(t, kernel.MultiThreaded, spec.Mode)
	require.Len(t, spec.Inputs, 1)
	assert.Equal(t, kernel.KindCSR, spec.Inputs[0].Kind)
	require.Len(t, spec.Outputs, 1)
	assert.Equal(t, kernel.KindCOO, spec.Outputs[0].Kind)
}

// TestNewSpec_Validation covers the name and mode guards.
func TestNewSpec_Validation(t *testing.T) {
	_, err := kernel.NewSpec("", kernel.SingleThreaded, nil, nil)
	assert.ErrorIs(t, err, kernel.ErrEmptyName)

	_, err = kernel.NewSpec("noop", kernel.Mode(9), nil, nil)
	assert.ErrorIs(t, err, kernel.ErrBadMode)

	// Empty input and output lists are a valid declaration.
	spec, err := kernel.NewSpec("noop", kernel.SingleThreaded, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, spec.Inputs)
	assert.Empty(t, spec.Outputs)
}

// TestMode_String covers the Stringer, including out-of-range values.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "single-threaded", kernel.SingleThreaded.String())
	assert.Equal(t, "multi-threaded", kernel.MultiThreaded.String())
	assert.Equal(t, "Mode(7)", kernel.Mode(7).String())
}
