package optics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thinfilm/optics"
)

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name              string
		start, stop, step float64
	}{
		{"ZeroStep", 200.0, 800.5, 0},
		{"NegativeStep", 200.0, 800.5, -0.5},
		{"StartAboveStop", 800.5, 200.0, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := optics.NewGrid(tc.start, tc.stop, tc.step)
			require.ErrorIs(t, err, optics.ErrInvalidRange)
		})
	}
}

func TestNewGrid_WavelengthGrid(t *testing.T) {
	g, err := optics.NewGrid(200.0, 800.5, 0.5)
	require.NoError(t, err)

	require.Equal(t, 1201, g.Len())
	assert.Equal(t, 200.0, g.At(0))
	assert.Equal(t, 800.0, g.At(g.Len()-1))
	assert.Equal(t, 0.5, g.Step())
}

// TestNewGrid_ExclusiveStop checks that the stop bound itself is never
// included in the sample sequence.
func TestNewGrid_ExclusiveStop(t *testing.T) {
	g, err := optics.NewGrid(0.0, 1.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0, 0.5}, g.Samples())

	g, err = optics.NewGrid(0.0, 6001.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 6001, g.Len())
	assert.Equal(t, 6000.0, g.At(g.Len()-1))
}

func TestNewGrid_EmptyWhenStartEqualsStop(t *testing.T) {
	g, err := optics.NewGrid(5.0, 5.0, 1.0)
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}
