package parameters_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thinfilm/entity/parameters"
)

func TestDefault(t *testing.T) {
	params := parameters.Default()

	assert.Equal(t, parameters.Range{Start: 200.0, Stop: 800.5, Step: 0.5}, params.Wavelength)
	assert.Equal(t, parameters.Range{Start: 0.0, Stop: 6001.0, Step: 1.0}, params.Thickness)
	assert.Equal(t, 1.0, params.Ambient)
	assert.Equal(t, 3.5, params.Substrate)
	assert.Equal(t, parameters.CauchyCoefficients{A: 1.458, B: 0.00354}, params.Cauchy)
	assert.Equal(t, 1000, params.SeriesStride)
	assert.Zero(t, params.Workers)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"substrate: 4.2\nworkers: 2\nwavelength: {start: 400, stop: 700.5, step: 0.5}\n",
	), 0o644))

	params, err := parameters.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4.2, params.Substrate)
	assert.Equal(t, 2, params.Workers)
	assert.Equal(t, parameters.Range{Start: 400.0, Stop: 700.5, Step: 0.5}, params.Wavelength)
	// Untouched keys keep the defaults.
	assert.Equal(t, 1.0, params.Ambient)
	assert.Equal(t, parameters.CauchyCoefficients{A: 1.458, B: 0.00354}, params.Cauchy)
}

func TestLoad_Errors(t *testing.T) {
	_, err := parameters.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("substrate: [not a number"), 0o644))
	_, err = parameters.Load(path)
	require.Error(t, err)
}
