package parameters

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range describes a fixed-step sample grid: start, start+step, ... below stop.
type Range struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

// CauchyCoefficients are the two terms of the film's dispersion law
// n(λ) = A + B/λ².
type CauchyCoefficients struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// Parameters holds every scalar input of the reflectivity pipeline.
type Parameters struct {
	// Wavelength is the illumination grid in nanometers.
	Wavelength Range `yaml:"wavelength"`
	// Thickness is the film thickness grid in Ångström.
	Thickness Range `yaml:"thickness"`
	// Ambient and Substrate are the constant indices of the outer media.
	Ambient   float64 `yaml:"ambient"`
	Substrate float64 `yaml:"substrate"`
	// Cauchy parameterizes the film's dispersion.
	Cauchy CauchyCoefficients `yaml:"cauchy"`
	// SeriesStride selects every N-th thickness row for line charts.
	SeriesStride int `yaml:"series_stride"`
	// Workers bounds the sweep worker pool; 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// Default returns the silica-on-silicon setup: 200–800 nm illumination at
// 0.5 nm, film thicknesses 0–6000 Å at 1 Å, air ambient, silicon substrate.
func Default() *Parameters {
	return &Parameters{
		Wavelength:   Range{Start: 200.0, Stop: 800.5, Step: 0.5},
		Thickness:    Range{Start: 0.0, Stop: 6001.0, Step: 1.0},
		Ambient:      1.0,
		Substrate:    3.5,
		Cauchy:       CauchyCoefficients{A: 1.458, B: 0.00354},
		SeriesStride: 1000,
	}
}

// Load reads a yaml parameters file over the defaults, so a file only needs
// to name the values it changes.
func Load(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file: %w", err)
	}
	params := Default()
	if err := yaml.Unmarshal(data, params); err != nil {
		return nil, fmt.Errorf("failed to parse parameters file: %w", err)
	}
	return params, nil
}
