package optics

import "math"

// Grid is an ordered, fixed-step sequence of sample points. It is immutable
// once built: both grids of the pipeline (wavelengths in nanometers,
// thicknesses in Ångström) are instances of it.
type Grid struct {
	start, stop, step float64
	samples           []float64
}

// NewGrid builds the sequence start, start+step, start+2·step, ... strictly
// below stop (the bound is exclusive). It returns ErrInvalidRange when
// step <= 0 or start > stop.
func NewGrid(start, stop, step float64) (*Grid, error) {
	if step <= 0 || start > stop {
		return nil, ErrInvalidRange
	}
	n := int(math.Ceil((stop - start) / step))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = start + float64(i)*step
	}
	return &Grid{start: start, stop: stop, step: step, samples: samples}, nil
}

// Len reports the number of samples.
func (g *Grid) Len() int {
	return len(g.samples)
}

// At returns the i-th sample.
func (g *Grid) At(i int) float64 {
	return g.samples[i]
}

// Step reports the grid step size.
func (g *Grid) Step() float64 {
	return g.step
}

// Samples returns the underlying sample slice. Callers must not modify it.
func (g *Grid) Samples() []float64 {
	return g.samples
}
