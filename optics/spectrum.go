package optics

import "fmt"

// Spectrum is the reflectivity matrix assembled by SweepReflectivity.
// Row i holds the reflectivity over the wavelength grid at thickness i of
// the thickness grid. The matrix is written exactly once during the sweep
// and is read-only afterwards.
type Spectrum struct {
	wavelengths *Grid
	thicknesses *Grid
	rows        [][]float64
}

// Series is one labeled spectrum handed to a renderer: the reflectivity
// values of a single thickness, index-aligned with Wavelengths.
type Series struct {
	Thickness   float64 // Ångström
	Label       string
	Wavelengths []float64
	Values      []float64
}

// Wavelengths returns the wavelength grid the rows are aligned with.
func (s *Spectrum) Wavelengths() *Grid {
	return s.wavelengths
}

// Thicknesses returns the thickness grid the rows correspond to.
func (s *Spectrum) Thicknesses() *Grid {
	return s.thicknesses
}

// Dims reports (number of thicknesses, number of wavelengths).
func (s *Spectrum) Dims() (rows, cols int) {
	return len(s.rows), s.wavelengths.Len()
}

// Row returns the reflectivity values at thickness index i.
// Callers must not modify the returned slice.
func (s *Spectrum) Row(i int) []float64 {
	return s.rows[i]
}

// ThicknessAt returns the thickness (Ångström) of row i.
func (s *Spectrum) ThicknessAt(i int) float64 {
	return s.thicknesses.At(i)
}

// Series returns every stride-th row as a labeled series, starting at row 0.
// The label keeps the "Thickness = <value> Å" legend convention.
func (s *Spectrum) Series(stride int) []Series {
	if stride < 1 {
		stride = 1
	}
	series := make([]Series, 0, (len(s.rows)+stride-1)/stride)
	for i := 0; i < len(s.rows); i += stride {
		series = append(series, Series{
			Thickness:   s.thicknesses.At(i),
			Label:       fmt.Sprintf("Thickness = %g Å", s.thicknesses.At(i)),
			Wavelengths: s.wavelengths.Samples(),
			Values:      s.rows[i],
		})
	}
	return series
}
