package optics

// Dispersion maps a wavelength in nanometers to a material's refractive
// index. The reflectivity solver never sees the concrete law, only the
// profile produced by Profile, so any dispersion model can be substituted.
type Dispersion interface {
	Index(wavelengthNm float64) float64
}

// Cauchy is the two-term Cauchy dispersion law n(λ) = A + B/λ².
type Cauchy struct {
	A, B float64
}

// Index evaluates the law at one wavelength.
func (c Cauchy) Index(wavelengthNm float64) float64 {
	return c.A + c.B/(wavelengthNm*wavelengthNm)
}

// Profile applies d elementwise over the wavelength grid. The result is
// index-aligned with the grid and has the same length.
func Profile(d Dispersion, wavelengths *Grid) []float64 {
	profile := make([]float64, wavelengths.Len())
	for i, w := range wavelengths.Samples() {
		profile[i] = d.Index(w)
	}
	return profile
}
