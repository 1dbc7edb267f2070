// Package optics computes normal-incidence reflectivity spectra of a
// three-layer stack (ambient / dispersive thin film / substrate).
//
// What:
//
//   - Grid builds the immutable wavelength and thickness sample grids.
//   - Dispersion maps wavelength to the film's refractive index
//     (Cauchy two-term law provided; any law satisfying the interface works).
//   - Reflectivity evaluates the two-interface transfer-matrix combination
//     for one film thickness across a wavelength grid.
//   - SweepReflectivity assembles the full thickness×wavelength Spectrum.
//
// Units: wavelengths in nanometers, thicknesses in Ångström (converted to
// nanometers internally).
//
// Errors:
//
//   - ErrInvalidRange: malformed grid bounds or step.
//   - ErrInvalidMaterial: non-positive refractive index.
//   - ErrDimensionMismatch: index profile length differs from the grid.
package optics
