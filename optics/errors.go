package optics

import "errors"

var (
	// ErrInvalidRange indicates grid bounds or step that cannot produce an ordered grid.
	ErrInvalidRange = errors.New("optics: step must be positive and start must not exceed stop")
	// ErrInvalidMaterial indicates a non-positive refractive index.
	ErrInvalidMaterial = errors.New("optics: refractive index must be positive")
	// ErrDimensionMismatch indicates an index profile whose length differs from the wavelength grid.
	ErrDimensionMismatch = errors.New("optics: index profile length differs from wavelength grid length")
)
