package optics

import (
	"runtime"
	"sync"
)

// SweepReflectivity fills a Spectrum by solving the stack at every thickness
// of the thickness grid. Rows share only the read-only film profile and
// wavelength grid and each worker writes a disjoint row, so the sweep runs on
// a pool of worker goroutines (workers < 1 selects runtime.NumCPU()).
//
// The sweep is fail-fast: the inputs are validated once up front and the
// first row error aborts the whole sweep with no partial Spectrum returned.
func SweepReflectivity(ambient float64, film []float64, substrate float64, thicknesses, wavelengths *Grid, workers int) (*Spectrum, error) {
	// Validate once before spawning workers so an invalid stack never
	// computes a single row.
	if _, err := Reflectivity(ambient, film, substrate, 0, wavelengths); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	rows := make([][]float64, thicknesses.Len())

	indexChan := make(chan int, workers)
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		sweepErr error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				row, err := Reflectivity(ambient, film, substrate, thicknesses.At(i), wavelengths)
				if err != nil {
					errOnce.Do(func() { sweepErr = err })
					continue
				}
				rows[i] = row
			}
		}()
	}
	for i := range thicknesses.Len() {
		indexChan <- i
	}
	close(indexChan)
	wg.Wait()

	if sweepErr != nil {
		return nil, sweepErr
	}
	return &Spectrum{wavelengths: wavelengths, thicknesses: thicknesses, rows: rows}, nil
}
