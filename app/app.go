package app

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"thinfilm/entity/format"
	"thinfilm/entity/mode"
	"thinfilm/entity/parameters"
	"thinfilm/optics"
)

type App struct {
	Output string
	Format format.Format
	Mode   mode.Mode
	Params *parameters.Parameters
}

func New(output string, f format.Format, m mode.Mode, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		Format: f,
		Mode:   m,
		Params: params,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output":     a.Output,
		"format":     a.Format,
		"mode":       a.Mode,
		"wavelength": a.Params.Wavelength,
		"thickness":  a.Params.Thickness,
		"ambient":    a.Params.Ambient,
		"substrate":  a.Params.Substrate,
		"cauchy":     a.Params.Cauchy,
	}).Debug("App started")

	spectrum, err := a.computeSpectrum()
	if err != nil {
		return fmt.Errorf("failed to compute spectrum: %w", err)
	}

	if a.Format == format.Png {
		// gonum/plot owns the file.
		if a.Mode != mode.Lines {
			return fmt.Errorf("png output supports the lines mode only, got %q", a.Mode)
		}
		renderTime := time.Now()
		if err := savePNG(a.Output, spectrum.Series(a.Params.SeriesStride)); err != nil {
			return fmt.Errorf("failed to save png: %w", err)
		}
		log.WithField("time", time.Since(renderTime)).Info("Spectrum rendered and saved")
		return nil
	}

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	switch a.Format {
	case format.HTML:
		if err := a.renderChart(f, spectrum); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
	case format.Csv:
		if err := writeCSV(f, spectrum, a.Params.SeriesStride); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %q", a.Format)
	}
	log.WithField("time", time.Since(renderTime)).Info("Spectrum rendered and saved")

	return nil
}

func (a *App) computeSpectrum() (*optics.Spectrum, error) {
	wavelengths, err := optics.NewGrid(a.Params.Wavelength.Start, a.Params.Wavelength.Stop, a.Params.Wavelength.Step)
	if err != nil {
		return nil, fmt.Errorf("failed to build wavelength grid: %w", err)
	}
	thicknesses, err := optics.NewGrid(a.Params.Thickness.Start, a.Params.Thickness.Stop, a.Params.Thickness.Step)
	if err != nil {
		return nil, fmt.Errorf("failed to build thickness grid: %w", err)
	}

	film := optics.Profile(optics.Cauchy{A: a.Params.Cauchy.A, B: a.Params.Cauchy.B}, wavelengths)

	sweepTime := time.Now()
	spectrum, err := optics.SweepReflectivity(a.Params.Ambient, film, a.Params.Substrate, thicknesses, wavelengths, a.Params.Workers)
	if err != nil {
		return nil, fmt.Errorf("failed to sweep reflectivity: %w", err)
	}
	rows, cols := spectrum.Dims()
	log.WithFields(log.Fields{
		"rows": rows,
		"cols": cols,
		"time": time.Since(sweepTime),
	}).Info("Sweep finished")

	return spectrum, nil
}
