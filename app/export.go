package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"thinfilm/optics"
)

// writeCSV dumps every stride-th spectrum row. The first column carries the
// thickness in Ångström, the header row the wavelengths in nanometers.
func writeCSV(w io.Writer, spectrum *optics.Spectrum, stride int) error {
	cw := csv.NewWriter(w)

	series := spectrum.Series(stride)
	if len(series) == 0 {
		cw.Flush()
		return cw.Error()
	}

	header := make([]string, 1, len(series[0].Wavelengths)+1)
	header[0] = "thickness_angstrom"
	for _, wl := range series[0].Wavelengths {
		header = append(header, strconv.FormatFloat(wl, 'g', -1, 64))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(header))
	for _, s := range series {
		record[0] = strconv.FormatFloat(s.Thickness, 'g', -1, 64)
		for i, v := range s.Values {
			record[i+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// savePNG plots the labeled series as a static image.
func savePNG(path string, series []optics.Series) error {
	p := plot.New()
	p.Title.Text = "Reflectivity Spectra of stack"
	p.X.Label.Text = "Wavelength, nm"
	p.Y.Label.Text = "Reflectivity"
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Values))
		for j := range s.Values {
			xys[j].X = s.Wavelengths[j]
			xys[j].Y = s.Values[j]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("failed to build line for %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}

	if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
