package app

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"thinfilm/entity/mode"
	"thinfilm/optics"
)

// heatmapMaxCells bounds the heatmap grid so a full 6001×1201 sweep does not
// end up as millions of DOM cells in the rendered page.
const heatmapMaxCells = 200

func (a *App) renderChart(w io.Writer, spectrum *optics.Spectrum) error {
	startTime := time.Now()
	defer func() {
		log.WithFields(log.Fields{
			"time": time.Since(startTime),
			"mode": a.Mode,
		}).Debug("Creating chart")
	}()

	switch a.Mode {
	case mode.Lines:
		return createLineChart(spectrum.Series(a.Params.SeriesStride)).Render(w)
	case mode.Heatmap:
		return createHeatmap(spectrum).Render(w)
	default:
		return fmt.Errorf("unsupported mode: %q", a.Mode)
	}
}

func createLineChart(series []optics.Series) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Reflectivity spectra of an ambient / thin film / substrate stack",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Reflectivity Spectra of stack",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "reflectivity_spectra",
					Title: "Save as image",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show:       opts.Bool(true),
					YAxisIndex: "default",
					Title: map[string]string{
						"zoom": "area zooming",
						"back": "restore area zooming",
					},
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Wavelength, nm",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Reflectivity",
			Type: "value",
			Show: opts.Bool(true),
			Min:  0,
			Max:  1,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	if len(series) == 0 {
		return line
	}

	line.SetXAxis(series[0].Wavelengths)
	for i := range series {
		data := make([]opts.LineData, len(series[i].Values))
		for j, v := range series[i].Values {
			data[j] = opts.LineData{Value: v}
		}
		line.AddSeries(series[i].Label, data)
	}
	return line
}

func createHeatmap(spectrum *optics.Spectrum) *charts.HeatMap {
	hm := charts.NewHeatMap()

	rows, cols := spectrum.Dims()
	rowStride := stride(rows, heatmapMaxCells)
	colStride := stride(cols, heatmapMaxCells)

	xAxis := make([]string, 0, cols/colStride+1)
	for j := 0; j < cols; j += colStride {
		xAxis = append(xAxis, fmt.Sprintf("%g", spectrum.Wavelengths().At(j)))
	}

	data := make([]opts.HeatMapData, 0, len(xAxis)*(rows/rowStride+1))
	yAxis := make([]string, 0, rows/rowStride+1)
	for i := 0; i < rows; i += rowStride {
		row := spectrum.Row(i)
		yIdx := len(yAxis)
		yAxis = append(yAxis, fmt.Sprintf("%g", spectrum.ThicknessAt(i)))
		for xIdx, j := 0, 0; j < cols; xIdx, j = xIdx+1, j+colStride {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{xIdx, yIdx, row[j]}})
		}
	}

	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Reflectivity spectra of an ambient / thin film / substrate stack",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Reflectivity surface of stack",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Wavelength, nm",
			Type: "category",
			SplitArea: &opts.SplitArea{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Thickness, Å",
			Type: "category",
			Data: yAxis,
			SplitArea: &opts.SplitArea{
				Show: opts.Bool(true),
			},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}),
	)

	hm.SetXAxis(xAxis)
	hm.AddSeries("reflectivity", data)
	return hm
}

// stride picks the subsampling step that keeps n samples at or below limit.
func stride(n, limit int) int {
	s := 1
	for (n+s-1)/s > limit {
		s++
	}
	return s
}
