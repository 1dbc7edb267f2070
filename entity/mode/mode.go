package mode

import "fmt"

// Mode selects how the reflectivity surface is charted.
type Mode uint8

const (
	// Lines plots a subsample of per-thickness spectra as separate series.
	Lines Mode = iota
	// Heatmap plots the full thickness×wavelength surface.
	Heatmap
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "lines":
		return Lines, nil
	case "heatmap":
		return Heatmap, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Lines:
		return "lines"
	case Heatmap:
		return "heatmap"
	default:
		return "unknown"
	}
}
