package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thinfilm/entity/mode"
)

func TestUnmarshalText(t *testing.T) {
	cases := []struct {
		text string
		want mode.Mode
	}{
		{"lines", mode.Lines},
		{"heatmap", mode.Heatmap},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			m, err := mode.UnmarshalText(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m)
			assert.Equal(t, tc.text, m.String())
		})
	}

	_, err := mode.UnmarshalText("scatter")
	require.Error(t, err)
}
