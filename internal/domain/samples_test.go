package domain

import (
	"testing"

	m "github.com/mouse-blink/turtle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	tests := []struct {
		key         string
		wantName    string
		wantMetrics m.Metrics
		wantFinal   m.Position
		wantDir     m.Direction
	}{
		{SampleBasic, "Rectangle1", m.Metrics{CommandCount: 8}, m.NewPosition(0, 0), m.East},
		{SampleAdvanced, "Rectangle2", m.Metrics{CommandCount: 3, MaxNestingLevel: 1, RepeatCount: 1}, m.NewPosition(0, 0), m.East},
		{SampleExpert, "Random", m.Metrics{CommandCount: 11, MaxNestingLevel: 1, RepeatCount: 2}, m.NewPosition(1, 0), m.South},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := Sample(tt.key)
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantMetrics, p.CalculateMetrics())

			result := p.Execute()
			assert.Equal(t, m.StatusSuccess, result.Status)
			assert.Equal(t, tt.wantFinal, result.FinalPosition)
			assert.Equal(t, tt.wantDir, result.FinalDirection)
		})
	}
}

func TestSample_FreshCopies(t *testing.T) {
	a, err := Sample(SampleExpert)
	require.NoError(t, err)

	b, err := Sample(SampleExpert)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, a.TextRepresentation(), b.TextRepresentation())
}

func TestSample_Unknown(t *testing.T) {
	_, err := Sample("nope")

	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, []string{"basic", "advanced", "expert"}, SampleNames())
}
