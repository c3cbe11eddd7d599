package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func responses(probabilities ...int) []Availability {
	out := make([]Availability, len(probabilities))
	for i, p := range probabilities {
		out[i] = Availability{Probability: p}
	}
	return out
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		input []Availability
		want  SlotStats
	}{
		{
			name:  "no responses",
			input: nil,
			want:  SlotStats{},
		},
		{
			name:  "empty slice",
			input: []Availability{},
			want:  SlotStats{},
		},
		{
			name:  "mixed responses",
			input: responses(100, 50, 0),
			want:  SlotStats{ResponseCount: 3, AvailableCount: 2, UnavailableCount: 1, AverageProbability: 50},
		},
		{
			name:  "half rounds up",
			input: responses(1, 2),
			want:  SlotStats{ResponseCount: 2, AvailableCount: 2, AverageProbability: 2},
		},
		{
			name:  "below half rounds down",
			input: responses(0, 0, 1),
			want:  SlotStats{ResponseCount: 3, AvailableCount: 1, UnavailableCount: 2, AverageProbability: 0},
		},
		{
			name:  "all unavailable",
			input: responses(0, 0),
			want:  SlotStats{ResponseCount: 2, UnavailableCount: 2},
		},
		{
			name:  "values are not clamped",
			input: responses(150, 50),
			want:  SlotStats{ResponseCount: 2, AvailableCount: 2, AverageProbability: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStats(tt.input))
		})
	}
}

func TestComputeStats_OrderIndependent(t *testing.T) {
	a := ComputeStats(responses(25, 0, 100, 70))
	b := ComputeStats(responses(100, 70, 25, 0))
	assert.Equal(t, a, b)
}
