package finance

import (
	"math"
	"testing"
)

func TestCumulativeInflation(t *testing.T) {
	tests := []struct {
		name     string
		rates    []float64
		expected float64
	}{
		{
			name:     "Reference scenario",
			rates:    []float64{0.5, 0.3, 0.8, 0.4},
			expected: 2.01,
		},
		{
			name:     "Empty sequence",
			rates:    []float64{},
			expected: 0.0,
		},
		{
			name:     "Nil sequence",
			rates:    nil,
			expected: 0.0,
		},
		{
			name:     "Single rate",
			rates:    []float64{1.0},
			expected: 1.0,
		},
		{
			name:     "Deflation",
			rates:    []float64{-0.5, -0.5},
			expected: -1.0,
		},
		{
			name:     "Full year at half percent",
			rates:    []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
			expected: 6.17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CumulativeInflation(tt.rates)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("CumulativeInflation(%v) = %v, expected %v", tt.rates, result, tt.expected)
			}
		})
	}
}
