package mathutil

import (
	"math"
	"testing"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		places   int
		expected float64
	}{
		{"Round up at midpoint", 1.235, 2, 1.24},
		{"Round down below midpoint", 1.234, 2, 1.23},
		{"No rounding needed", 1.23, 2, 1.23},
		{"Large number", 12345.678, 2, 12345.68},
		{"Negative number round up", -1.235, 2, -1.24},
		{"Negative number round down", -1.234, 2, -1.23},
		{"Zero", 0.0, 2, 0.0},
		{"Zero places", 2.5, 0, 3.0},
		{"Four places", 0.123456, 4, 0.1235},
		{"One place", 9.95, 1, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundTo(tt.input, tt.places)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("RoundTo(%v, %d) = %v, expected %v", tt.input, tt.places, result, tt.expected)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"Very small positive", 0.001, 0.00},
		{"Very small negative", -0.001, 0.00},
		{"Nearly two cents", 0.019, 0.02},
		{"Large negative", -12345.678, -12345.68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Exactly tolerance", 0.01, true},
		{"Large negative", -100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsZero(tt.input)
			if result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.001, 1.002, 0.01) {
		t.Errorf("WithinTolerance(1.001, 1.002, 0.01) = false, expected true")
	}
	if WithinTolerance(1.0, 2.0, 0.5) {
		t.Errorf("WithinTolerance(1.0, 2.0, 0.5) = true, expected false")
	}
}

func TestMax(t *testing.T) {
	if Max(0, -3.2) != 0 {
		t.Errorf("Max(0, -3.2) should be 0")
	}
	if Max(1.5, 2.5) != 2.5 {
		t.Errorf("Max(1.5, 2.5) should be 2.5")
	}
}
