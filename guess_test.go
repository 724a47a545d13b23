package xirr

import "testing"

func TestGuessRate(t *testing.T) {
	tests := []struct {
		name     string
		amounts  []float64
		decimals int32
		want     float64
	}{
		{"bond", []float64{1000, -600, -200}, 3, 0.633},
		{"short loan", []float64{-800000, -2200000, 1000000}, 3, 0.206},
		{"savings plan", savingsPlan.amounts, 6, 0.101631},
		{"zero minimum", []float64{0, 5}, 3, 1},
		{"single flow", []float64{-5}, 6, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GuessRate(tt.amounts, tt.decimals); got != tt.want {
				t.Errorf("GuessRate(%v, %d) = %v, want %v", tt.amounts, tt.decimals, got, tt.want)
			}
		})
	}
}
