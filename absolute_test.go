package xirr

import (
	"errors"
	"testing"
)

func TestAbsoluteRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		days int
		want Percent
	}{
		{"half a year", 0.1, 180, 4.81},
		{"a year", 0.1, 365, 10},
		{"more than a year", 0.1234567, 400, 12.35},
		{"negative rate", -0.2, 365, -20},
		{"negative short rate", -0.2, 73, -4.36},
		{"no time", 0.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AbsoluteRate(tt.rate, tt.days)
			if err != nil {
				t.Fatalf("AbsoluteRate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AbsoluteRate(%v, %d) = %v, want %v", tt.rate, tt.days, got, tt.want)
			}
		})
	}
}

func TestAbsoluteRate_Errors(t *testing.T) {
	for _, days := range []int{0, 30, 365, 1000} {
		if _, err := AbsoluteRate(0, days); !errors.Is(err, ErrZeroRate) || err.Error() != "Rate is 0" {
			t.Errorf("AbsoluteRate(0, %d) error = %v, want %v", days, err, ErrZeroRate)
		}
	}
	// (1-3)^(1/365) has no real value.
	if _, err := AbsoluteRate(-3, 1); !errors.Is(err, ErrNonFiniteRate) {
		t.Errorf("AbsoluteRate(-3, 1) error = %v, want %v", err, ErrNonFiniteRate)
	}
}

func TestPercent_String(t *testing.T) {
	tests := []struct {
		p         Percent
		str, sign string
	}{
		{4.81, "4.81%", "+4.81%"},
		{-20, "-20.00%", "-20.00%"},
		{0, "0.00%", "-"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.p.SignedString(); got != tt.sign {
			t.Errorf("SignedString() = %q, want %q", got, tt.sign)
		}
	}
	if !Percent(4.81).Equal(4.81001) {
		t.Error("Equal() = false, want true")
	}
}
