package date

import (
	"encoding/json"
	"testing"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	got := New(2024, 2, 30)
	if want := New(2024, 3, 1); got != want {
		t.Errorf("New(2024, 2, 30) = %v, want %v", got, want)
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		on   Date
		want int
	}{
		{New(1970, 1, 1), 0},
		{New(1970, 1, 2), 1},
		{New(1969, 12, 31), -1},
		{New(2000, 3, 1), 11017},
	}
	for _, tt := range tests {
		t.Run(tt.on.String(), func(t *testing.T) {
			if got := tt.on.Days(); got != tt.want {
				t.Errorf("%v.Days() = %d, want %d", tt.on, got, tt.want)
			}
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"same day", New(2015, 6, 1), New(2015, 6, 1), 0},
		{"four days", New(2017, 1, 5), New(2017, 1, 1), 4},
		{"leap years", New(1990, 1, 1), New(1985, 1, 1), 1826},
		{"backward", New(2015, 6, 1), New(2015, 11, 1), -153},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Sub(tt.b); got != tt.want {
				t.Errorf("%v.Sub(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMin(t *testing.T) {
	got := Min(MustParse("2015-11-01"), MustParse("2015-10-01"), MustParse("2015-06-01"))
	if want := MustParse("2015-06-01"); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got := Min(); !got.IsZero() {
		t.Errorf("Min() of nothing = %v, want zero date", got)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if d != New(2025, 7, 1) {
		t.Errorf("Parse() = %v, want 2025-07-01", d)
	}
	if _, err := Parse("01/07/2025"); err == nil {
		t.Error("Parse() expected an error for an invalid format")
	}
}

func TestJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2014-04-15"`), &d); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(got) != `"2014-04-15"` {
		t.Errorf("Marshal() = %s, want %q", got, "2014-04-15")
	}
}
