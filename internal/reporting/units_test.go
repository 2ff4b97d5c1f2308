package reporting

import "testing"

func TestMetresToMiles(t *testing.T) {
	tests := []struct {
		name   string
		metres int64
		want   float64
	}{
		{"one kilometre", 1000, 0.621371},
		{"zero", 0, 0},
		{"six kilometres", 6000, 3.728226},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MetresToMiles(tt.metres)
			if !closeEnough(got, tt.want) {
				t.Errorf("MetresToMiles(%d) = %v, want %v", tt.metres, got, tt.want)
			}
		})
	}
}

func TestMetresToMilesExactForOneKilometre(t *testing.T) {
	if got := MetresToMiles(1000); got != 0.621371 {
		t.Errorf("MetresToMiles(1000) = %v, want exactly 0.621371", got)
	}
}

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
