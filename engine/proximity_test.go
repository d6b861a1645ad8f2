package engine

import (
	"math"
	"testing"
)

func TestDistanceMiles_IdenticalPoints(t *testing.T) {
	if got := DistanceMiles(41.8781, -87.6298, 41.8781, -87.6298); got != 0 {
		t.Errorf("Expected 0 for identical points, got %f", got)
	}
}

func TestDistanceMiles_Symmetry(t *testing.T) {
	a := DistanceMiles(41.8781, -87.6298, 41.9484, -87.6553)
	b := DistanceMiles(41.9484, -87.6553, 41.8781, -87.6298)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Expected symmetric distance, got %f and %f", a, b)
	}
}

func TestDistanceMiles_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		want      float64
		tolerance float64
	}{
		{
			name: "one degree of latitude",
			lat1: 0, lng1: 0, lat2: 1, lng2: 0,
			want: 69.1, tolerance: 0.2,
		},
		{
			name: "new york to los angeles",
			lat1: 40.7128, lng1: -74.0060, lat2: 34.0522, lng2: -118.2437,
			want: 2445, tolerance: 10,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := DistanceMiles(test.lat1, test.lng1, test.lat2, test.lng2)
			if math.Abs(got-test.want) > test.tolerance {
				t.Errorf("Expected distance near %f, got %f", test.want, got)
			}
		})
	}
}

func TestDistanceMiles_CloserPointIsSmaller(t *testing.T) {
	// Two venues north of the same origin, one farther out.
	origin := [2]float64{41.8781, -87.6298}
	near := DistanceMiles(origin[0], origin[1], 41.8850, -87.6300)
	far := DistanceMiles(origin[0], origin[1], 41.9484, -87.6553)
	if near >= far {
		t.Errorf("Expected %f < %f", near, far)
	}
}

func TestFormatMiles(t *testing.T) {
	tests := []struct {
		miles float64
		want  string
	}{
		{miles: 0.0, want: "<0.1 mi"},
		{miles: 0.05, want: "<0.1 mi"},
		{miles: 0.1, want: "0.1 mi"},
		{miles: 0.3, want: "0.3 mi"},
		{miles: 4.2, want: "4.2 mi"},
		{miles: 9.94, want: "9.9 mi"},
		{miles: 10.0, want: "10 mi"},
		{miles: 23.4, want: "23 mi"},
	}

	for _, test := range tests {
		if got := FormatMiles(test.miles); got != test.want {
			t.Errorf("FormatMiles(%f): expected %q, got %q", test.miles, test.want, got)
		}
	}
}

func TestFiniteCoord(t *testing.T) {
	if !finiteCoord(41.8, -87.6, 0, -0.0) {
		t.Errorf("Expected finite coordinates to pass")
	}
	if finiteCoord(math.NaN(), 0) {
		t.Errorf("Expected NaN to fail")
	}
	if finiteCoord(math.Inf(1), 0) {
		t.Errorf("Expected +Inf to fail")
	}
}
