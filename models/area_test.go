package models

import "testing"

func TestBoundingBox_Contains(t *testing.T) {
	box := BoundingBox{LatMin: 41.90, LatMax: 41.92, LngMin: -87.69, LngMax: -87.66}

	tests := []struct {
		name     string
		point    Coordinates
		expected bool
	}{
		{
			name:     "Inside",
			point:    Coordinates{Lat: 41.91, Lng: -87.68},
			expected: true,
		},
		{
			name:     "On the edge",
			point:    Coordinates{Lat: 41.90, Lng: -87.69},
			expected: true,
		},
		{
			name:     "North of the box",
			point:    Coordinates{Lat: 41.95, Lng: -87.68},
			expected: false,
		},
		{
			name:     "East of the box",
			point:    Coordinates{Lat: 41.91, Lng: -87.60},
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := box.Contains(test.point); got != test.expected {
				t.Errorf("Expected Contains=%v for %+v, got %v", test.expected, test.point, got)
			}
		})
	}
}

func TestAreaCatalog(t *testing.T) {
	// Setup
	catalog := NewAreaCatalog([]Area{
		{Name: "Wicker Park", Center: Coordinates{Lat: 41.9088, Lng: -87.6796}},
		{Name: "Loop", Center: Coordinates{Lat: 41.0, Lng: -87.0}},
		{Name: "Loop", Center: Coordinates{Lat: 41.8819, Lng: -87.6298}}, // later duplicate wins
	})

	// Assert lookups
	area, found := catalog.Get("Wicker Park")
	if !found {
		t.Fatalf("Expected Wicker Park in the catalog")
	}
	if area.Center.Lat != 41.9088 {
		t.Errorf("Expected center lat 41.9088, got %f", area.Center.Lat)
	}

	center, found := catalog.Center("Loop")
	if !found {
		t.Fatalf("Expected Loop in the catalog")
	}
	if center.Lat != 41.8819 {
		t.Errorf("Expected the later duplicate to win, got lat %f", center.Lat)
	}

	if _, found := catalog.Get("Nowhere"); found {
		t.Errorf("Expected no match for an unknown area")
	}

	// Assert stable name order
	names := catalog.Names()
	expected := []string{"Loop", "Wicker Park"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected name %q at %d, got %q", expected[i], i, names[i])
		}
	}
}
