package util

import (
	"os"
	"path/filepath"
	"testing"

	"sm-server/models"
)

func TestPlotSpotMap(t *testing.T) {
	// Setup
	spots := []models.Spot{
		{
			ID:       1,
			Title:    "Patio Happy Hour",
			Location: models.Coordinates{Lat: 41.9088, Lng: -87.6796},
		},
	}
	box := models.BoundingBox{LatMin: 41.90, LatMax: 41.92, LngMin: -87.69, LngMax: -87.66}
	outPath := filepath.Join(t.TempDir(), "spot_map.html")

	// Act
	PlotSpotMap(spots, box, outPath)

	// Assert
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("Expected rendered file at %s, got error %v", outPath, err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty rendered file, got empty")
	}
}

func TestPlotActivityHeatmap(t *testing.T) {
	// Setup
	spots := []models.Spot{
		{ID: 1, Title: "Evening Special", TimeWindow: "4pm-6pm • Monday-Friday"},
		{ID: 2, Title: "Late Night", TimeWindow: "10pm-2am • Friday-Saturday"},
		{ID: 3, Title: "No Window"},
	}
	outPath := filepath.Join(t.TempDir(), "activity_heatmap.html")

	// Act
	PlotActivityHeatmap(spots, outPath)

	// Assert
	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("Expected rendered file at %s, got error %v", outPath, err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty rendered file, got empty")
	}
}

func TestMarkWindowHours(t *testing.T) {
	// Setup
	var hours [24]int

	// Act
	markWindowHours(&hours, 22*60, 2*60)

	// Assert
	marked := []int{}
	for h, n := range hours {
		if n > 0 {
			marked = append(marked, h)
		}
	}
	expected := []int{0, 1, 22, 23}
	if len(marked) != len(expected) {
		t.Fatalf("Expected %d marked hours, got %d", len(expected), len(marked))
	}
	for i, h := range expected {
		if marked[i] != h {
			t.Errorf("Expected hour %d marked, got %d", h, marked[i])
		}
	}
}
