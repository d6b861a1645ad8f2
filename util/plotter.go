package util

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"sm-server/engine"
	"sm-server/models"
)

// PlotSpotMap generates an HTML file rendering every spot inside an
// area's bounding box.
func PlotSpotMap(spots []models.Spot, box models.BoundingBox, outPath string) {
	// Define the points forming the bounding box polygon.
	points := []opts.GeoData{
		{Name: "SW", Value: []float64{box.LngMin, box.LatMin}},
		{Name: "NW", Value: []float64{box.LngMin, box.LatMax}},
		{Name: "NE", Value: []float64{box.LngMax, box.LatMax}},
		{Name: "SE", Value: []float64{box.LngMax, box.LatMin}},
		{Name: "SW", Value: []float64{box.LngMin, box.LatMin}}, // Close the polygon.
	}

	spotPoints := make([]opts.GeoData, 0, len(spots))
	for _, s := range spots {
		spotPoints = append(spotPoints, opts.GeoData{
			Name:  s.Title,
			Value: []float64{s.Location.Lng, s.Location.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Spot Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("BoundingBox", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Spots", types.ChartScatter, spotPoints,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Spot map generated: " + outPath)
}

// PlotActivityHeatmap generates an HTML heatmap of how many promotion
// windows cover each hour of each weekday. Spots whose descriptors do
// not parse contribute nothing.
func PlotActivityHeatmap(spots []models.Spot, outPath string) {
	var counts [7][24]int
	for _, s := range spots {
		for _, w := range engine.ParseActivityWindows(s.TimeWindow) {
			days := w.Days
			if len(days) == 0 {
				days = []time.Weekday{
					time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
					time.Thursday, time.Friday, time.Saturday,
				}
			}
			for _, d := range days {
				markWindowHours(&counts[int(d)], w.StartMinute, w.EndMinute)
			}
		}
	}

	hourLabels := make([]string, 24)
	for h := 0; h < 24; h++ {
		hourLabels[h] = fmt.Sprintf("%02d", h)
	}
	dayLabels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	maxCount := 0
	data := make([]opts.HeatMapData, 0, 7*24)
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			if counts[d][h] > maxCount {
				maxCount = counts[d][h]
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{h, d, counts[d][h]}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Activity Windows",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      dayLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
		}),
	)
	hm.SetXAxis(hourLabels).AddSeries("windows", data)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := hm.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Activity heatmap generated: " + outPath)
}

// markWindowHours bumps the hour buckets a window touches, wrapping
// past midnight when the end minute precedes the start.
func markWindowHours(hours *[24]int, startMin, endMin int) {
	if startMin == endMin {
		return
	}
	for h := 0; h < 24; h++ {
		minute := h * 60
		inside := false
		if startMin < endMin {
			inside = minute >= startMin && minute < endMin
		} else {
			inside = minute >= startMin || minute < endMin
		}
		if inside {
			hours[h]++
		}
	}
}
