package engine

import (
	"math"
	"testing"
	"time"

	"sm-server/models"
)

// The pipeline fixtures sit around a downtown origin; the two offsets
// below put venues 0.3 and 4.2 miles due north of it.
var (
	testOrigin = models.Coordinates{Lat: 41.8781, Lng: -87.6298}
	nearCoords = models.Coordinates{Lat: 41.8781 + 0.004342, Lng: -87.6298}
	farCoords  = models.Coordinates{Lat: 41.8781 + 0.060784, Lng: -87.6298}
)

func testSpots(now time.Time) []models.Spot {
	recent := now.AddDate(0, 0, -2)
	old := now.AddDate(0, 0, -60)
	return []models.Spot{
		{
			ID:             1,
			Title:          "Barrel Room Happy Hour",
			Description:    "Half price drafts and well drinks",
			Area:           "river-north",
			ActivityType:   models.ActivityHappyHour,
			Location:       nearCoords,
			VenueID:        "venue-a",
			TimeWindow:     "4pm-6pm • Monday-Friday",
			LastUpdateDate: &recent,
		},
		{
			ID:             2,
			Title:          "Taco Tuesday",
			Description:    "Street tacos and tecate specials",
			Area:           "wicker-park",
			ActivityType:   models.ActivityHappyHour,
			Location:       farCoords,
			VenueID:        "venue-b",
			TimeWindow:     "7pm-9pm • Tuesday",
			LastUpdateDate: &old,
		},
		{
			ID:           3,
			Title:        "Vinyl Night",
			Description:  "Local DJs spin records",
			Area:         "river-north",
			ActivityType: models.ActivityLiveMusic,
			Location:     farCoords,
			TimeWindow:   "8pm-11pm • Weekends",
		},
	}
}

func testVenues() map[string]models.Venue {
	return map[string]models.Venue{
		"venue-a": {
			ID:       "venue-a",
			Name:     "Barrel Room",
			Location: nearCoords,
			Hours:    hoursDaily("09:00", "17:00"),
		},
		"venue-b": {
			ID:       "venue-b",
			Name:     "Taqueria El Norte",
			Location: farCoords,
			Hours:    hoursDaily("09:00", "19:00"),
		},
	}
}

func TestFilterSpots_AreaAndActivity(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 12, 0)
	spots := testSpots(now)
	venues := testVenues()

	tests := []struct {
		name     string
		criteria models.FilterCriteria
		wantIDs  []int
	}{
		{
			name:     "no criteria keeps everything",
			criteria: models.FilterCriteria{},
			wantIDs:  []int{1, 2, 3},
		},
		{
			name:     "all sentinels keep everything",
			criteria: models.FilterCriteria{Area: models.AllAreas, ActivityType: models.AllActivities},
			wantIDs:  []int{1, 2, 3},
		},
		{
			name:     "area narrows",
			criteria: models.FilterCriteria{Area: "river-north"},
			wantIDs:  []int{1, 3},
		},
		{
			name:     "activity narrows",
			criteria: models.FilterCriteria{ActivityType: models.ActivityHappyHour},
			wantIDs:  []int{1, 2},
		},
		{
			name:     "area and activity combine",
			criteria: models.FilterCriteria{Area: "river-north", ActivityType: models.ActivityLiveMusic},
			wantIDs:  []int{3},
		},
		{
			name:     "no match yields empty result",
			criteria: models.FilterCriteria{Area: "hyde-park"},
			wantIDs:  []int{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := eng.filterSpotsAt(spots, venues, test.criteria, now)
			if len(got) != len(test.wantIDs) {
				t.Fatalf("Expected %d spots, got %d", len(test.wantIDs), len(got))
			}
			seen := make(map[int]bool)
			for _, row := range got {
				seen[row.Spot.ID] = true
			}
			for _, id := range test.wantIDs {
				if !seen[id] {
					t.Errorf("Expected spot %d in result", id)
				}
			}
		})
	}
}

func TestFilterSpots_TextQuery(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 12, 0)
	spots := testSpots(now)
	venues := testVenues()

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{name: "matches title case-insensitively", query: "TACO", wantIDs: []int{2}},
		{name: "matches description", query: "drafts", wantIDs: []int{1}},
		{name: "whitespace only is a no-op", query: "   ", wantIDs: []int{1, 2, 3}},
		{name: "no hits", query: "karaoke", wantIDs: []int{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := eng.filterSpotsAt(spots, venues, models.FilterCriteria{TextQuery: test.query}, now)
			if len(got) != len(test.wantIDs) {
				t.Fatalf("Expected %d spots for %q, got %d", len(test.wantIDs), test.query, len(got))
			}
		})
	}
}

func TestFilterSpots_FavoritesOnly(t *testing.T) {
	// Setup
	eng := testEngine()
	now := localTime(4, 12, 0)
	criteria := models.FilterCriteria{
		FavoritesOnly: true,
		FavoriteIDs:   map[int]struct{}{2: {}},
	}

	// Act
	got := eng.filterSpotsAt(testSpots(now), testVenues(), criteria, now)

	// Assert
	if len(got) != 1 {
		t.Fatalf("Expected 1 favorite, got %d", len(got))
	}
	if got[0].Spot.ID != 2 {
		t.Errorf("Expected spot 2, got %d", got[0].Spot.ID)
	}

	// An empty favorite set with the flag on filters everything out.
	got = eng.filterSpotsAt(testSpots(now), testVenues(), models.FilterCriteria{FavoritesOnly: true}, now)
	if len(got) != 0 {
		t.Errorf("Expected no favorites, got %d", len(got))
	}
}

func TestFilterSpots_Annotations(t *testing.T) {
	// Wednesday 16:30: the happy hour window is active and venue-a
	// (closing at 17:00) is about to close.
	eng := testEngine()
	now := localTime(4, 16, 30)
	criteria := models.FilterCriteria{UserLocation: &testOrigin}

	rows := eng.filterSpotsAt(testSpots(now), testVenues(), criteria, now)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 spots, got %d", len(rows))
	}
	byID := make(map[int]models.AnnotatedSpot)
	for _, row := range rows {
		byID[row.Spot.ID] = row
	}

	// Distance and label.
	near := byID[1]
	if near.Annotation.DistanceMiles == nil {
		t.Fatalf("Expected a distance for spot 1")
	}
	if near.Annotation.DistanceLabel != "0.3 mi" {
		t.Errorf("Expected label 0.3 mi, got %q", near.Annotation.DistanceLabel)
	}
	far := byID[2]
	if far.Annotation.DistanceLabel != "4.2 mi" {
		t.Errorf("Expected label 4.2 mi, got %q", far.Annotation.DistanceLabel)
	}

	// Activity window state.
	if !near.Annotation.ActiveNow {
		t.Errorf("Expected weekday happy hour to be active on Wednesday 16:30")
	}
	if far.Annotation.ActiveNow {
		t.Errorf("Expected Tuesday-only window to be inactive on Wednesday")
	}

	// Venue open status through the link.
	if near.Annotation.OpenStatus == nil {
		t.Fatalf("Expected an open status for spot 1")
	}
	if near.Annotation.OpenStatus.Label != models.OpenLabelClosingSoon {
		t.Errorf("Expected label %q, got %q", models.OpenLabelClosingSoon, near.Annotation.OpenStatus.Label)
	}
	if byID[3].Annotation.OpenStatus != nil {
		t.Errorf("Expected nil open status for an unlinked spot")
	}

	// Freshness levels.
	if near.Annotation.Freshness.Level != models.FreshnessFresh {
		t.Errorf("Expected fresh, got %q", near.Annotation.Freshness.Level)
	}
	if far.Annotation.Freshness.Level != models.FreshnessStale {
		t.Errorf("Expected stale, got %q", far.Annotation.Freshness.Level)
	}
	if byID[3].Annotation.Freshness.Level != models.FreshnessUnknown {
		t.Errorf("Expected unknown freshness, got %q", byID[3].Annotation.Freshness.Level)
	}
}

func TestFilterSpots_NoUserLocation(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 12, 0)

	rows := eng.filterSpotsAt(testSpots(now), testVenues(), models.FilterCriteria{}, now)
	for _, row := range rows {
		if row.Annotation.DistanceMiles != nil {
			t.Errorf("Expected no distance without a user location, spot %d has one", row.Spot.ID)
		}
		if row.Annotation.DistanceLabel != "" {
			t.Errorf("Expected empty distance label, got %q", row.Annotation.DistanceLabel)
		}
	}
}

func TestFilterSpots_SortModes(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 16, 30)
	spots := testSpots(now)
	venues := testVenues()

	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     []int
	}{
		{
			name:     "default is alphabetical",
			criteria: models.FilterCriteria{},
			want:     []int{1, 2, 3}, // Barrel, Taco, Vinyl
		},
		{
			name:     "nearest",
			criteria: models.FilterCriteria{SortMode: models.SortNearest, UserLocation: &testOrigin},
			want:     []int{1, 2, 3}, // 0.3, then 4.2 twice with title tiebreak
		},
		{
			name:     "active windows first",
			criteria: models.FilterCriteria{SortMode: models.SortActivityActive},
			want:     []int{1, 2, 3},
		},
		{
			name:     "open venues first",
			criteria: models.FilterCriteria{SortMode: models.SortVenueOpen},
			want:     []int{1, 2, 3}, // closing soon, open, no status
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rows := eng.filterSpotsAt(spots, venues, test.criteria, now)
			if len(rows) != len(test.want) {
				t.Fatalf("Expected %d rows, got %d", len(test.want), len(rows))
			}
			for i, id := range test.want {
				if rows[i].Spot.ID != id {
					t.Errorf("Position %d: expected spot %d, got %d", i, id, rows[i].Spot.ID)
				}
			}
		})
	}
}

func TestFilterSpots_ClosingSoonRanksBeforeOpen(t *testing.T) {
	// Venue A closes in 20 minutes, venue B in 2 hours. Both are open,
	// but A should lead the venueOpen order despite its later title.
	eng := testEngine()
	now := localTime(4, 16, 40)
	venues := map[string]models.Venue{
		"venue-a": {ID: "venue-a", Name: "A", Hours: hoursDaily("09:00", "17:00")},
		"venue-b": {ID: "venue-b", Name: "B", Hours: hoursDaily("09:00", "18:40")},
	}
	spots := []models.Spot{
		{ID: 1, Title: "Aperitivo", VenueID: "venue-b"},
		{ID: 2, Title: "Zinc Bar Special", VenueID: "venue-a"},
	}

	rows := eng.filterSpotsAt(spots, venues, models.FilterCriteria{SortMode: models.SortVenueOpen}, now)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Spot.ID != 2 {
		t.Errorf("Expected the closing-soon venue first, got spot %d", rows[0].Spot.ID)
	}
}

func TestFilterSpots_NearestPutsMissingDistanceLast(t *testing.T) {
	eng := testEngine()
	now := localTime(4, 12, 0)
	spots := []models.Spot{
		{ID: 1, Title: "Alpha", Location: models.Coordinates{Lat: math.NaN(), Lng: 0}},
		{ID: 2, Title: "Bravo", Location: farCoords},
		{ID: 3, Title: "Charlie", Location: nearCoords},
	}
	criteria := models.FilterCriteria{SortMode: models.SortNearest, UserLocation: &testOrigin}

	rows := eng.filterSpotsAt(spots, map[string]models.Venue{}, criteria, now)
	want := []int{3, 2, 1}
	for i, id := range want {
		if rows[i].Spot.ID != id {
			t.Errorf("Position %d: expected spot %d, got %d", i, id, rows[i].Spot.ID)
		}
	}
	if rows[2].Annotation.DistanceMiles != nil {
		t.Errorf("Expected no distance for unresolvable coordinates")
	}
}

func TestFilterSpots_ReadsClockOnce(t *testing.T) {
	// A clock that jumps an hour on every read. If the pipeline read it
	// per spot, the second row's venue would already be closed.
	calls := 0
	clock := func() time.Time {
		calls++
		return localTime(4, 12, 0).Add(time.Duration(calls-1) * time.Hour)
	}
	eng := NewWithClock(testZone, clock)
	venues := map[string]models.Venue{
		"venue-a": {ID: "venue-a", Name: "A", Hours: hoursDaily("09:00", "12:30")},
	}
	spots := []models.Spot{
		{ID: 1, Title: "First", VenueID: "venue-a"},
		{ID: 2, Title: "Second", VenueID: "venue-a"},
	}

	rows := eng.FilterSpots(spots, venues, models.FilterCriteria{})
	for _, row := range rows {
		if row.Annotation.OpenStatus == nil || !row.Annotation.OpenStatus.IsOpen {
			t.Errorf("Expected spot %d evaluated at the first clock read, got %+v", row.Spot.ID, row.Annotation.OpenStatus)
		}
	}
	if calls != 1 {
		t.Errorf("Expected exactly one clock read, got %d", calls)
	}
}
