package engine

import (
	"sort"
	"strings"
	"time"

	"sm-server/models"
)

// FilterSpots runs the full list computation: narrow the candidates by
// the criteria, annotate each survivor with distance, activity state,
// venue open status and freshness, then order the result. The ambient
// clock is read exactly once so every row in one result set is judged
// against the same instant.
func (e *Engine) FilterSpots(spots []models.Spot, venues map[string]models.Venue, criteria models.FilterCriteria) []models.AnnotatedSpot {
	return e.filterSpotsAt(spots, venues, criteria, e.Now())
}

func (e *Engine) filterSpotsAt(spots []models.Spot, venues map[string]models.Venue, criteria models.FilterCriteria, now time.Time) []models.AnnotatedSpot {
	out := make([]models.AnnotatedSpot, 0, len(spots))
	for _, s := range spots {
		if !matchesCriteria(s, criteria) {
			continue
		}
		out = append(out, models.AnnotatedSpot{
			Spot:       s,
			Annotation: e.annotateSpot(s, venues, criteria.UserLocation, now),
		})
	}
	sortAnnotated(out, criteria.SortMode)
	return out
}

// matchesCriteria applies the filters in a fixed order: area, then
// activity type, then text, then favorites. The sentinel "all" value
// disables the area and activity filters; text matches title or
// description case-insensitively.
func matchesCriteria(s models.Spot, criteria models.FilterCriteria) bool {
	if criteria.Area != "" && criteria.Area != models.AllAreas && s.Area != criteria.Area {
		return false
	}
	if criteria.ActivityType != "" && criteria.ActivityType != models.AllActivities && s.ActivityType != criteria.ActivityType {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(criteria.TextQuery)); q != "" {
		if !strings.Contains(strings.ToLower(s.Title), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) {
			return false
		}
	}
	if criteria.FavoritesOnly {
		if _, ok := criteria.FavoriteIDs[s.ID]; !ok {
			return false
		}
	}
	return true
}

// annotateSpot computes the derived fields for one spot. Distance
// needs a user location and finite coordinates on both ends; open
// status needs a resolvable venue link. Anything missing leaves its
// field unset instead of failing the row.
func (e *Engine) annotateSpot(s models.Spot, venues map[string]models.Venue, userLoc *models.Coordinates, now time.Time) models.ComputedAnnotation {
	ann := models.ComputedAnnotation{
		ActiveNow: e.IsActiveNow(s.TimeWindow, now),
		Freshness: e.ClassifyFreshness(s.LastVerifiedDate, s.LastUpdateDate, now),
	}
	if userLoc != nil && finiteCoord(userLoc.Lat, userLoc.Lng, s.Location.Lat, s.Location.Lng) {
		d := DistanceMiles(userLoc.Lat, userLoc.Lng, s.Location.Lat, s.Location.Lng)
		ann.DistanceMiles = &d
		ann.DistanceLabel = FormatMiles(d)
	}
	if s.VenueID != "" {
		if v, ok := venues[s.VenueID]; ok {
			st := e.EvaluateHours(v.Hours, now)
			ann.OpenStatus = &st
		}
	}
	return ann
}

// sortAnnotated orders the annotated rows for the requested mode. All
// sorts are stable and fall back to title so equal ranks keep a
// deterministic order.
func sortAnnotated(rows []models.AnnotatedSpot, mode models.SortMode) {
	var less func(a, b models.AnnotatedSpot) bool
	switch mode {
	case models.SortNearest:
		less = nearestLess
	case models.SortActivityActive:
		less = activityActiveLess
	case models.SortVenueOpen:
		less = venueOpenLess
	default:
		less = alphaLess
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})
}

func alphaLess(a, b models.AnnotatedSpot) bool {
	return a.Spot.Title < b.Spot.Title
}

// nearestLess ranks by ascending distance with distance-less rows
// last.
func nearestLess(a, b models.AnnotatedSpot) bool {
	da, db := a.Annotation.DistanceMiles, b.Annotation.DistanceMiles
	switch {
	case da != nil && db != nil:
		if *da != *db {
			return *da < *db
		}
		return alphaLess(a, b)
	case da != nil:
		return true
	case db != nil:
		return false
	default:
		return alphaLess(a, b)
	}
}

func activityActiveLess(a, b models.AnnotatedSpot) bool {
	if a.Annotation.ActiveNow != b.Annotation.ActiveNow {
		return a.Annotation.ActiveNow
	}
	return alphaLess(a, b)
}

// venueOpenLess ranks open venues first, and among the open ones
// those about to close ahead of the rest. Rows with no resolvable
// status land with the closed ones.
func venueOpenLess(a, b models.AnnotatedSpot) bool {
	ra, rb := venueOpenRank(a.Annotation.OpenStatus), venueOpenRank(b.Annotation.OpenStatus)
	if ra != rb {
		return ra < rb
	}
	return alphaLess(a, b)
}

func venueOpenRank(st *models.OpenStatus) int {
	switch {
	case st == nil || !st.IsOpen:
		return 2
	case st.Label == models.OpenLabelClosingSoon:
		return 0
	default:
		return 1
	}
}
