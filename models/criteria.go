package models

// SortMode selects the comparator the filter pipeline orders with.
type SortMode string

const (
	SortAlpha          SortMode = "alpha"
	SortNearest        SortMode = "nearest"
	SortActivityActive SortMode = "activityActive"
	SortVenueOpen      SortMode = "venueOpen"
)

// Sentinel values meaning "no filter" for the area and activity-type
// criteria.
const (
	AllAreas      = "all"
	AllActivities = "all"
)

// FilterCriteria describes one list/search evaluation. Zero values
// mean "not filtered on". FavoriteIDs is only consulted when
// FavoritesOnly is set; the caller supplies it (the engine has no
// notion of users).
type FilterCriteria struct {
	Area          string
	ActivityType  string
	TextQuery     string
	FavoritesOnly bool
	FavoriteIDs   map[int]struct{}
	SortMode      SortMode
	UserLocation  *Coordinates
}
