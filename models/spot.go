package models

import (
	"fmt"
	"strings"
	"time"
)

// SpotSource tells how a spot entered the catalog.
type SpotSource string

const (
	SourceAutomated SpotSource = "automated"
	SourceManual    SpotSource = "manual"
)

// SpotStatus is the moderation lifecycle state of a spot.
type SpotStatus string

const (
	SpotPending  SpotStatus = "pending"
	SpotApproved SpotStatus = "approved"
)

// Activity type tags used by the seed data. The engine treats the tag
// as opaque; these exist so seeds and tests agree on spelling.
const (
	ActivityHappyHour = "Happy Hour"
	ActivityBrunch    = "Brunch"
	ActivityLiveMusic = "Live Music"
	ActivityTrivia    = "Trivia"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Spot is a single activity listing shown on the map/list. The engine
// only ever reads it; creation and edits happen upstream.
type Spot struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Area         string      `json:"area"`
	ActivityType string      `json:"activity_type"`
	Location     Coordinates `json:"location"`

	// VenueID is a weak reference into the venue set; "" when the spot
	// is not linked to a venue.
	VenueID string `json:"venue_id,omitempty"`

	// TimeWindow is the free-text promotion descriptor, e.g.
	// "4pm-6pm • Monday-Friday". It is the sole source of truth for
	// whether the promotion is active right now.
	TimeWindow string `json:"time_window,omitempty"`

	// Deals are display lines, each optionally prefixed with a
	// bracketed category label, e.g. "[Drinks] $5 wells".
	Deals []string `json:"deals,omitempty"`

	LastUpdateDate   *time.Time `json:"last_update_date,omitempty"`
	LastVerifiedDate *time.Time `json:"last_verified_date,omitempty"`

	Source      SpotSource `json:"source"`
	SubmittedBy string     `json:"submitted_by,omitempty"`
	Status      SpotStatus `json:"status,omitempty"`
}

func (s *Spot) ToString() string {
	return fmt.Sprintf("Spot(id=%d, title=%s, activity=%s, area=%s)",
		s.ID, s.Title, s.ActivityType, s.Area)
}

// Deal is one promotion line split into its optional category label
// and display text.
type Deal struct {
	Category string `json:"category,omitempty"`
	Text     string `json:"text"`
}

// ParseDealLine splits "[Drinks] $5 wells" into category "Drinks" and
// text "$5 wells". Lines without a bracketed prefix come back with an
// empty category and the trimmed line as text.
func ParseDealLine(line string) Deal {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.Index(trimmed, "]"); end > 0 {
			return Deal{
				Category: strings.TrimSpace(trimmed[1:end]),
				Text:     strings.TrimSpace(trimmed[end+1:]),
			}
		}
	}
	return Deal{Text: trimmed}
}
