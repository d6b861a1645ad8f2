package models

import "time"

// SpotFeedResponse is the payload returned by the automated ingestion
// feed: the full current snapshot of spots and the venues they link
// to.
type SpotFeedResponse struct {
	Status      string    `json:"status"`
	GeneratedAt time.Time `json:"generated_at"`
	Spots       []Spot    `json:"spots"`
	Venues      []Venue   `json:"venues"`
	SpotsN      int       `json:"spots_n"`
	VenuesN     int       `json:"venues_n"`
}
