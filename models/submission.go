package models

// SpotSubmission is the body of a user-submitted spot. The service
// assigns the ID, stamps the source as manual and parks the spot in
// pending until approved. NewVenue carries an inline venue for places
// not yet in the catalog; it is ignored when VenueID is set.
type SpotSubmission struct {
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Area         string      `json:"area"`
	ActivityType string      `json:"activity_type"`
	Location     Coordinates `json:"location"`
	VenueID      string      `json:"venue_id,omitempty"`
	NewVenue     *Venue      `json:"new_venue,omitempty"`
	TimeWindow   string      `json:"time_window,omitempty"`
	Deals        []string    `json:"deals,omitempty"`
	SubmittedBy  string      `json:"submitted_by"`
}
