package models

// Open-status labels surfaced to list cards, markers and info windows.
// Presentation consumes these verbatim; it must never re-derive them.
const (
	OpenLabelOpen        = "Open"
	OpenLabelClosingSoon = "Closing soon"
	OpenLabelClosed      = "Closed"
)

// OpenStatus is the evaluated operating-hours state of a venue at one
// instant. A venue with no schedule yields the zero value: IsOpen
// false and an empty Label, which renders as unknown rather than
// "Closed". ClosesAt/OpensAt are preformatted 12-hour clock strings
// ("6pm", "9:30am"); OpensAt is only set while closed and only when an
// open boundary exists within the next seven days.
type OpenStatus struct {
	IsOpen   bool   `json:"is_open"`
	Label    string `json:"label,omitempty"`
	ClosesAt string `json:"closes_at,omitempty"`
	OpensAt  string `json:"opens_at,omitempty"`
}

// FreshnessLevel buckets how recently a listing's data was verified or
// updated. Consumers sort and badge on the level; the label wording is
// presentation only.
type FreshnessLevel string

const (
	FreshnessFresh   FreshnessLevel = "fresh"
	FreshnessAging   FreshnessLevel = "aging"
	FreshnessStale   FreshnessLevel = "stale"
	FreshnessUnknown FreshnessLevel = "unknown"
)

type Freshness struct {
	Level FreshnessLevel `json:"level"`
	Label string         `json:"label,omitempty"`
}

// ComputedAnnotation carries everything the engine derives for one
// spot in one evaluation pass. It is produced fresh on every call and
// never cached; the clock advances continuously, so yesterday's
// annotation is already wrong.
type ComputedAnnotation struct {
	DistanceMiles *float64    `json:"distance_miles,omitempty"`
	DistanceLabel string      `json:"distance_label,omitempty"`
	ActiveNow     bool        `json:"active_now"`
	OpenStatus    *OpenStatus `json:"open_status,omitempty"`
	Freshness     Freshness   `json:"freshness"`
}

// AnnotatedSpot pairs a spot with its computed annotation.
type AnnotatedSpot struct {
	Spot       Spot               `json:"spot"`
	Annotation ComputedAnnotation `json:"annotation"`
}

// SpotDetail is the single-spot payload: the annotated spot plus its
// deal lines split into category and text.
type SpotDetail struct {
	AnnotatedSpot
	ParsedDeals []Deal `json:"parsed_deals,omitempty"`
}

// VenueWithStatus pairs a venue with its evaluated status and distance
// from a search origin; the nearby-venue endpoint returns these.
type VenueWithStatus struct {
	Venue         Venue      `json:"venue"`
	DistanceMiles float64    `json:"distance_miles"`
	DistanceLabel string     `json:"distance_label"`
	OpenStatus    OpenStatus `json:"open_status"`
}
