package feed

import (
	"sm-server/models"
)

// SpotFeedAPI defines the interface for pulling the community spot
// feed, the periodic export of spots and venues this server ingests.
type SpotFeedAPI interface {
	FetchFeed() (*models.SpotFeedResponse, error)
	SetAPIKey(key string)
}
