package feed

import (
	"fmt"

	"sm-server/models"
	"sm-server/util"
)

// SpotFeedClientMock serves the feed from a JSON file on disk instead
// of the network.
type SpotFeedClientMock struct {
	resourcePath string
}

// NewSpotFeedClientMock creates a new instance of SpotFeedClientMock
// reading from the given resource file.
func NewSpotFeedClientMock(resourcePath string) *SpotFeedClientMock {
	return &SpotFeedClientMock{resourcePath: resourcePath}
}

// SetAPIKey is a no-op; the file-backed feed has nothing to
// authenticate against.
func (c *SpotFeedClientMock) SetAPIKey(key string) {
}

// FetchFeed reads the feed export from disk and decodes it into the
// response struct.
func (c *SpotFeedClientMock) FetchFeed() (*models.SpotFeedResponse, error) {
	response, err := util.ReadSpotFeedResponseFromJSON(c.resourcePath)
	if err != nil {
		fmt.Println("Could not read spot feed response from json")
		return nil, err
	}
	return response, nil
}
