package feed

import (
	"sm-server/api"
	"sm-server/models"
)

// SpotFeedClient embeds the common HTTPClient
type SpotFeedClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewSpotFeedClient creates a new instance of SpotFeedClient
func NewSpotFeedClient(httpClient *api.HTTPClient) *SpotFeedClient {
	return &SpotFeedClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the key sent with every feed request.
func (c *SpotFeedClient) SetAPIKey(key string) {
	c.apiKey = key
}

// FetchFeed retrieves the current feed export and decodes it into the
// response struct.
func (c *SpotFeedClient) FetchFeed() (*models.SpotFeedResponse, error) {
	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{"X-Api-Key": c.apiKey}
	}

	var response models.SpotFeedResponse
	err := c.Request("GET", "/feed/spots", headers, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
