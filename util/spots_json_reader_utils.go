package util

import (
	"encoding/json"
	"fmt"
	"os"

	"sm-server/models"
)

// ReadSpotFeedResponseFromJSON loads a SpotFeedResponse from JSON on disk.
func ReadSpotFeedResponseFromJSON(filePath string) (*models.SpotFeedResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.SpotFeedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SpotFeedResponse: %w", err)
	}
	return &resp, nil
}

// ReadSpotsFromJSON loads a slice of spots from JSON on disk.
func ReadSpotsFromJSON(filePath string) ([]models.Spot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var spots []models.Spot
	if err := json.Unmarshal(data, &spots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spots: %w", err)
	}
	return spots, nil
}

// ReadVenuesFromJSON loads a slice of venues from JSON on disk.
func ReadVenuesFromJSON(filePath string) ([]models.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []models.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}
	return venues, nil
}

// ReadAreasFromJSON loads the area catalog entries from JSON on disk.
func ReadAreasFromJSON(filePath string) ([]models.Area, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var areas []models.Area
	if err := json.Unmarshal(data, &areas); err != nil {
		return nil, fmt.Errorf("failed to unmarshal areas: %w", err)
	}
	return areas, nil
}

// PrintSpotFeedResponsePartially prints key fields of SpotFeedResponse.
func PrintSpotFeedResponsePartially(resp *models.SpotFeedResponse) {
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Generated at: %s\n", resp.GeneratedAt)
	fmt.Printf("Spots: %d, Venues: %d\n", resp.SpotsN, resp.VenuesN)
	if len(resp.Spots) > 0 {
		s := resp.Spots[0]
		fmt.Printf("First spot: %s in %s (%.6f, %.6f)\n", s.Title, s.Area, s.Location.Lat, s.Location.Lng)
	}
}
