package redis

import (
	"encoding/json"
	"fmt"
	"strconv"

	"sm-server/db"
	"sm-server/models"
)

const SPOTS_GEO_KEY_V1 = "spots_geo_v1"
const SPOT_KEY_FORMAT_V1 = "spots_v1:%d"
const VENUES_GEO_KEY_V1 = "venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = "venues_geo_place_v1:%s"

// FAVORITE_SPOTS_KEY_V1 holds the community favorites as a set of
// spot IDs.
const FAVORITE_SPOTS_KEY_V1 = "favorite_spots_v1"

// SPOT_ID_SEQ_KEY_V1 is the counter behind NextSpotID.
const SPOT_ID_SEQ_KEY_V1 = "spot_id_seq_v1"

// RedisSpotDAO handles spot and venue storage using Redis.
type RedisSpotDAO struct {
	client db.RedisClient
}

// NewRedisSpotDAO initializes a RedisSpotDAO with the Redis client.
func NewRedisSpotDAO(client db.RedisClient) *RedisSpotDAO {
	return &RedisSpotDAO{client: client}
}

// UpsertSpot stores the spot as a geo member with its JSON payload so
// both radius reads and key scans see it.
func (dao *RedisSpotDAO) UpsertSpot(s models.Spot) error {
	ctx := dao.client.GetContext()
	spotKey := fmt.Sprintf(SPOT_KEY_FORMAT_V1, s.ID)
	if err := dao.client.AddLocationWithJSON(ctx, SPOTS_GEO_KEY_V1, spotKey, s.Location.Lat, s.Location.Lng, s); err != nil {
		return fmt.Errorf("failed to upsert spot %d: %w", s.ID, err)
	}
	return nil
}

// GetSpot retrieves one spot by ID.
func (dao *RedisSpotDAO) GetSpot(id int) (*models.Spot, error) {
	key := fmt.Sprintf(SPOT_KEY_FORMAT_V1, id)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get spot %d: %w", id, err)
	}
	var s models.Spot
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spot JSON: %w", err)
	}
	return &s, nil
}

// ListSpots returns every stored spot via a key scan.
func (dao *RedisSpotDAO) ListSpots() ([]models.Spot, error) {
	// pattern matches the prefix used in UpsertSpot
	pattern := "spots_v1:*"
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list spot keys: %w", err)
	}

	spots := make([]models.Spot, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			continue
		}
		var s models.Spot
		if err := json.Unmarshal([]byte(str), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spot JSON for %s: %w", k, err)
		}
		spots = append(spots, s)
	}
	return spots, nil
}

// DeleteSpot removes a spot's payload and its favorite mark. The geo
// index entry becomes a dangling member the radius reads already skip.
func (dao *RedisSpotDAO) DeleteSpot(id int) error {
	key := fmt.Sprintf(SPOT_KEY_FORMAT_V1, id)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete spot key %s: %w", key, err)
	}
	if err := dao.client.SRem(FAVORITE_SPOTS_KEY_V1, strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to clear favorite for %d: %w", id, err)
	}
	return nil
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisSpotDAO) UpsertVenue(v models.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, v.ID)
	if err := dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey, v.Location.Lat, v.Location.Lng, v); err != nil {
		return fmt.Errorf("failed to upsert venue %s: %w", v.ID, err)
	}
	return nil
}

// GetVenue retrieves one venue by ID.
func (dao *RedisSpotDAO) GetVenue(id string) (*models.Venue, error) {
	key := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, id)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %s: %w", id, err)
	}
	var v models.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// ListVenues returns every stored venue via a key scan.
func (dao *RedisSpotDAO) ListVenues() ([]models.Venue, error) {
	pattern := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}

	venues := make([]models.Venue, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			continue
		}
		var v models.Venue
		if err := json.Unmarshal([]byte(str), &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON for %s: %w", k, err)
		}
		venues = append(venues, v)
	}
	return venues, nil
}

// GetNearbyVenues retrieves venues within a given radius in miles.
func (dao *RedisSpotDAO) GetNearbyVenues(lat, lng, radiusMiles float64) ([]models.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lng, radiusMiles)
	if err != nil {
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}

	venues := make([]models.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// AddFavorite marks a spot as a favorite.
func (dao *RedisSpotDAO) AddFavorite(spotID int) error {
	if err := dao.client.SAdd(FAVORITE_SPOTS_KEY_V1, strconv.Itoa(spotID)); err != nil {
		return fmt.Errorf("failed to add favorite %d: %w", spotID, err)
	}
	return nil
}

// RemoveFavorite unmarks a spot as a favorite.
func (dao *RedisSpotDAO) RemoveFavorite(spotID int) error {
	if err := dao.client.SRem(FAVORITE_SPOTS_KEY_V1, strconv.Itoa(spotID)); err != nil {
		return fmt.Errorf("failed to remove favorite %d: %w", spotID, err)
	}
	return nil
}

// GetFavoriteIDs returns the favorite spot IDs as a set. Members that
// do not parse as integers are skipped.
func (dao *RedisSpotDAO) GetFavoriteIDs() (map[int]struct{}, error) {
	members, err := dao.client.SMembers(FAVORITE_SPOTS_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	ids := make(map[int]struct{}, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids[id] = struct{}{}
	}
	return ids, nil
}

// NextSpotID mints a new spot ID from the sequence counter.
func (dao *RedisSpotDAO) NextSpotID() (int, error) {
	next, err := dao.client.Incr(SPOT_ID_SEQ_KEY_V1)
	if err != nil {
		return 0, fmt.Errorf("failed to increment spot id sequence: %w", err)
	}
	return int(next), nil
}
