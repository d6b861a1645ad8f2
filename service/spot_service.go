package services

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"sm-server/dao/redis"
	"sm-server/engine"
	"sm-server/models"
)

// SpotService answers the list, search and submission operations. All
// temporal and spatial judgment is delegated to the engine; this layer
// loads the data and applies moderation state.
type SpotService struct {
	spotDao *redis.RedisSpotDAO
	engine  *engine.Engine
}

// NewSpotService constructs a new SpotService with its dependencies.
func NewSpotService(spotDao *redis.RedisSpotDAO, eng *engine.Engine) *SpotService {
	return &SpotService{
		spotDao: spotDao,
		engine:  eng,
	}
}

// ListSpots loads everything on record, hides pending submissions and
// runs one pass of the filter pipeline. Favorites come from the store
// so the favorites filter works without the caller resending the set.
func (ss *SpotService) ListSpots(criteria models.FilterCriteria) ([]models.AnnotatedSpot, error) {
	spots, err := ss.spotDao.ListSpots()
	if err != nil {
		return nil, fmt.Errorf("failed to load spots: %w", err)
	}
	venues, err := ss.spotDao.ListVenues()
	if err != nil {
		return nil, fmt.Errorf("failed to load venues: %w", err)
	}
	favoriteIDs, err := ss.spotDao.GetFavoriteIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	visible := make([]models.Spot, 0, len(spots))
	for _, s := range spots {
		if s.Status == models.SpotPending {
			continue
		}
		visible = append(visible, s)
	}

	venuesByID := make(map[string]models.Venue, len(venues))
	for _, v := range venues {
		venuesByID[v.ID] = v
	}

	criteria.FavoriteIDs = favoriteIDs
	return ss.engine.FilterSpots(visible, venuesByID, criteria), nil
}

// GetSpotDetail loads one spot with its annotation and its deal lines
// split into category and text. Pending spots resolve too, so a
// moderator can preview a submission before approving it.
func (ss *SpotService) GetSpotDetail(id int) (*models.SpotDetail, error) {
	spot, err := ss.spotDao.GetSpot(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load spot %d: %w", id, err)
	}

	venuesByID := make(map[string]models.Venue, 1)
	if spot.VenueID != "" {
		if v, err := ss.spotDao.GetVenue(spot.VenueID); err == nil {
			venuesByID[v.ID] = *v
		} else {
			log.Printf("[SpotService] Spot %d links missing venue %s: %v", id, spot.VenueID, err)
		}
	}

	rows := ss.engine.FilterSpots([]models.Spot{*spot}, venuesByID, models.FilterCriteria{})
	detail := &models.SpotDetail{AnnotatedSpot: rows[0]}
	for _, line := range spot.Deals {
		detail.ParsedDeals = append(detail.ParsedDeals, models.ParseDealLine(line))
	}
	return detail, nil
}

// SearchVenuesNearby returns the venues within the radius, each with
// its distance from the caller and its open status at one shared
// instant, sorted nearest first.
func (ss *SpotService) SearchVenuesNearby(lat, lng, radiusMiles float64) ([]models.VenueWithStatus, error) {
	venues, err := ss.spotDao.GetNearbyVenues(lat, lng, radiusMiles)
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}

	now := ss.engine.Now()
	results := make([]models.VenueWithStatus, 0, len(venues))
	for _, v := range venues {
		d := engine.DistanceMiles(lat, lng, v.Location.Lat, v.Location.Lng)
		results = append(results, models.VenueWithStatus{
			Venue:         v,
			DistanceMiles: d,
			DistanceLabel: engine.FormatMiles(d),
			OpenStatus:    ss.engine.EvaluateHours(v.Hours, now),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceMiles != results[j].DistanceMiles {
			return results[i].DistanceMiles < results[j].DistanceMiles
		}
		return results[i].Venue.Name < results[j].Venue.Name
	})
	return results, nil
}

// SubmitSpot validates a community submission and stores it as a
// pending manual spot. A submission may link an existing venue by ID
// or carry a new venue, which gets minted an ID and stored alongside.
func (ss *SpotService) SubmitSpot(sub models.SpotSubmission) (*models.Spot, error) {
	if strings.TrimSpace(sub.Title) == "" {
		return nil, fmt.Errorf("submission needs a title")
	}
	if strings.TrimSpace(sub.Area) == "" {
		return nil, fmt.Errorf("submission needs an area")
	}

	venueID := sub.VenueID
	if venueID == "" && sub.NewVenue != nil {
		v := *sub.NewVenue
		v.ID = "venue-" + uuid.NewString()
		if err := ss.spotDao.UpsertVenue(v); err != nil {
			return nil, fmt.Errorf("failed to store submitted venue: %w", err)
		}
		venueID = v.ID
		log.Printf("[SpotService] Minted venue %s for submission %q", v.ID, sub.Title)
	}

	id, err := ss.spotDao.NextSpotID()
	if err != nil {
		return nil, fmt.Errorf("failed to mint spot id: %w", err)
	}

	now := ss.engine.Now()
	spot := models.Spot{
		ID:             id,
		Title:          sub.Title,
		Description:    sub.Description,
		Area:           sub.Area,
		ActivityType:   sub.ActivityType,
		Location:       sub.Location,
		VenueID:        venueID,
		TimeWindow:     sub.TimeWindow,
		Deals:          sub.Deals,
		LastUpdateDate: &now,
		Source:         models.SourceManual,
		SubmittedBy:    sub.SubmittedBy,
		Status:         models.SpotPending,
	}
	if err := ss.spotDao.UpsertSpot(spot); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}
	log.Printf("[SpotService] Stored pending submission %d %q", spot.ID, spot.Title)
	return &spot, nil
}

// ApproveSpot flips a pending submission to approved and records the
// moderation pass as a verification.
func (ss *SpotService) ApproveSpot(id int) (*models.Spot, error) {
	spot, err := ss.spotDao.GetSpot(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load spot %d: %w", id, err)
	}
	now := ss.engine.Now()
	spot.Status = models.SpotApproved
	spot.LastVerifiedDate = &now
	if err := ss.spotDao.UpsertSpot(*spot); err != nil {
		return nil, fmt.Errorf("failed to store approval: %w", err)
	}
	log.Printf("[SpotService] Approved spot %d %q", spot.ID, spot.Title)
	return spot, nil
}

// RejectSpot drops a submission from the store.
func (ss *SpotService) RejectSpot(id int) error {
	if err := ss.spotDao.DeleteSpot(id); err != nil {
		return fmt.Errorf("failed to reject spot %d: %w", id, err)
	}
	log.Printf("[SpotService] Rejected spot %d", id)
	return nil
}

// AddFavorite marks a spot as a community favorite.
func (ss *SpotService) AddFavorite(spotID int) error {
	return ss.spotDao.AddFavorite(spotID)
}

// RemoveFavorite unmarks a spot as a community favorite.
func (ss *SpotService) RemoveFavorite(spotID int) error {
	return ss.spotDao.RemoveFavorite(spotID)
}
