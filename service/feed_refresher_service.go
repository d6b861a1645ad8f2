package services

import (
	"log"
	"time"

	"sm-server/api/feed"
	"sm-server/dao/redis"
	"sm-server/models"
)

// FeedRefresherService periodically pulls the community feed export
// and upserts its spots and venues into the store.
type FeedRefresherService struct {
	spotDao *redis.RedisSpotDAO
	feedAPI feed.SpotFeedAPI
}

// NewFeedRefresherService constructs a new Refresher with dependencies.
func NewFeedRefresherService(
	spotDao *redis.RedisSpotDAO,
	feedAPI feed.SpotFeedAPI,
) *FeedRefresherService {
	return &FeedRefresherService{
		spotDao: spotDao,
		feedAPI: feedAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (fr *FeedRefresherService) StartPeriodicJob(interval time.Duration) {
	go fr.startPeriodicJob(interval)
}

func (fr *FeedRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[FeedRefresherService] Running periodic feed refresher job.")
		if err := fr.RefreshFeedData(); err != nil {
			log.Printf("[FeedRefresherService] RefreshFeedData returned error: %v", err)
		} else {
			log.Println("[FeedRefresherService] RefreshFeedData completed successfully.")
		}
	}
}

// RefreshFeedData pulls one feed export, dedupes its entries and
// upserts them. Spots are deduped by ID and then by (title, venue)
// since upstream scrapes occasionally list the same promotion twice
// under different IDs. Entries arriving without an update timestamp
// get stamped with the ingest time.
func (fr *FeedRefresherService) RefreshFeedData() error {
	resp, err := fr.feedAPI.FetchFeed()
	if err != nil {
		return err
	}
	log.Printf("[FeedRefresherService] Feed fetched: status=%s spots=%d venues=%d",
		resp.Status, len(resp.Spots), len(resp.Venues))

	seenVenueIDs := make(map[string]struct{})
	venuesStored := 0
	for _, v := range resp.Venues {
		if _, dup := seenVenueIDs[v.ID]; dup {
			log.Printf("[FeedRefresherService] Skipping duplicate venue ID=%s", v.ID)
			continue
		}
		seenVenueIDs[v.ID] = struct{}{}

		if err := fr.spotDao.UpsertVenue(v); err != nil {
			log.Printf("[FeedRefresherService] Upsert failed for venue %s: %v", v.ID, err)
			continue
		}
		venuesStored++
	}

	seenIDs := make(map[int]struct{})
	seenTitleVenue := make(map[string]struct{})
	spotsStored := 0
	now := time.Now()
	for _, s := range resp.Spots {
		if _, dup := seenIDs[s.ID]; dup {
			log.Printf("[FeedRefresherService] Skipping duplicate spot ID=%d", s.ID)
			continue
		}
		titleVenueKey := s.Title + "|" + s.VenueID
		if _, dup := seenTitleVenue[titleVenueKey]; dup {
			log.Printf("[FeedRefresherService] Skipping duplicate spot %q at venue %q", s.Title, s.VenueID)
			continue
		}
		seenIDs[s.ID] = struct{}{}
		seenTitleVenue[titleVenueKey] = struct{}{}

		if s.Source == "" {
			s.Source = models.SourceAutomated
		}
		if s.LastUpdateDate == nil {
			s.LastUpdateDate = &now
		}

		if err := fr.spotDao.UpsertSpot(s); err != nil {
			log.Printf("[FeedRefresherService] Upsert failed for spot %d: %v", s.ID, err)
			continue
		}
		spotsStored++
	}

	log.Printf("[FeedRefresherService] Stored %d spots and %d venues", spotsStored, venuesStored)
	return nil
}
