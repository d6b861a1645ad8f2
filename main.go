package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"sm-server/config"
	"sm-server/dao/redis"
	"sm-server/di"
	"sm-server/models"
	"sm-server/util"
)

// seedCatalog imports the bundled seed data on an empty store so the
// map has content before the first feed refresh lands.
func seedCatalog(spotDao *redis.RedisSpotDAO) {
	spots, err := spotDao.ListSpots()
	if err != nil {
		log.Printf("[MAIN] Failed to check the catalog: %v", err)
		return
	}
	if len(spots) > 0 {
		log.Printf("[MAIN] Catalog already has %d spots, skipping seed import", len(spots))
		return
	}

	seedVenues, err := util.ReadVenuesFromJSON(config.GetResourcePath(config.VENUES_SEED_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Failed to read venues seed: %v", err)
		return
	}
	seedSpots, err := util.ReadSpotsFromJSON(config.GetResourcePath(config.SPOTS_SEED_RESOURCE))
	if err != nil {
		log.Printf("[MAIN] Failed to read spots seed: %v", err)
		return
	}

	for _, v := range seedVenues {
		if err := spotDao.UpsertVenue(v); err != nil {
			log.Printf("[MAIN] Failed to seed venue %s: %v", v.ID, err)
		}
	}
	for _, s := range seedSpots {
		if err := spotDao.UpsertSpot(s); err != nil {
			log.Printf("[MAIN] Failed to seed spot %d: %v", s.ID, err)
		}
	}
	log.Printf("[MAIN] Seeded %d venues and %d spots", len(seedVenues), len(seedSpots))
}

// plotCatalog renders the current catalog to HTML files for eyeballing
// seed coordinates and window coverage.
func plotCatalog(spotDao *redis.RedisSpotDAO, areas *models.AreaCatalog) {
	log.Println("Running: plotCatalog")
	spots, err := spotDao.ListSpots()
	if err != nil {
		log.Println("Error loading spots for plotting:", err)
		return
	}

	util.PlotSpotMap(spots, metroBox(areas), "spot_map.html")
	util.PlotActivityHeatmap(spots, "activity_heatmap.html")
}

// metroBox unions every area's extent into one box covering the metro.
func metroBox(areas *models.AreaCatalog) models.BoundingBox {
	names := areas.Names()
	if len(names) == 0 {
		// Chicago-ish default so an empty catalog still plots
		return models.BoundingBox{LatMin: 41.8, LatMax: 42.0, LngMin: -87.8, LngMax: -87.5}
	}

	first, _ := areas.Get(names[0])
	box := models.BoundingBox{
		LatMin: first.Center.Lat, LatMax: first.Center.Lat,
		LngMin: first.Center.Lng, LngMax: first.Center.Lng,
	}
	for _, name := range names {
		a, _ := areas.Get(name)
		corners := []models.Coordinates{
			a.Center,
			{Lat: a.BoundingBox.LatMin, Lng: a.BoundingBox.LngMin},
			{Lat: a.BoundingBox.LatMax, Lng: a.BoundingBox.LngMax},
		}
		for _, c := range corners {
			if c.Lat == 0 && c.Lng == 0 {
				continue // unset corner
			}
			if c.Lat < box.LatMin {
				box.LatMin = c.Lat
			}
			if c.Lat > box.LatMax {
				box.LatMax = c.Lat
			}
			if c.Lng < box.LngMin {
				box.LngMin = c.Lng
			}
			if c.Lng > box.LngMax {
				box.LngMax = c.Lng
			}
		}
	}

	// Pad so edge markers don't sit on the border
	box.LatMin -= 0.01
	box.LatMax += 0.01
	box.LngMin -= 0.01
	box.LngMax += 0.01
	return box
}

func main() {
	// Load .env when present; real environment variables win
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using defaults")
	}

	container := di.NewContainer(config.GetEnvironment())

	seedCatalog(container.RedisSpotDao)

	// plotCatalog(container.RedisSpotDao, container.AreaCatalog)

	fmt.Println("refreshing!")
	if err := container.FeedRefresherService.RefreshFeedData(); err != nil {
		log.Println("Initial feed refresh failed:", err)
	}
	fmt.Println("starting periodic job!")
	container.FeedRefresherService.StartPeriodicJob(time.Duration(config.GetFeedRefreshMinutes()) * time.Minute)

	fmt.Println("starting server!")
	container.SpotMapHttpServer.Start()
	fmt.Println("server exited!")
}
