package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"sm-server/api"
	"sm-server/api/feed"
	"sm-server/config"
	"sm-server/dao/redis"
	"sm-server/db"
	"sm-server/engine"
	"sm-server/models"
	"sm-server/server"
	"sm-server/server/handlers"
	services "sm-server/service"
	"sm-server/util"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient          db.RedisClient
	RedisSpotDao         *redis.RedisSpotDAO
	Engine               *engine.Engine
	SpotService          *services.SpotService
	SpotFeedAPI          feed.SpotFeedAPI
	AreaCatalog          *models.AreaCatalog
	SpotHandler          *handlers.SpotHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	SpotMapHttpServer    *server.SpotMapHttpServer
	FeedRefresherService *services.FeedRefresherService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.GetRedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewGeoRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Spot DAO
	redisSpotDao := redis.NewRedisSpotDAO(redisClient)

	// Initialize the evaluation engine in the civil timezone
	location, err := time.LoadLocation(config.GetCivilTimezone())
	if err != nil {
		log.Printf("Could not load zone %q, falling back to local time: %v", config.GetCivilTimezone(), err)
		location = time.Local
	}
	evalEngine := engine.New(location)

	// Initialize SpotFeedAPI - mock outside prod
	var spotFeedApiClient feed.SpotFeedAPI
	if env != "prod" {
		spotFeedApiClient = feed.NewSpotFeedClientMock(config.GetResourcePath(config.SPOT_FEED_RESPONSE_RESOURCE))
		log.Printf("Using mock spot feed api")
	} else {
		log.Printf("Using prod spot feed api")
		httpClient := api.NewHTTPClient(config.GetFeedBaseURL())

		spotFeedApiClient = feed.NewSpotFeedClient(httpClient)
		spotFeedApiClient.SetAPIKey(config.GetFeedAPIKey())
	}

	// Initialize service layer with DAO and engine dependencies
	spotService := services.NewSpotService(redisSpotDao, evalEngine)

	// Initialize the area catalog from seed data. An unreadable file
	// leaves an empty catalog; the areas endpoint just returns [].
	areaSeed, err := util.ReadAreasFromJSON(config.GetResourcePath(config.AREAS_RESOURCE))
	if err != nil {
		log.Printf("Could not read area centers: %v", err)
	}
	areaCatalog := models.NewAreaCatalog(areaSeed)

	// Initialize spot handler
	spotHandler := handlers.NewSpotHandler(spotService, areaCatalog)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(spotHandler, muxRouter)

	// Initialize rate limiter and http server
	rateLimiter := server.NewRateLimiter(config.RATE_LIMIT_RPS, config.RATE_LIMIT_BURST)
	spotMapHttpServer := server.NewSpotMapHttpServer(router, muxRouter, rateLimiter, config.GetServerPort())

	feedRefresherService := services.NewFeedRefresherService(redisSpotDao, spotFeedApiClient)

	return &Container{
		RedisClient:          redisClient,
		RedisSpotDao:         redisSpotDao,
		Engine:               evalEngine,
		SpotService:          spotService,
		SpotFeedAPI:          spotFeedApiClient,
		AreaCatalog:          areaCatalog,
		SpotHandler:          spotHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		SpotMapHttpServer:    spotMapHttpServer,
		FeedRefresherService: feedRefresherService,
	}
}
