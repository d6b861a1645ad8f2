package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Feed Refresher config
const SPOT_FEED_REFRESHER_SCHEDULE_MINUTES = 30

// Community feed endpoint
const SPOT_FEED_ENDPOINT_BASE_V1 = "https://feed.spotmap.app/api/v1"

// Civil timezone every venue and promotion window is evaluated in.
// The dataset covers one metro, so one zone is enough.
const CIVIL_TIMEZONE = "America/Chicago"

// HTTP server
const SERVER_PORT = "8080"
const RATE_LIMIT_RPS = 5
const RATE_LIMIT_BURST = 10

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SPOT_FEED_RESPONSE_RESOURCE = "spot_feed_response.json"
const SPOTS_SEED_RESOURCE = "spots_seed.json"
const VENUES_SEED_RESOURCE = "venues_seed.json"
const AREAS_RESOURCE = "area_centers.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

// getEnvOrDefault reads an environment variable with a fallback. The
// .env file, when present, is loaded into the environment by main
// before any of these run.
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetRedisAddress returns the Redis address, honoring REDIS_ADDRESS.
func GetRedisAddress() string {
	return getEnvOrDefault("REDIS_ADDRESS", REDIS_DB_ADDRESS)
}

// GetServerPort returns the HTTP listen port, honoring SERVER_PORT.
func GetServerPort() string {
	return getEnvOrDefault("SERVER_PORT", SERVER_PORT)
}

// GetCivilTimezone returns the IANA zone name the engine evaluates in,
// honoring CIVIL_TIMEZONE.
func GetCivilTimezone() string {
	return getEnvOrDefault("CIVIL_TIMEZONE", CIVIL_TIMEZONE)
}

// GetFeedBaseURL returns the community feed base URL, honoring
// SPOT_FEED_BASE_URL.
func GetFeedBaseURL() string {
	return getEnvOrDefault("SPOT_FEED_BASE_URL", SPOT_FEED_ENDPOINT_BASE_V1)
}

// GetFeedAPIKey returns the community feed API key. There is no
// baked-in default; an empty key sends no auth header.
func GetFeedAPIKey() string {
	return os.Getenv("SPOT_FEED_API_KEY")
}

// GetEnvironment returns the deployment environment, honoring ENV.
// Anything but "prod" wires the file-backed mock feed client.
func GetEnvironment() string {
	return getEnvOrDefault("ENV", "dev")
}

// GetFeedRefreshMinutes returns the refresher cadence, honoring
// FEED_REFRESH_MINUTES when it parses as a positive integer.
func GetFeedRefreshMinutes() int {
	raw := os.Getenv("FEED_REFRESH_MINUTES")
	if raw == "" {
		return SPOT_FEED_REFRESHER_SCHEDULE_MINUTES
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return SPOT_FEED_REFRESHER_SCHEDULE_MINUTES
	}
	return minutes
}
