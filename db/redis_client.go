package db

import "context"

// RedisClient defines the methods the DAOs need from Redis: plain
// key-value, geo members with attached JSON, key scans, favorite sets
// and the ID counter.
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lng, radiusMiles float64) ([]string, error)
	Keys(pattern string) ([]string, error)
	Del(key string) error
	SAdd(key, member string) error
	SRem(key, member string) error
	SMembers(key string) ([]string, error)
	Incr(key string) (int64, error)
	GetContext() context.Context
	Ping() error
}
