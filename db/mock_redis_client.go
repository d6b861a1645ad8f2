package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data     map[string]string            // Key-value store
	geoData  map[string]map[string]GeoLoc // Geolocation data
	sets     map[string]map[string]bool   // Set members
	counters map[string]int64             // Counter keys
	mu       sync.RWMutex                 // Mutex for thread-safe operations
	context  context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:     make(map[string]string),
		geoData:  make(map[string]map[string]GeoLoc),
		sets:     make(map[string]map[string]bool),
		counters: make(map[string]int64),
		context:  ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lng}

	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius retrieves JSON data for members under a geo
// key. The mock skips the radius math and returns every member; tests
// that care about distance assert on the caller's own ordering.
func (m *MockRedisClient) GetLocationsWithinRadius(key string, lat, lng, radiusMiles float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	geoMembers, exists := m.geoData[key]
	if !exists {
		return nil, nil // No geolocation data for this key.
	}

	var results []string
	for memberKey := range geoMembers {
		if data, exists := m.data[memberKey]; exists {
			results = append(results, data)
		}
	}
	return results, nil
}

// Keys lists stored keys matching the pattern. Only the trailing "*"
// glob the DAOs use is honored.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		for key := range m.data {
			if strings.HasPrefix(key, prefix) {
				keys = append(keys, key)
			}
		}
		return keys, nil
	}
	if _, exists := m.data[pattern]; exists {
		keys = append(keys, pattern)
	}
	return keys, nil
}

// Del removes a key from the mock Redis.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// SAdd adds a member to a mock set.
func (m *MockRedisClient) SAdd(key, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sets[key]; !exists {
		m.sets[key] = make(map[string]bool)
	}
	m.sets[key][member] = true
	return nil
}

// SRem removes a member from a mock set.
func (m *MockRedisClient) SRem(key, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if members, exists := m.sets[key]; exists {
		delete(members, member)
	}
	return nil
}

// SMembers lists the members of a mock set.
func (m *MockRedisClient) SMembers(key string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var members []string
	for member := range m.sets[key] {
		members = append(members, member)
	}
	return members, nil
}

// Incr increments a mock counter and returns the new value.
func (m *MockRedisClient) Incr(key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
	return m.counters[key], nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	return nil
}
