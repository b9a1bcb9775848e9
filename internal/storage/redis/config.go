package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// RoomTTL bounds how long an idle room is kept.
	// Zero means rooms never expire.
	RoomTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration.
// Rooms never expire by default, matching the process-lifetime room
// model; deployments opt into a TTL explicitly.
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		RoomTTL:      0,
	}
}
