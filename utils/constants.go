// File: utils/constants.go
package utils

import "time"

// SearchResultPrefix is the prefix for cached search result bundles.
const SearchResultPrefix = "search:"

// SearchResultTTL is how long a search result bundle stays retrievable.
const SearchResultTTL = 10 * time.Minute

// WeatherCacheKey holds the latest campus weather observation.
const WeatherCacheKey = "weather:current"

// WeatherCacheTTL bounds how stale a cached observation may get.
const WeatherCacheTTL = 10 * time.Minute

// OccupancyPrefix is the prefix for per-spot occupancy snapshots.
const OccupancyPrefix = "occupancy:"

// OccupancyTTL is how long an occupancy snapshot stays valid without recompute.
const OccupancyTTL = 2 * time.Hour

// SensorReadingPrefix is the prefix for live sensor readings.
const SensorReadingPrefix = "sensor:"

// SensorReadingTTL ages out units that stop reporting.
const SensorReadingTTL = 15 * time.Minute
