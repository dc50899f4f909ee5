package models

import "time"

// CheckIn is a crowd-sourced report on how a study spot felt at a moment in time.
type CheckIn struct {
	ID        string    `bson:"id" json:"id"`
	SpotID    string    `bson:"spotId" json:"spotId"`
	Busyness  string    `bson:"busyness" json:"busyness"`   // "empty", "moderate", "packed"
	Noise     string    `bson:"noise" json:"noise"`         // "silent", "chatter", "loud"
	WifiSpeed string    `bson:"wifiSpeed" json:"wifiSpeed"` // "slow", "ok", "fast"
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// OccupancySnapshot is the aggregated view of recent check-ins for one spot.
type OccupancySnapshot struct {
	SpotID     string    `json:"spotId"`
	Occupancy  int       `json:"occupancy"` // percentage, 0-100
	SampleSize int       `json:"sampleSize"`
	ComputedAt time.Time `json:"computedAt"`
}
