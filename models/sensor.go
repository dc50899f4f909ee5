package models

import "time"

// SensorReading is a live occupancy/noise sample pushed by a campus unit.
type SensorReading struct {
	UnitID     string    `json:"unitId"`
	Occupancy  int       `json:"occupancy"` // percentage, 0-100
	AverageDB  float64   `json:"averageDb"`
	RecordedAt time.Time `json:"recordedAt"`
}
