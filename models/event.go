package models

import "time"

// CampusEvent is one entry from the campus iCal feed.
type CampusEvent struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}
