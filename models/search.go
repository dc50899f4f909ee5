package models

// Weekday names as stored on schedule entries and sent by clients.
const (
	Saturday = "Saturday"
	Sunday   = "Sunday"
)

// Busyness preference values.
const (
	BusynessQuiet        = "Quiet"
	BusynessBusy         = "Busy"
	BusynessNoPreference = "No Preference"
)

// Attribute names accepted in StudySpotCriteria.Attributes.
const (
	AttrIndoor       = "Indoor"
	AttrOutdoor      = "Outdoor"
	AttrWhiteboard   = "Whiteboard"
	AttrPowerOutlets = "Power Outlets"
)

// ClassroomCriteria is the constraint set for a classroom search. Every field
// is optional; a zero value imposes no restriction. The scheduling window is
// checked once StartTime and DurationHours are set; schedule-overlap
// filtering additionally needs SelectedDay.
type ClassroomCriteria struct {
	Building      string `json:"building,omitempty"`
	MinCapacity   int    `json:"minCapacity,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
	DurationHours int    `json:"durationHours,omitempty"`
	SelectedDay   string `json:"selectedDay,omitempty"`
	PartySize     int    `json:"partySize,omitempty"`
}

// StudySpotCriteria is the constraint set for a study-spot search.
type StudySpotCriteria struct {
	Building      string   `json:"building,omitempty"`
	StartTime     string   `json:"startTime,omitempty"`
	DurationHours int      `json:"durationHours,omitempty"`
	Attributes    []string `json:"attributes,omitempty"`
	Busyness      string   `json:"busyness,omitempty"`
}

// ClassroomSearchResult is what the classroom flow hands to the presentation
// layer. When a top pick is selected, Survivors contains only the top pick.
// Warning carries business-rule notices (scheduling window, weekend rule);
// it is informational, never an error.
type ClassroomSearchResult struct {
	Survivors []Classroom `json:"survivors"`
	TopPick   *Classroom  `json:"topPick"`
	Warning   string      `json:"warning,omitempty"`
}

// ScoredSpot pairs a study spot with its computed match score.
type ScoredSpot struct {
	StudySpot
	Score int `json:"score"`
}

// StudySpotSearchResult is the study-spot flow output: best match first,
// remaining survivors in descending score order.
type StudySpotSearchResult struct {
	TopPick      *ScoredSpot  `json:"topPick"`
	OtherOptions []ScoredSpot `json:"otherOptions"`
	Warning      string       `json:"warning,omitempty"`
}
