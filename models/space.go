package models

// BusyInterval is a recurring weekly block during which a classroom is occupied.
// Times are 24-hour "HH:MM" strings.
type BusyInterval struct {
	Days      []string `bson:"days" json:"days"`
	StartTime string   `bson:"startTime" json:"startTime"`
	EndTime   string   `bson:"endTime" json:"endTime"`
}

// Classroom is a bookable teaching room with a recurring weekly schedule.
type Classroom struct {
	ID       string         `bson:"id" json:"id"`
	Name     string         `bson:"name" json:"name"`
	Building string         `bson:"building" json:"building"`
	Capacity int            `bson:"capacity" json:"capacity"`
	Schedule []BusyInterval `bson:"schedule" json:"schedule"`
}

// OperatingHours bounds when a study spot may be used. A nil value on the
// spot means the spot is open around the clock.
type OperatingHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// Amenities describes the equipment and atmosphere of a study spot.
// PowerOutlets and Quiet are levels ("none"/"few"/"many", "low"/"medium"/"high").
type Amenities struct {
	Whiteboard   bool   `bson:"whiteboard" json:"whiteboard"`
	PowerOutlets string `bson:"powerOutlets" json:"powerOutlets,omitempty"`
	Quiet        string `bson:"quiet" json:"quiet,omitempty"`
}

// SpotLocation nests the building label the way the documents store it.
type SpotLocation struct {
	Building string `bson:"building" json:"building"`
}

// StudySpot is a public study area, indoor or outdoor.
type StudySpot struct {
	ID             string          `bson:"id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Description    string          `bson:"description" json:"description,omitempty"`
	Location       SpotLocation    `bson:"location" json:"location"`
	Indoor         bool            `bson:"indoor" json:"indoor"`
	Images         []string        `bson:"images,omitempty" json:"images,omitempty"`
	OperatingHours *OperatingHours `bson:"operatingHours,omitempty" json:"operatingHours,omitempty"`
	Amenities      *Amenities      `bson:"amenities,omitempty" json:"amenities,omitempty"`
	DiningOptions  []string        `bson:"diningOptions,omitempty" json:"diningOptions,omitempty"`
	BusyMorning    string          `bson:"busyMorning,omitempty" json:"busyMorning,omitempty"`
	BusyAfternoon  string          `bson:"busyAfternoon,omitempty" json:"busyAfternoon,omitempty"`
	BusyEvening    string          `bson:"busyEvening,omitempty" json:"busyEvening,omitempty"`
}
