package handlers

// HandlerBundle aggregates every handler group the router needs. Assembled
// once in main and passed to route registration.
type HandlerBundle struct {
	Classroom    *ClassroomHandler
	StudySpot    *StudySpotHandler
	SearchResult *SearchResultHandler
	CheckIn      *CheckInHandler
	Weather      *WeatherHandler
	Calendar     *CalendarHandler
	Sensor       *SensorHandler
	Admin        *AdminHandler
}
