package models

// WeatherObservation is the slice of an OpenWeatherMap current-conditions
// response the recommendation logic cares about.
type WeatherObservation struct {
	Condition   string  `json:"condition"` // e.g. "Rain", "Clear", "Clouds"
	Description string  `json:"description,omitempty"`
	TempC       float64 `json:"tempC"`
	Humidity    int     `json:"humidity"`
}
