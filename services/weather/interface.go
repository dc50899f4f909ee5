package weather

import (
	"context"

	"campusspots/models"
)

// Provider fetches the current weather observation for a coordinate.
type Provider interface {
	CurrentConditions(ctx context.Context, lat, lon float64) (models.WeatherObservation, error)
}
