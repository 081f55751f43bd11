package datasource

import (
	"context"
	"fmt"
	"math"

	"weather-dashboard/models"
)

// Provider is the single data-fetching interface shared by the dashboard page
// and the proxy endpoints
type Provider interface {
	// Geocode resolves a city name to its first matching location
	Geocode(ctx context.Context, city string) (models.Location, error)

	// Forecast fetches the hourly forecast for the given coordinates
	Forecast(ctx context.Context, lat, lng float64) (models.Forecast, error)

	// Name returns the provider's name
	Name() string
}

// ValidateCoordinates rejects non-finite or out of range coordinates
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range", lat)
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range", lng)
	}
	return nil
}
