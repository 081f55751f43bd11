package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"weather-dashboard/datasource"
)

// Props is the page input produced by the server phase. Weather holds the
// forecast payload as JSON, the way it is handed to the page.
type Props struct {
	Weather string `json:"weather"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Assembler runs the server phase of the dashboard page
type Assembler struct {
	provider datasource.Provider
}

// NewAssembler creates an assembler backed by provider
func NewAssembler(provider datasource.Provider) *Assembler {
	return &Assembler{provider: provider}
}

// Props resolves city and fetches its forecast. The forecast is only requested
// once the geocode lookup succeeded; provider errors are returned unchanged.
func (a *Assembler) Props(ctx context.Context, city string) (Props, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Props{}, datasource.NewError("geocode", datasource.KindInvalidInput, errors.New("city is required"))
	}

	loc, err := a.provider.Geocode(ctx, city)
	if err != nil {
		return Props{}, err
	}

	forecast, err := a.provider.Forecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return Props{}, err
	}

	data, err := json.Marshal(forecast)
	if err != nil {
		return Props{}, fmt.Errorf("failed to encode forecast: %w", err)
	}

	return Props{
		Weather: string(data),
		City:    loc.City,
		State:   loc.State,
		Country: loc.Country,
	}, nil
}
