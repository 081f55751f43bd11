package datasource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-dashboard/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider and throttles the calls this service
// makes to the geocoding and forecast APIs
type RateLimitedProvider struct {
	provider        Provider
	geocodeLimiter  *rate.Limiter
	forecastLimiter *rate.Limiter
	name            string
}

// NewRateLimitedProvider creates a rate limited provider.
// geocodeRPS and forecastRPS are the maximum requests per second for each API
// (can be fractional), burst is the maximum burst size allowed for both.
func NewRateLimitedProvider(provider Provider, geocodeRPS, forecastRPS float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider:        provider,
		geocodeLimiter:  rate.NewLimiter(rate.Limit(geocodeRPS), burst),
		forecastLimiter: rate.NewLimiter(rate.Limit(forecastRPS), burst),
		name:            fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// Geocode waits for the geocode limiter before forwarding the lookup.
// An empty city is rejected without using up a token.
func (r *RateLimitedProvider) Geocode(ctx context.Context, city string) (models.Location, error) {
	if strings.TrimSpace(city) == "" {
		return models.Location{}, NewError("geocode", KindInvalidInput, errors.New("city is required"))
	}
	if err := r.geocodeLimiter.Wait(ctx); err != nil {
		return models.Location{}, NewError("geocode", KindTransport, fmt.Errorf("rate limit wait failed: %w", err))
	}
	return r.provider.Geocode(ctx, city)
}

// Forecast waits for the forecast limiter before forwarding the request.
// Invalid coordinates are rejected without using up a token.
func (r *RateLimitedProvider) Forecast(ctx context.Context, lat, lng float64) (models.Forecast, error) {
	if err := ValidateCoordinates(lat, lng); err != nil {
		return models.Forecast{}, NewError("forecast", KindInvalidInput, err)
	}
	if err := r.forecastLimiter.Wait(ctx); err != nil {
		return models.Forecast{}, NewError("forecast", KindTransport, fmt.Errorf("rate limit wait failed: %w", err))
	}
	return r.provider.Forecast(ctx, lat, lng)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

var _ Provider = (*RateLimitedProvider)(nil)
