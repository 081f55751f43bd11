package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"

	"github.com/go-resty/resty/v2"
)

const (
	geocodeEndpoint  = "/v1/search"
	forecastEndpoint = "/v1/forecast"

	opGeocode  = "geocode"
	opForecast = "forecast"

	defaultTimeout = 10 * time.Second
)

// Options configures the Open-Meteo provider
type Options struct {
	GeocodingURL string
	ForecastURL  string
	UserAgent    string
	Timeout      time.Duration
}

// Provider implements datasource.Provider against the Open-Meteo geocoding and forecast APIs
type Provider struct {
	geocoding *resty.Client
	forecast  *resty.Client
}

var _ datasource.Provider = (*Provider)(nil)

// NewProvider creates a new Open-Meteo provider
func NewProvider(opts Options) *Provider {
	if opts.GeocodingURL == "" {
		opts.GeocodingURL = datasource.DefaultGeocodingURL
	}
	if opts.ForecastURL == "" {
		opts.ForecastURL = datasource.DefaultForecastURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &Provider{
		geocoding: newClient(opts.GeocodingURL, opts.UserAgent, opts.Timeout),
		forecast:  newClient(opts.ForecastURL, opts.UserAgent, opts.Timeout),
	}
}

// NewProviderFromConfig creates a provider from the application configuration
func NewProviderFromConfig(config *datasource.Config) *Provider {
	return NewProvider(Options{
		GeocodingURL: config.GeocodingURL,
		ForecastURL:  config.ForecastURL,
		UserAgent:    config.UserAgent,
		Timeout:      config.Timeout.Duration,
	})
}

func newClient(baseURL, userAgent string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		log.Printf("%s %s -> %d (%s, %d bytes)",
			resp.Request.Method, resp.Request.URL, resp.StatusCode(),
			resp.Time().Round(time.Millisecond), len(resp.Body()))
		return nil
	})
	return client
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "Open-Meteo"
}

// Geocode resolves a city name to the first matching location
func (p *Provider) Geocode(ctx context.Context, city string) (models.Location, error) {
	name := strings.TrimSpace(city)
	if name == "" {
		return models.Location{}, datasource.NewError(opGeocode, datasource.KindInvalidInput, errors.New("city is required"))
	}

	resp, err := p.geocoding.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"name":     name,
			"count":    "1",
			"language": "en",
			"format":   "json",
		}).
		Get(geocodeEndpoint)
	if err != nil {
		return models.Location{}, datasource.NewError(opGeocode, datasource.KindTransport, fmt.Errorf("failed to execute request: %w", err))
	}
	if err := checkStatus(opGeocode, resp); err != nil {
		return models.Location{}, err
	}

	return decodeGeocode(resp.Body())
}

// Forecast fetches the fixed set of hourly variables for the given coordinates
func (p *Provider) Forecast(ctx context.Context, lat, lng float64) (models.Forecast, error) {
	if err := datasource.ValidateCoordinates(lat, lng); err != nil {
		return models.Forecast{}, datasource.NewError(opForecast, datasource.KindInvalidInput, err)
	}

	resp, err := p.forecast.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
			"longitude": strconv.FormatFloat(lng, 'f', -1, 64),
			"hourly":    strings.Join(models.HourlyVariables, ","),
		}).
		Get(forecastEndpoint)
	if err != nil {
		return models.Forecast{}, datasource.NewError(opForecast, datasource.KindTransport, fmt.Errorf("failed to execute request: %w", err))
	}
	if err := checkStatus(opForecast, resp); err != nil {
		return models.Forecast{}, err
	}

	return decodeForecast(resp.Body())
}

// checkStatus maps a non-success response to a LookupError. The API answers
// rejected queries with 4xx, which count as not found; anything else is a
// transport failure.
func checkStatus(op string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	err := fmt.Errorf("API error (status %d): %s", resp.StatusCode(), apiReason(resp.Body()))
	code := resp.StatusCode()
	if code >= http.StatusBadRequest && code < http.StatusInternalServerError {
		return datasource.NewError(op, datasource.KindNotFound, err)
	}
	return datasource.NewError(op, datasource.KindTransport, err)
}
