package datasource

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com"
	DefaultForecastURL  = "https://api.open-meteo.com"
)

// Duration is a time.Duration that reads "10s" style strings or plain seconds from JSON
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts either a duration string or a number of seconds
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value * float64(time.Second))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// MarshalJSON writes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Config represents the application configuration
type Config struct {
	// Base URLs of the geocoding and forecast APIs
	GeocodingURL string `json:"geocodingURL"`
	ForecastURL  string `json:"forecastURL"`

	UserAgent string `json:"userAgent"`

	// Timeout bounds every outbound request
	Timeout Duration `json:"timeout"`

	// GeocodeCacheTTL keeps city lookups in memory; zero disables the cache
	GeocodeCacheTTL Duration `json:"geocodeCacheTTL"`

	// Outbound throttling, only applied when enabled on the command line
	RateLimit struct {
		RPS   float64 `json:"rps"`
		Burst int     `json:"burst"`
	} `json:"rateLimit"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{
		GeocodingURL: DefaultGeocodingURL,
		ForecastURL:  DefaultForecastURL,
		UserAgent:    "weather-dashboard/1.0",
	}
	config.Timeout.Duration = 10 * time.Second
	config.RateLimit.RPS = 5
	config.RateLimit.Burst = 10
	return config
}

// LoadConfig loads configuration from a JSON file on top of the defaults.
// A missing file is not an error; environment overrides are applied last.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("Config file %s not found, using defaults", filename)
	case err != nil:
		return nil, err
	default:
		defer file.Close()
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	}

	if err := config.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return config, config.Validate()
}

// ApplyEnv overrides configuration values from environment variables
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("GEOCODING_URL"); v != "" {
		c.GeocodingURL = v
	}
	if v := getenv("FORECAST_URL"); v != "" {
		c.ForecastURL = v
	}
	if v := getenv("USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		c.Timeout.Duration = d
	}
	if v := getenv("GEOCODE_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid GEOCODE_CACHE_TTL: %w", err)
		}
		c.GeocodeCacheTTL.Duration = d
	}
	if v := getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
		}
		c.RateLimit.RPS = rps
	}
	return nil
}

// Validate checks the configuration for values the providers cannot work with
func (c *Config) Validate() error {
	if c.GeocodingURL == "" || c.ForecastURL == "" {
		return errors.New("geocodingURL and forecastURL are required")
	}
	if c.Timeout.Duration <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.GeocodeCacheTTL.Duration < 0 {
		return errors.New("geocodeCacheTTL must not be negative")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rateLimit rps and burst must be positive")
	}
	return nil
}
