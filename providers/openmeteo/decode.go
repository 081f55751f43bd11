package openmeteo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
)

// geocodeResponse is the subset of the geocoding API response we rely on.
// Pointers tell absent fields apart from zero values.
type geocodeResponse struct {
	Results *[]geocodeResult `json:"results"`
}

type geocodeResult struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Name      string   `json:"name"`
	Admin1    string   `json:"admin1"`
	Country   string   `json:"country"`
}

// maxReasonLength bounds how much of an unparsed error body ends up in an error
const maxReasonLength = 200

type errorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// decodeGeocode turns a geocoding response body into the first matching location
func decodeGeocode(body []byte) (models.Location, error) {
	var response geocodeResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Location{}, datasource.NewError(opGeocode, datasource.KindMalformed, fmt.Errorf("failed to parse response: %w", err))
	}

	if response.Results == nil || len(*response.Results) == 0 {
		return models.Location{}, datasource.NewError(opGeocode, datasource.KindNotFound, errors.New("no results"))
	}

	first := (*response.Results)[0]
	if first.Latitude == nil || first.Longitude == nil {
		return models.Location{}, datasource.NewError(opGeocode, datasource.KindMalformed, errors.New("first result has no coordinates"))
	}
	if err := datasource.ValidateCoordinates(*first.Latitude, *first.Longitude); err != nil {
		return models.Location{}, datasource.NewError(opGeocode, datasource.KindMalformed, err)
	}

	return models.Location{
		Latitude:  *first.Latitude,
		Longitude: *first.Longitude,
		City:      first.Name,
		State:     first.Admin1,
		Country:   first.Country,
	}, nil
}

// decodeForecast validates a forecast response body. Anything that would leave
// the hourly series misaligned or unreadable is rejected.
func decodeForecast(body []byte) (models.Forecast, error) {
	fc, err := models.ParseForecast(body)
	if err != nil {
		return models.Forecast{}, datasource.NewError(opForecast, datasource.KindMalformed, err)
	}
	return fc, nil
}

// apiReason extracts the "reason" of an API error body, falling back to the raw body
func apiReason(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Reason != "" {
		return e.Reason
	}
	text := strings.TrimSpace(string(body))
	if len(text) > maxReasonLength {
		cut := maxReasonLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}
