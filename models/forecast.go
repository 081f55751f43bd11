package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Hourly variable names as used by the forecast API
const (
	VarTemperature              = "temperature_2m"
	VarApparentTemperature      = "apparent_temperature"
	VarCloudCover               = "cloudcover"
	VarVisibility               = "visibility"
	VarWindSpeed                = "windspeed_10m"
	VarWindDirection            = "winddirection_10m"
	VarPrecipitation            = "precipitation"
	VarPrecipitationProbability = "precipitation_probability"
)

// TimeLayout is the layout of the entries in HourlySeries.Time
const TimeLayout = "2006-01-02T15:04"

// HourlyVariables is the fixed list of hourly variables requested for every forecast
var HourlyVariables = []string{
	VarTemperature,
	VarCloudCover,
	VarVisibility,
	VarWindSpeed,
	VarWindDirection,
	VarApparentTemperature,
	VarPrecipitationProbability,
	VarPrecipitation,
}

// DefaultUnits are used when the forecast does not report a unit for a variable
var DefaultUnits = map[string]string{
	VarTemperature:              "°C",
	VarApparentTemperature:      "°C",
	VarCloudCover:               "%",
	VarVisibility:               "m",
	VarWindSpeed:                "m/s",
	VarWindDirection:            "°",
	VarPrecipitation:            "mm",
	VarPrecipitationProbability: "%",
}

// Series is one hourly measurement sequence. Missing hours (JSON null) are held as NaN.
type Series []float64

// UnmarshalJSON decodes a JSON array of numbers, mapping null entries to NaN
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = nil
		return nil
	}

	out := make(Series, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	*s = out
	return nil
}

// MarshalJSON encodes NaN entries back as null
func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	raw := make([]*float64, len(s))
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		v := v
		raw[i] = &v
	}
	return json.Marshal(raw)
}

// At returns the value at index i. ok is false when i is out of range or the hour is missing.
func (s Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s) || math.IsNaN(s[i]) {
		return 0, false
	}
	return s[i], true
}

// HourlySeries holds the parallel hourly sequences of a forecast, all indexed by Time
type HourlySeries struct {
	Time                     []string `json:"time"`
	Temperature              Series   `json:"temperature_2m"`
	ApparentTemperature      Series   `json:"apparent_temperature"`
	CloudCover               Series   `json:"cloudcover"`
	Visibility               Series   `json:"visibility"`
	WindSpeed                Series   `json:"windspeed_10m"`
	WindDirection            Series   `json:"winddirection_10m"`
	Precipitation            Series   `json:"precipitation"`
	PrecipitationProbability Series   `json:"precipitation_probability"`
}

type namedSeries struct {
	name   string
	series Series
}

func (h HourlySeries) byVariable() []namedSeries {
	return []namedSeries{
		{VarTemperature, h.Temperature},
		{VarApparentTemperature, h.ApparentTemperature},
		{VarCloudCover, h.CloudCover},
		{VarVisibility, h.Visibility},
		{VarWindSpeed, h.WindSpeed},
		{VarWindDirection, h.WindDirection},
		{VarPrecipitation, h.Precipitation},
		{VarPrecipitationProbability, h.PrecipitationProbability},
	}
}

// Validate checks that time is present and every series has one entry per hour
func (h HourlySeries) Validate() error {
	if h.Time == nil {
		return fmt.Errorf("hourly time sequence is missing")
	}
	for _, v := range h.byVariable() {
		if v.series == nil {
			return fmt.Errorf("hourly series %s is missing", v.name)
		}
		if len(v.series) != len(h.Time) {
			return fmt.Errorf("hourly series %s has %d entries, expected %d", v.name, len(v.series), len(h.Time))
		}
	}
	return nil
}

// IndexOf returns the position of the exact timestamp t in Time, or -1
func (h HourlySeries) IndexOf(t string) int {
	for i, ts := range h.Time {
		if ts == t {
			return i
		}
	}
	return -1
}

// HourlyUnits maps an hourly variable name to its unit
type HourlyUnits map[string]string

// Unit returns the reported unit for a variable, falling back to DefaultUnits
func (u HourlyUnits) Unit(variable string) string {
	if unit, ok := u[variable]; ok && unit != "" {
		return unit
	}
	return DefaultUnits[variable]
}

// Forecast is the validated hourly forecast payload for one location
type Forecast struct {
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	UTCOffsetSeconds int          `json:"utc_offset_seconds"`
	Timezone         string       `json:"timezone,omitempty"`
	HourlyUnits      HourlyUnits  `json:"hourly_units,omitempty"`
	Hourly           HourlySeries `json:"hourly"`
}

// Zone returns the time zone the hourly timestamps are expressed in
func (f Forecast) Zone() *time.Location {
	if f.UTCOffsetSeconds == 0 {
		return time.UTC
	}
	name := f.Timezone
	if name == "" {
		name = fmt.Sprintf("UTC%+d", f.UTCOffsetSeconds/3600)
	}
	return time.FixedZone(name, f.UTCOffsetSeconds)
}

// forecastPayload mirrors Forecast with pointers so absent fields can be detected
type forecastPayload struct {
	Latitude         *float64      `json:"latitude"`
	Longitude        *float64      `json:"longitude"`
	UTCOffsetSeconds int           `json:"utc_offset_seconds"`
	Timezone         string        `json:"timezone"`
	HourlyUnits      HourlyUnits   `json:"hourly_units"`
	Hourly           *HourlySeries `json:"hourly"`
}

// ParseForecast decodes a forecast payload and rejects it unless the coordinates
// are present, every hourly series is aligned with time, and every time entry
// is an hourly timestamp.
func ParseForecast(data []byte) (Forecast, error) {
	var payload forecastPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Forecast{}, fmt.Errorf("failed to parse forecast: %w", err)
	}

	if payload.Latitude == nil || payload.Longitude == nil {
		return Forecast{}, errors.New("forecast has no coordinates")
	}
	if payload.Hourly == nil {
		return Forecast{}, errors.New("forecast has no hourly block")
	}
	if err := payload.Hourly.Validate(); err != nil {
		return Forecast{}, err
	}
	for i, ts := range payload.Hourly.Time {
		if _, err := time.Parse(TimeLayout, ts); err != nil {
			return Forecast{}, fmt.Errorf("hourly time %d (%q) is not a timestamp", i, ts)
		}
	}

	return Forecast{
		Latitude:         *payload.Latitude,
		Longitude:        *payload.Longitude,
		UTCOffsetSeconds: payload.UTCOffsetSeconds,
		Timezone:         payload.Timezone,
		HourlyUnits:      payload.HourlyUnits,
		Hourly:           *payload.Hourly,
	}, nil
}

// ChartPoint is one hour of aligned chart data
type ChartPoint struct {
	Time                     string // locale formatted label
	Temp                     float64
	CloudCover               float64
	Precipitation            float64
	PrecipitationProbability float64
}

// Tile is a label/value pair shown in the current conditions panel
type Tile struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}
