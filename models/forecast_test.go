package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"
)

const sampleForecast = `{
	"latitude": 52.52,
	"longitude": 13.419998,
	"generationtime_ms": 0.3,
	"utc_offset_seconds": 0,
	"timezone": "GMT",
	"hourly_units": {"time": "iso8601", "temperature_2m": "°F", "cloudcover": ""},
	"hourly": {
		"time": ["2024-03-01T00:00", "2024-03-01T01:00"],
		"temperature_2m": [4.1, null],
		"apparent_temperature": [1.2, 0.8],
		"cloudcover": [100, 90],
		"visibility": [24140, 500],
		"windspeed_10m": [12.3, 11.9],
		"winddirection_10m": [250, 245],
		"precipitation": [0, 0.2],
		"precipitation_probability": [5, 30]
	}
}`

func TestParseForecast(t *testing.T) {
	fc, err := ParseForecast([]byte(sampleForecast))
	if err != nil {
		t.Fatalf("ParseForecast failed: %v", err)
	}
	if fc.Latitude != 52.52 || len(fc.Hourly.Time) != 2 {
		t.Fatalf("unexpected forecast: %+v", fc)
	}
	if _, ok := fc.Hourly.Temperature.At(1); ok {
		t.Fatal("null temperature should be reported as missing")
	}
	if v, ok := fc.Hourly.Visibility.At(1); !ok || v != 500 {
		t.Fatalf("visibility[1] = %v, %v", v, ok)
	}
	if got := fc.Hourly.IndexOf("2024-03-01T01:00"); got != 1 {
		t.Fatalf("IndexOf = %d, want 1", got)
	}
	if got := fc.Hourly.IndexOf("2024-03-02T01:00"); got != -1 {
		t.Fatalf("IndexOf(missing) = %d, want -1", got)
	}
}

func TestParseForecastRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"not json", `<html>`, "failed to parse"},
		{"no coordinates", `{"hourly": {"time": []}}`, "no coordinates"},
		{"no hourly", `{"latitude": 1, "longitude": 2}`, "no hourly"},
		{"missing series", `{"latitude": 1, "longitude": 2, "hourly": {"time": []}}`, "is missing"},
		{"length mismatch", strings.Replace(sampleForecast, `"cloudcover": [100, 90]`, `"cloudcover": [100]`, 1), "cloudcover has 1 entries"},
		{"bad timestamp", strings.Replace(sampleForecast, `"2024-03-01T01:00"`, `"soon"`, 1), "not a timestamp"},
		{"string value", strings.Replace(sampleForecast, `"precipitation": [0, 0.2]`, `"precipitation": ["0", 0.2]`, 1), "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseForecast([]byte(tt.payload))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSeriesKeepsNullsThroughJSON(t *testing.T) {
	in := Series{1.5, math.NaN(), 3}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "[1.5,null,3]" {
		t.Fatalf("Marshal = %s", data)
	}

	var out Series
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(out) != 3 || out[0] != 1.5 || !math.IsNaN(out[1]) || out[2] != 3 {
		t.Fatalf("Unmarshal = %v", out)
	}
}

func TestHourlyUnitsFallback(t *testing.T) {
	fc, err := ParseForecast([]byte(sampleForecast))
	if err != nil {
		t.Fatal(err)
	}

	if got := fc.HourlyUnits.Unit(VarTemperature); got != "°F" {
		t.Errorf("temperature unit = %q, want reported °F", got)
	}
	if got := fc.HourlyUnits.Unit(VarCloudCover); got != "%" {
		t.Errorf("empty cloudcover unit = %q, want default %%", got)
	}
	if got := HourlyUnits(nil).Unit(VarWindSpeed); got != "m/s" {
		t.Errorf("wind speed unit = %q, want m/s", got)
	}
	if got := HourlyUnits(nil).Unit(VarWindDirection); got != "°" {
		t.Errorf("wind direction unit = %q, want °", got)
	}
	if got := HourlyUnits(nil).Unit(VarPrecipitation); got != "mm" {
		t.Errorf("precipitation unit = %q, want mm", got)
	}
}

func TestForecastZone(t *testing.T) {
	if z := (Forecast{}).Zone(); z.String() != "UTC" {
		t.Fatalf("zero offset zone = %v", z)
	}
	z := Forecast{UTCOffsetSeconds: 3600, Timezone: "Europe/Berlin"}.Zone()
	name, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, z).Zone()
	if name != "Europe/Berlin" || offset != 3600 {
		t.Fatalf("zone = %s%+d", name, offset)
	}
}

func TestLocationRegion(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Location{State: "Berlin", Country: "Germany"}, "Berlin, Germany"},
		{Location{Country: "Monaco"}, "Monaco"},
		{Location{}, ""},
	}
	for _, tt := range tests {
		if got := tt.loc.Region(); got != tt.want {
			t.Errorf("Region(%+v) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}
