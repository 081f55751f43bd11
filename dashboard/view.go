package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
	"weather-dashboard/timeutil"

	"golang.org/x/text/language"
)

// Phase of a View
type Phase int

const (
	Loading Phase = iota
	Ready
)

func (p Phase) String() string {
	if p == Ready {
		return "ready"
	}
	return "loading"
}

// Units are the resolved unit labels of one forecast
type Units struct {
	Temperature              string
	CloudCover               string
	Visibility               string
	WindSpeed                string
	WindDirection            string
	Precipitation            string
	PrecipitationProbability string
}

func resolveUnits(u models.HourlyUnits) Units {
	return Units{
		Temperature:              u.Unit(models.VarTemperature),
		CloudCover:               u.Unit(models.VarCloudCover),
		Visibility:               u.Unit(models.VarVisibility),
		WindSpeed:                u.Unit(models.VarWindSpeed),
		WindDirection:            u.Unit(models.VarWindDirection),
		Precipitation:            u.Unit(models.VarPrecipitation),
		PrecipitationProbability: u.Unit(models.VarPrecipitationProbability),
	}
}

// View is everything the dashboard page displays, derived from Props
type View struct {
	City    string
	State   string
	Country string

	Latitude  float64
	Longitude float64

	Units Units

	// CurrentTime is the rounded current hour, CurrentIndex its position in
	// the hourly time sequence or -1 when the forecast does not cover it
	CurrentTime  string
	CurrentIndex int

	Tiles  []models.Tile
	Points []models.ChartPoint
	Charts []Chart

	phase Phase
}

// NewView runs the client phase: it decodes the forecast in props, locates
// the current hour for now and derives the tiles, chart points and charts.
func NewView(props Props, now time.Time, locale language.Tag) (*View, error) {
	v := &View{
		City:         props.City,
		State:        props.State,
		Country:      props.Country,
		CurrentIndex: -1,
	}

	forecast, err := models.ParseForecast([]byte(props.Weather))
	if err != nil {
		return nil, datasource.NewError("render", datasource.KindMalformed, err)
	}

	v.Latitude = forecast.Latitude
	v.Longitude = forecast.Longitude
	v.Units = resolveUnits(forecast.HourlyUnits)

	zone := forecast.Zone()
	v.CurrentTime = timeutil.CurrentHour(now, zone)
	v.CurrentIndex = forecast.Hourly.IndexOf(v.CurrentTime)

	v.Tiles = currentTiles(forecast.Hourly, v.CurrentIndex, v.Units)
	v.Points = ChartPoints(forecast.Hourly, zone, LocaleTimeLayout(locale))
	v.Charts = BuildCharts(v.Points, v.Units)

	v.phase = Ready
	return v, nil
}

// Phase reports whether the view finished deriving its values
func (v *View) Phase() Phase {
	if v == nil {
		return Loading
	}
	return v.phase
}

// Region is the "State, Country" line of the header
func (v *View) Region() string {
	return models.Location{State: v.State, Country: v.Country}.Region()
}

// Coordinates is the header tooltip with the forecast's latitude and longitude
func (v *View) Coordinates() string {
	return fmt.Sprintf("%s, %s", formatNumber(v.Latitude), formatNumber(v.Longitude))
}

// HasCurrent reports whether the forecast covers the current hour
func (v *View) HasCurrent() bool {
	return v.CurrentIndex >= 0
}

func currentTiles(h models.HourlySeries, i int, u Units) []models.Tile {
	temp, tempOK := h.Temperature.At(i)
	apparent, apparentOK := h.ApparentTemperature.At(i)
	clouds, cloudsOK := h.CloudCover.At(i)
	speed, speedOK := h.WindSpeed.At(i)
	direction, directionOK := h.WindDirection.At(i)

	visibility := NotAvailable
	if meters, ok := h.Visibility.At(i); ok {
		visibility = FormatVisibility(meters)
	}

	return []models.Tile{
		{Label: "Currently", Text: FormatValue(temp, tempOK, u.Temperature)},
		{Label: "Feels like", Text: FormatValue(apparent, apparentOK, u.Temperature)},
		{Label: "Visibility", Text: visibility},
		{Label: "Cloud coverage", Text: FormatValue(clouds, cloudsOK, u.CloudCover)},
		{Label: "Wind speed", Text: FormatValue(speed, speedOK, u.WindSpeed)},
		{Label: "Wind direction", Text: FormatValue(direction, directionOK, u.WindDirection)},
	}
}

// ChartPoints pairs every hour of the forecast into one aligned point.
// Point i always carries index i of every series; missing hours stay NaN.
func ChartPoints(h models.HourlySeries, zone *time.Location, layout string) []models.ChartPoint {
	points := make([]models.ChartPoint, len(h.Time))
	for i, ts := range h.Time {
		points[i] = models.ChartPoint{
			Time:                     FormatHour(ts, zone, layout),
			Temp:                     valueAt(h.Temperature, i),
			CloudCover:               valueAt(h.CloudCover, i),
			Precipitation:            valueAt(h.Precipitation, i),
			PrecipitationProbability: valueAt(h.PrecipitationProbability, i),
		}
	}
	return points
}

func valueAt(s models.Series, i int) float64 {
	if v, ok := s.At(i); ok {
		return v
	}
	return math.NaN()
}

// Title is the page title for the view
func (v *View) Title() string {
	parts := []string{v.City}
	if region := v.Region(); region != "" {
		parts = append(parts, region)
	}
	return strings.Join(parts, " - ")
}
