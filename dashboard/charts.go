package dashboard

import (
	"fmt"
	"html/template"
	"math"

	"weather-dashboard/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
)

// EChartsScript is the echarts build the rendered snippets expect on the page
const EChartsScript = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

const (
	chartWidth  = "500px"
	chartHeight = "200px"

	lineColor = "#FFFFFF"
	barColor  = "#003FFB"
)

// Chart is one rendered chart: a container element and the script that fills it
type Chart struct {
	ID      string
	Title   string
	Element template.HTML
	Script  template.HTML
}

func newChart(id, title string, snippet render.ChartSnippet) Chart {
	return Chart{
		ID:      id,
		Title:   title,
		Element: template.HTML(snippet.Element),
		Script:  template.HTML(snippet.Script),
	}
}

// BuildCharts renders the temperature, cloud cover and precipitation charts.
// All three share the time labels of points.
func BuildCharts(points []models.ChartPoint, units Units) []Chart {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Time
	}

	temperature := newLineChart("temperature", units.Temperature).
		SetXAxis(labels).
		AddSeries("Temperature", lineData(points, func(p models.ChartPoint) float64 { return p.Temp }),
			seriesUnit(units.Temperature), lineStyle())

	clouds := newLineChart("cloudcover", units.CloudCover).
		SetXAxis(labels).
		AddSeries("Cloud coverage", lineData(points, func(p models.ChartPoint) float64 { return p.CloudCover }),
			seriesUnit(units.CloudCover), lineStyle())

	precipitation := charts.NewBar()
	precipitation.SetGlobalOptions(append(commonOptions("precipitation"),
		charts.WithYAxisOpts(yAxis(units.PrecipitationProbability)))...)
	precipitation.SetXAxis(labels).
		AddSeries("Precipitation", barData(points),
			seriesUnit(units.Precipitation),
			charts.WithBarChartOpts(opts.BarChart{BarWidth: "25"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: barColor}))

	probability := charts.NewLine()
	probability.SetXAxis(labels).
		AddSeries("Precipitation probability",
			lineData(points, func(p models.ChartPoint) float64 { return p.PrecipitationProbability }),
			seriesUnit(units.PrecipitationProbability), lineStyle())
	precipitation.Overlap(probability)

	return []Chart{
		newChart("temperature", "Temperature", temperature.RenderSnippet()),
		newChart("cloudcover", "Cloud coverage", clouds.RenderSnippet()),
		newChart("precipitation", "Precipitation", precipitation.RenderSnippet()),
	}
}

func commonOptions(id string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:   chartWidth,
			Height:  chartHeight,
			ChartID: id,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		// ticks only show the day and month part of the label
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Formatter: opts.FuncOpts("function (value) { return value.substring(0, 5); }"),
			},
		}),
	}
}

func newLineChart(id, unit string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(commonOptions(id), charts.WithYAxisOpts(yAxis(unit)))...)
	return line
}

func yAxis(unit string) opts.YAxis {
	return opts.YAxis{
		AxisLabel: &opts.AxisLabel{Formatter: opts.FuncOpts(unitFormatter(unit))},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Type: "dashed"},
		},
	}
}

// seriesUnit makes the shared axis tooltip print each value with its own unit
func seriesUnit(unit string) charts.SeriesOpts {
	return charts.WithSeriesTooltipOpts(opts.SeriesTooltip{
		ValueFormatter: opts.FuncOpts(unitFormatter(unit)),
	})
}

// the unit ends up inside a <script> element, so it is JS-escaped
func unitFormatter(unit string) string {
	return fmt.Sprintf("function (value) { return value + \"%s\"; }", template.JSEscapeString(unit))
}

func lineStyle() charts.SeriesOpts {
	return charts.WithLineChartOpts(opts.LineChart{
		Smooth:     opts.Bool(true),
		ShowSymbol: opts.Bool(false),
	})
}

// missing hours are passed as "-" which echarts draws as a gap
func chartValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return v
}

func lineData(points []models.ChartPoint, field func(models.ChartPoint) float64) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		data[i] = opts.LineData{Value: chartValue(field(p))}
	}
	return data
}

func barData(points []models.ChartPoint) []opts.BarData {
	data := make([]opts.BarData, len(points))
	for i, p := range points {
		data[i] = opts.BarData{Value: chartValue(p.Precipitation)}
	}
	return data
}
