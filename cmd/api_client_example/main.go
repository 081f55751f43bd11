package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the weather dashboard")
	city := flag.String("city", "Berlin", "City to look up")
	flag.Parse()

	fmt.Println("Weather Dashboard Client Example")
	fmt.Println("================================")

	client := &http.Client{Timeout: 15 * time.Second}

	// Resolve the city through the geocoding proxy
	fmt.Printf("\nResolving %s...\n", *city)
	geocodeURL := fmt.Sprintf("%s/api/cityToLatLng?city=%s", *baseURL, url.QueryEscape(*city))
	resp, err := client.Get(geocodeURL)
	if err != nil {
		fmt.Printf("Error resolving city: %v\n", err)
		os.Exit(1)
	}
	var coords struct {
		Lat   float64 `json:"lat"`
		Lng   float64 `json:"lng"`
		Error string  `json:"error"`
	}
	err = json.NewDecoder(resp.Body).Decode(&coords)
	resp.Body.Close()
	if err != nil {
		fmt.Printf("Error decoding response: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Lookup failed with %d: %s\n", resp.StatusCode, coords.Error)
		os.Exit(1)
	}
	fmt.Printf("%s is at %.4f, %.4f\n", *city, coords.Lat, coords.Lng)

	// The forecast proxy reads the coordinates from a JSON body on a GET request
	fmt.Println("\nFetching hourly forecast...")
	body := fmt.Sprintf(`{"lat": %g, "lng": %g}`, coords.Lat, coords.Lng)
	req, err := http.NewRequest(http.MethodGet, *baseURL+"/api/weather", strings.NewReader(body))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err = client.Do(req)
	if err != nil {
		fmt.Printf("Error fetching forecast: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading forecast: %v\n", err)
		os.Exit(1)
	}
	var forecast struct {
		Data struct {
			HourlyUnits map[string]string `json:"hourly_units"`
			Hourly      struct {
				Time        []string   `json:"time"`
				Temperature []*float64 `json:"temperature_2m"`
			} `json:"hourly"`
		} `json:"data"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &forecast); err != nil {
		fmt.Printf("Error decoding forecast: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Forecast failed with %d: %s\n", resp.StatusCode, forecast.Error)
		os.Exit(1)
	}

	hourly := forecast.Data.Hourly
	unit := forecast.Data.HourlyUnits["temperature_2m"]
	fmt.Printf("Received %d hours of data\n\n", len(hourly.Time))
	for i := 0; i < len(hourly.Time) && i < 12; i++ {
		temp := "n/a"
		if i < len(hourly.Temperature) && hourly.Temperature[i] != nil {
			temp = fmt.Sprintf("%.1f%s", *hourly.Temperature[i], unit)
		}
		fmt.Printf("  %s  %s\n", hourly.Time[i], temp)
	}
}
