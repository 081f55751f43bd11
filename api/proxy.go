package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	errCityInvalid        = "City was missing or invalid"
	errCoordinatesInvalid = "Lat or Lng was missing or invalid"
	errCityNotFound       = "City not found"
	errUnavailable        = "Weather service unavailable"
	errMethodNotAllowed   = "Method not allowed"
)

func methodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodGet)
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": errMethodNotAllowed})
}

// writeLookupError answers a failed provider call with {error} and its status
func writeLookupError(c *gin.Context, err error, invalid string) {
	status := statusFor(err)
	message := errUnavailable
	switch status {
	case http.StatusBadRequest:
		message = invalid
	case http.StatusNotFound:
		message = errCityNotFound
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": message})
}

// handleCityToLatLng resolves ?city= to {lat, lng}
func (s *Server) handleCityToLatLng(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		methodNotAllowed(c)
		return
	}

	cities := c.QueryArray("city")
	if len(cities) != 1 || strings.TrimSpace(cities[0]) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errCityInvalid})
		return
	}

	loc, err := s.provider.Geocode(c.Request.Context(), cities[0])
	if err != nil {
		writeLookupError(c, err, errCityInvalid)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lat": loc.Latitude, "lng": loc.Longitude})
}

type coordinatesRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// readCoordinates takes lat/lng from the JSON body, or from the query when
// the body is empty
func readCoordinates(c *gin.Context) (lat, lng float64, ok bool) {
	var req coordinatesRequest
	err := c.ShouldBindJSON(&req)
	if errors.Is(err, io.EOF) {
		return coordinatesFromQuery(c)
	}
	if err != nil || req.Lat == nil || req.Lng == nil {
		return 0, 0, false
	}
	return *req.Lat, *req.Lng, true
}

func coordinatesFromQuery(c *gin.Context) (lat, lng float64, ok bool) {
	latStr, latOK := c.GetQuery("lat")
	lngStr, lngOK := c.GetQuery("lng")
	if !latOK || !lngOK {
		return 0, 0, false
	}

	var err error
	if lat, err = strconv.ParseFloat(latStr, 64); err != nil {
		return 0, 0, false
	}
	if lng, err = strconv.ParseFloat(lngStr, 64); err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// handleWeather returns the raw forecast for {lat, lng} as {data}
func (s *Server) handleWeather(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		methodNotAllowed(c)
		return
	}

	lat, lng, ok := readCoordinates(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errCoordinatesInvalid})
		return
	}

	forecast, err := s.provider.Forecast(c.Request.Context(), lat, lng)
	if err != nil {
		writeLookupError(c, err, errCoordinatesInvalid)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": forecast})
}
