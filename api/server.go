package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"weather-dashboard/dashboard"
	"weather-dashboard/datasource"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server represents the dashboard HTTP server
type Server struct {
	provider  datasource.Provider
	assembler *dashboard.Assembler
	engine    *gin.Engine
	server    *http.Server

	// now is the instant used to pick the current hour of a forecast
	now func() time.Time
}

// NewServer creates the dashboard server. Pages and proxy endpoints share provider.
func NewServer(provider datasource.Provider, port int) *Server {
	s := &Server{
		provider:  provider,
		assembler: dashboard.NewAssembler(provider),
		now:       time.Now,
	}

	s.engine = gin.New()
	s.engine.Use(
		gin.LoggerWithConfig(gin.LoggerConfig{SkipPaths: []string{"/api/health"}}),
		gin.Recovery(),
	)
	s.engine.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	// Pages
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/weather/:city", s.handleWeatherPage)
	s.engine.NoRoute(s.handleNoRoute)

	// Proxy endpoints, GET only; other methods are answered with 405
	s.engine.Any("/api/cityToLatLng", s.handleCityToLatLng)
	s.engine.Any("/api/weather", s.handleWeather)

	// Health check
	s.engine.GET("/api/health", s.handleHealthCheck)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router returns the HTTP handler serving every route
func (s *Server) Router() http.Handler {
	return s.engine
}

// Start begins serving and blocks until the server stops
func (s *Server) Start() error {
	log.Printf("Starting weather dashboard on %s using %s", s.server.Addr, s.provider.Name())
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// statusFor maps a lookup failure to the HTTP status presented to the client
func statusFor(err error) int {
	switch datasource.KindOf(err) {
	case datasource.KindInvalidInput:
		return http.StatusBadRequest
	case datasource.KindNotFound, datasource.KindMalformed:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"provider":  s.provider.Name(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
