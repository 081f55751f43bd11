package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/api"
	"weather-dashboard/cache"
	"weather-dashboard/datasource"
	"weather-dashboard/providers/openmeteo"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	port := flag.Int("port", 8080, "Port to run the server on")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", false, "Throttle calls to the Open-Meteo APIs")
	flag.Parse()

	// Load configuration
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var provider datasource.Provider = openmeteo.NewProviderFromConfig(config)
	log.Printf("Using geocoding API %s and forecast API %s", config.GeocodingURL, config.ForecastURL)

	// Apply rate limiting if enabled
	if *enableRateLimiting {
		provider = datasource.NewRateLimitedProvider(provider, config.RateLimit.RPS, config.RateLimit.RPS, config.RateLimit.Burst)
		log.Printf("Applied rate limiting: %.2f requests/second, burst %d", config.RateLimit.RPS, config.RateLimit.Burst)
	}

	// Geocode results rarely change, forecasts are always fetched fresh
	if ttl := config.GeocodeCacheTTL.Duration; ttl > 0 {
		provider = cache.NewCachedProvider(provider, ttl)
		log.Printf("Caching geocode lookups for %s", ttl)
	}

	server := api.NewServer(provider, *port)

	// Set up channel for graceful shutdown
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case sig := <-shutdownChan:
		fmt.Printf("Shutting down due to %s signal\n", sig)
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	fmt.Println("Shutdown complete")
}
