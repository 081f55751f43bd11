package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"weather-dashboard/cache"
	"weather-dashboard/datasource"
	"weather-dashboard/providers/openmeteo"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("=== Running Geocode Cache Test ===")
	fmt.Println("This will demonstrate how city lookups are cached between requests")
	fmt.Println("The test will take about 20 seconds to complete...")
	fmt.Println()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file:", err)
	}

	// Base URLs and timeout may be overridden from the environment
	config := datasource.DefaultConfig()
	if err := config.ApplyEnv(os.Getenv); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	// Set a short cache duration for demonstration purposes
	cacheDuration := 15 * time.Second
	cached := cache.NewCachedProvider(openmeteo.NewProviderFromConfig(config), cacheDuration)
	fmt.Printf("Using %s with a %s geocode cache\n", cached.Name(), cacheDuration)

	ctx := context.Background()
	cities := []string{"London", "New York", "Berlin"}

	fmt.Println("\n*** First Request - Should be cache misses ***")
	resolve(ctx, cached, cities)

	fmt.Println("\n*** Second Request - Should use cached locations ***")
	resolve(ctx, cached, cities)

	fmt.Println("\nWaiting for cache to expire...")
	time.Sleep(cacheDuration + time.Second)

	fmt.Println("\n*** After Expiry - Should be cache misses again ***")
	resolve(ctx, cached, cities)

	// Each city should have 1 hit and 2 misses
	hits, misses := cached.CacheStats()
	fmt.Printf("\nStats for %s: %d cache hits, %d cache misses\n", cached.Name(), hits, misses)

	fmt.Println("\n=== Cache Test Complete ===")
}

func resolve(ctx context.Context, provider datasource.Provider, cities []string) {
	for _, city := range cities {
		start := time.Now()
		loc, err := provider.Geocode(ctx, city)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("%s -> %.4f, %.4f (%s) in %s\n",
			city, loc.Latitude, loc.Longitude, loc.Region(), time.Since(start).Round(time.Millisecond))
	}
}
