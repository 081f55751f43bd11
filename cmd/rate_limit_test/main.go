package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
)

// mockProvider simulates collaborator latency and counts calls
type mockProvider struct {
	mutex     sync.Mutex
	callCount int
	latency   time.Duration
}

func (m *mockProvider) record(what string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.callCount++
	fmt.Printf("%s - Processing %s #%d\n", time.Now().Format("15:04:05.000"), what, m.callCount)
}

func (m *mockProvider) wait(ctx context.Context) error {
	select {
	case <-time.After(m.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *mockProvider) Geocode(ctx context.Context, city string) (models.Location, error) {
	m.record("geocode for " + city)
	if err := m.wait(ctx); err != nil {
		return models.Location{}, err
	}
	return models.Location{City: city, Latitude: 52.52, Longitude: 13.405}, nil
}

func (m *mockProvider) Forecast(ctx context.Context, lat, lng float64) (models.Forecast, error) {
	m.record("forecast")
	if err := m.wait(ctx); err != nil {
		return models.Forecast{}, err
	}
	return models.Forecast{Latitude: lat, Longitude: lng}, nil
}

func (m *mockProvider) Name() string {
	return "MockProvider"
}

func (m *mockProvider) calls() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.callCount
}

func main() {
	requestsPerSecond := flag.Float64("rps", 1.0, "Rate limit in requests per second")
	burstSize := flag.Int("burst", 3, "Maximum burst size")
	totalPages := flag.Int("pages", 10, "Number of simulated page renders")
	concurrent := flag.Int("concurrent", 5, "Number of concurrent renders")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	mock := &mockProvider{latency: 200 * time.Millisecond}
	provider := datasource.NewRateLimitedProvider(mock, *requestsPerSecond, *requestsPerSecond, *burstSize)

	fmt.Printf("Testing %s with:\n", provider.Name())
	fmt.Printf("- Rate limit: %.2f requests/second per API\n", *requestsPerSecond)
	fmt.Printf("- Burst size: %d\n", *burstSize)
	fmt.Printf("- Page renders: %d (one geocode and one forecast each)\n", *totalPages)
	fmt.Printf("- Concurrent workers: %d\n", *concurrent)
	fmt.Println("Starting test...")

	startTime := time.Now()
	pages := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < *concurrent; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for page := range pages {
				before := time.Now()
				loc, err := provider.Geocode(ctx, fmt.Sprintf("City-%d", page))
				if err == nil {
					_, err = provider.Forecast(ctx, loc.Latitude, loc.Longitude)
				}
				if err != nil {
					log.Printf("Worker %d - Page %d failed: %v", workerID, page, err)
					continue
				}
				log.Printf("Worker %d - Page %d completed in %v", workerID, page, time.Since(before))
			}
		}(w)
	}

	for i := 0; i < *totalPages; i++ {
		pages <- i
	}
	close(pages)
	wg.Wait()

	totalTime := time.Since(startTime)
	actualRPS := float64(*totalPages) / totalTime.Seconds()

	fmt.Println("\nTest completed!")
	fmt.Printf("Total time: %.2f seconds\n", totalTime.Seconds())
	fmt.Printf("Actual page renders per second: %.2f\n", actualRPS)
	fmt.Printf("Total collaborator calls: %d\n", mock.calls())

	expectedMinTime := float64(*totalPages-*burstSize) / *requestsPerSecond
	if expectedMinTime < 0 {
		expectedMinTime = 0
	}
	fmt.Printf("Expected minimum time (theoretical): %.2f seconds\n", expectedMinTime)

	if actualRPS > *requestsPerSecond*1.5 && *totalPages > *burstSize {
		fmt.Println("\nWARNING: renders per second significantly higher than the configured rate limit")
	} else {
		fmt.Println("\nRate limiting appears to be working correctly.")
	}
}
