package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-dashboard/datasource"
	"weather-dashboard/models"
)

type stubProvider struct {
	geocodes  int
	forecasts int
	err       error
}

func (s *stubProvider) Geocode(ctx context.Context, city string) (models.Location, error) {
	s.geocodes++
	if s.err != nil {
		return models.Location{}, s.err
	}
	return models.Location{City: city, Latitude: 52.52, Longitude: 13.405}, nil
}

func (s *stubProvider) Forecast(ctx context.Context, lat, lng float64) (models.Forecast, error) {
	s.forecasts++
	return models.Forecast{Latitude: lat, Longitude: lng}, nil
}

func (s *stubProvider) Name() string { return "Stub" }

func TestCachedProviderHitsAndMisses(t *testing.T) {
	inner := &stubProvider{}
	c := NewCachedProvider(inner, time.Minute)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if c.Name() != "Stub [Cached]" {
		t.Fatalf("Name() = %q", c.Name())
	}

	for _, city := range []string{"Berlin", " berlin", "BERLIN "} {
		loc, err := c.Geocode(context.Background(), city)
		if err != nil {
			t.Fatalf("Geocode(%q) failed: %v", city, err)
		}
		if loc.City != "Berlin" {
			t.Fatalf("Geocode(%q) = %+v, want the first stored entry", city, loc)
		}
	}
	if inner.geocodes != 1 {
		t.Fatalf("inner geocodes = %d, want 1", inner.geocodes)
	}
	if hits, misses := c.CacheStats(); hits != 2 || misses != 1 {
		t.Fatalf("stats = %d/%d, want 2/1", hits, misses)
	}

	now = now.Add(2 * time.Minute)
	if _, err := c.Geocode(context.Background(), "Berlin"); err != nil {
		t.Fatal(err)
	}
	if inner.geocodes != 2 {
		t.Fatalf("expired entry not refreshed, inner geocodes = %d", inner.geocodes)
	}
}

func TestCachedProviderDoesNotStoreFailures(t *testing.T) {
	inner := &stubProvider{err: datasource.NewError("geocode", datasource.KindNotFound, nil)}
	c := NewCachedProvider(inner, time.Minute)

	for i := 0; i < 2; i++ {
		_, err := c.Geocode(context.Background(), "Zzzznotreal")
		if !errors.Is(err, datasource.ErrNotFound) {
			t.Fatalf("Geocode error = %v, want not found", err)
		}
	}
	if inner.geocodes != 2 {
		t.Fatalf("inner geocodes = %d, want 2", inner.geocodes)
	}
}

func TestCachedProviderPassesForecastsThrough(t *testing.T) {
	inner := &stubProvider{}
	c := NewCachedProvider(inner, time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := c.Forecast(context.Background(), 52.52, 13.405); err != nil {
			t.Fatal(err)
		}
	}
	if inner.forecasts != 3 {
		t.Fatalf("inner forecasts = %d, want 3", inner.forecasts)
	}
}
