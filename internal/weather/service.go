package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Service orchestrates the two sequential outbound lookups behind the
// weather endpoint: geocode the city, fetch the forecast for the resolved
// coordinates, normalize. Stateless; every request repeats both calls.
type Service struct {
	geocoder Geocoder
	forecast ForecastProvider
	opts     NormalizeOptions
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, forecast ForecastProvider, opts NormalizeOptions) *Service {
	return &Service{
		geocoder: geocoder,
		forecast: forecast,
		opts:     opts,
	}
}

// GetWeather resolves the city, fetches the forecast and returns the
// normalized response. Errors carry either ErrLocationNotFound or
// ErrUpstream so the HTTP layer can map them to status codes.
func (s *Service) GetWeather(ctx context.Context, city string) (WeatherResponse, error) {
	loc, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		return WeatherResponse{}, err
	}
	log.Printf("DEBUG: resolved %q to %q (%.4f, %.4f) via %s",
		city, loc.Name, loc.Latitude, loc.Longitude, s.geocoder.Name())

	payload, err := s.forecast.Fetch(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		log.Printf("provider %s forecast failed for %q: %v", s.forecast.Name(), loc.Name, err)
		if errors.Is(err, ErrUpstream) {
			return WeatherResponse{}, err
		}
		return WeatherResponse{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return Normalize(loc, payload, s.opts)
}
