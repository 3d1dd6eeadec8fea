package providers

import (
	"context"
	"log"

	"github.com/kelvins/geocoder"

	"weather-api/internal/weather"
)

// GoogleGeocoder implements the weather.Geocoder interface through the
// Google Maps geocoding API. It requires an API key; main falls back to the
// keyless Open-Meteo geocoder when none is configured.
type GoogleGeocoder struct {
	name string
}

// NewGoogleGeocoder configures the Google geocoding client with the API key.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{name: "google-geocoding"}
}

func (g *GoogleGeocoder) Name() string {
	return g.name
}

// Resolve forward-geocodes the city name. Google's forward lookup returns
// coordinates only, so the query text doubles as the display name.
func (g *GoogleGeocoder) Resolve(_ context.Context, city string) (weather.ResolvedLocation, error) {
	loc, err := geocoder.Geocoding(geocoder.Address{City: city})
	if err != nil {
		log.Printf("google geocoding failed for %q: %v", city, err)
		return weather.ResolvedLocation{}, weather.ErrLocationNotFound
	}

	return weather.ResolvedLocation{
		Name:      city,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}, nil
}
