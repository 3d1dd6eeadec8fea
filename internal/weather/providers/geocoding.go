package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"weather-api/internal/weather"
)

// GeocodingProvider implements the weather.Geocoder interface for the
// Open-Meteo geocoding API. One lookup per call, best match only.
type GeocodingProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewGeocodingProvider creates a geocoding client. baseURL is the API root
// without a trailing slash, e.g. "https://geocoding-api.open-meteo.com".
func NewGeocodingProvider(client *http.Client, baseURL string) *GeocodingProvider {
	return &GeocodingProvider{
		name:    "openmeteo-geocoding",
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo-geocoding"),
	}
}

func (p *GeocodingProvider) Name() string {
	return p.name
}

// Resolve looks up the single best match for a free-text city name.
// A transport failure surfaces the same way as an unknown city: the caller
// only learns that the location could not be resolved.
func (p *GeocodingProvider) Resolve(ctx context.Context, city string) (weather.ResolvedLocation, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", city)
		values.Set("count", "1")

		u := fmt.Sprintf("%s/v1/search?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		log.Printf("geocoding lookup failed for %q: %v", city, err)
		return weather.ResolvedLocation{}, weather.ErrLocationNotFound
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Admin1    string  `json:"admin1"`
			Country   string  `json:"country"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("geocoding response decode failed for %q: %v", city, err)
		return weather.ResolvedLocation{}, weather.ErrLocationNotFound
	}
	if len(payload.Results) == 0 {
		return weather.ResolvedLocation{}, weather.ErrLocationNotFound
	}

	best := payload.Results[0]
	return weather.ResolvedLocation{
		Name:      displayName(city, best.Name, best.Admin1, best.Country),
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
	}, nil
}

// displayName joins the supplied name parts, most specific first, skipping
// parts the provider left empty. When nothing is available the original
// query text is echoed back.
func displayName(query string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	if len(kept) == 0 {
		return query
	}
	return strings.Join(kept, ", ")
}
