package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-api/internal/weather"
)

func TestGeocodingResolve(t *testing.T) {
	var gotName, gotCount string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		gotCount = r.URL.Query().Get("count")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{
			"name": "San Francisco",
			"latitude": 37.77493,
			"longitude": -122.41942,
			"admin1": "California",
			"country": "United States"
		}]}`))
	}))
	defer srv.Close()

	p := NewGeocodingProvider(&http.Client{Timeout: time.Second}, srv.URL)

	loc, err := p.Resolve(context.Background(), "San Francisco")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotName != "San Francisco" {
		t.Errorf("name query = %q, want San Francisco", gotName)
	}
	if gotCount != "1" {
		t.Errorf("count query = %q, want 1", gotCount)
	}
	if loc.Name != "San Francisco, California, United States" {
		t.Errorf("display name = %q", loc.Name)
	}
	if loc.Latitude != 37.77493 || loc.Longitude != -122.41942 {
		t.Errorf("coordinates = (%v, %v)", loc.Latitude, loc.Longitude)
	}
}

func TestGeocodingResolveNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"generationtime_ms": 0.5}`))
	}))
	defer srv.Close()

	p := NewGeocodingProvider(&http.Client{Timeout: time.Second}, srv.URL)

	_, err := p.Resolve(context.Background(), "InvalidCityNameThatDoesNotExist123")
	if !errors.Is(err, weather.ErrLocationNotFound) {
		t.Fatalf("got %v, want ErrLocationNotFound", err)
	}
}

// A transport-level failure surfaces the same way as an unknown city.
func TestGeocodingResolveUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	p := NewGeocodingProvider(&http.Client{Timeout: time.Second}, srv.URL)

	_, err := p.Resolve(context.Background(), "London")
	if !errors.Is(err, weather.ErrLocationNotFound) {
		t.Fatalf("got %v, want ErrLocationNotFound", err)
	}
}

func TestGeocodingResolveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewGeocodingProvider(&http.Client{Timeout: time.Second}, srv.URL)

	_, err := p.Resolve(context.Background(), "London")
	if !errors.Is(err, weather.ErrLocationNotFound) {
		t.Fatalf("got %v, want ErrLocationNotFound", err)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		query string
		parts []string
		want  string
	}{
		{"berlin", []string{"Berlin", "", "Germany"}, "Berlin, Germany"},
		{"paris", []string{"Paris", "Île-de-France", "France"}, "Paris, Île-de-France, France"},
		{"somewhere", []string{"", "", ""}, "somewhere"},
		{"x", []string{"", "Bavaria", ""}, "Bavaria"},
	}

	for _, tc := range cases {
		if got := displayName(tc.query, tc.parts...); got != tc.want {
			t.Errorf("displayName(%q, %v) = %q, want %q", tc.query, tc.parts, got, tc.want)
		}
	}
}
