package weather

import (
	"context"
	"errors"
	"testing"
)

type stubGeocoder struct {
	loc ResolvedLocation
	err error
}

func (s stubGeocoder) Name() string { return "stub-geocoder" }

func (s stubGeocoder) Resolve(context.Context, string) (ResolvedLocation, error) {
	return s.loc, s.err
}

type stubForecast struct {
	payload ForecastPayload
	err     error
}

func (s stubForecast) Name() string { return "stub-forecast" }

func (s stubForecast) Fetch(context.Context, float64, float64) (ForecastPayload, error) {
	return s.payload, s.err
}

func TestServiceUnknownLocation(t *testing.T) {
	svc := NewService(
		stubGeocoder{err: ErrLocationNotFound},
		stubForecast{},
		DefaultNormalizeOptions(),
	)

	_, err := svc.GetWeather(context.Background(), "InvalidCityNameThatDoesNotExist123")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("got %v, want ErrLocationNotFound", err)
	}
}

func TestServiceForecastFailure(t *testing.T) {
	svc := NewService(
		stubGeocoder{loc: ResolvedLocation{Name: "London", Latitude: 51.5, Longitude: -0.13}},
		stubForecast{err: errors.New("connection refused")},
		DefaultNormalizeOptions(),
	)

	_, err := svc.GetWeather(context.Background(), "London")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("got %v, want ErrUpstream", err)
	}
}

func TestServiceSuccess(t *testing.T) {
	svc := NewService(
		stubGeocoder{loc: ResolvedLocation{Name: "San Francisco, California, United States", Latitude: 37.77, Longitude: -122.42}},
		stubForecast{payload: validPayload(24, 7)},
		DefaultNormalizeOptions(),
	)

	resp, err := svc.GetWeather(context.Background(), "San Francisco")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The response carries the resolved display name, not the raw input.
	if resp.Location != "San Francisco, California, United States" {
		t.Errorf("location = %q, want resolved display name", resp.Location)
	}
	if len(resp.Hourly) != 24 || len(resp.Daily) != 7 {
		t.Errorf("shape = (%d, %d), want (24, 7)", len(resp.Hourly), len(resp.Daily))
	}
}
