package weather

import (
	"context"
	"errors"
)

var (
	// ErrLocationNotFound is returned when a city name cannot be resolved
	// to coordinates.
	ErrLocationNotFound = errors.New("location not found")

	// ErrUpstream is returned when the forecast provider fails or hands
	// back a payload that cannot be normalized.
	ErrUpstream = errors.New("upstream forecast data unavailable")
)

// Geocoder resolves a free-text city name to coordinates and a display name.
type Geocoder interface {
	Name() string
	Resolve(ctx context.Context, city string) (ResolvedLocation, error)
}

// ForecastProvider fetches the raw forecast payload for a coordinate pair.
// Implementations must request automatic timezone resolution so the hourly
// series starts at "now" and the daily series at "today" in the location's
// local time.
type ForecastProvider interface {
	Name() string
	Fetch(ctx context.Context, lat, lon float64) (ForecastPayload, error)
}

// ForecastPayload is the provider's raw forecast data before normalization.
// Sections are pointers so a missing section is distinguishable from an
// empty one and can be rejected at the boundary.
type ForecastPayload struct {
	Timezone string
	Current  *CurrentConditions
	Hourly   *HourlySeries
	Daily    *DailySeries
}

// CurrentConditions is the provider's instantaneous reading. UVIndex is nil
// when the provider did not supply one.
type CurrentConditions struct {
	Time        string
	Temperature float64
	WeatherCode int
	UVIndex     *float64
}

// HourlySeries holds parallel per-hour arrays as delivered by the provider.
type HourlySeries struct {
	Time        []string
	Temperature []float64
	WeatherCode []int
}

// DailySeries holds parallel per-day arrays as delivered by the provider.
type DailySeries struct {
	Time           []string
	TemperatureMin []float64
	TemperatureMax []float64
	WeatherCode    []int
	UVIndexMax     []*float64
}
