package weather

import (
	"fmt"
	"math"
)

// NormalizeOptions carries the fixed response shape and the fallback
// constants applied during normalization. Kept explicit so tests can
// override them instead of relying on embedded literals.
type NormalizeOptions struct {
	// HourlyPoints and DailyPoints are the exact series lengths of the
	// normalized response.
	HourlyPoints int
	DailyPoints  int

	// HourlyUVIndex is the fixed UV value for hourly entries; the upstream
	// feed has no UV at hourly granularity.
	HourlyUVIndex int

	// DefaultTimezone is used when the provider omits a timezone.
	DefaultTimezone string
}

// DefaultNormalizeOptions returns the production response shape.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		HourlyPoints:    24,
		DailyPoints:     7,
		HourlyUVIndex:   0,
		DefaultTimezone: "UTC",
	}
}

// Normalize reshapes a raw provider payload into the fixed WeatherResponse.
// It fails closed: a payload missing a required section, or whose series are
// shorter than the required counts, yields an error wrapping ErrUpstream and
// no partial response.
func Normalize(loc ResolvedLocation, payload ForecastPayload, opts NormalizeOptions) (WeatherResponse, error) {
	if err := validatePayload(payload, opts); err != nil {
		return WeatherResponse{}, err
	}

	// The current entry's min/max come from today's daily bounds, not from
	// the instantaneous reading.
	current := Weather{
		Time:           payload.Current.Time,
		Temperature:    roundTenth(payload.Current.Temperature),
		TemperatureMin: roundTenth(payload.Daily.TemperatureMin[0]),
		TemperatureMax: roundTenth(payload.Daily.TemperatureMax[0]),
		Condition:      ConditionLabel(payload.Current.WeatherCode),
		UVIndex:        roundUV(payload.Current.UVIndex),
	}

	hourly := make([]Weather, 0, opts.HourlyPoints)
	for i := 0; i < opts.HourlyPoints; i++ {
		temp := roundTenth(payload.Hourly.Temperature[i])
		hourly = append(hourly, Weather{
			Time:           payload.Hourly.Time[i],
			Temperature:    temp,
			TemperatureMin: temp,
			TemperatureMax: temp,
			Condition:      ConditionLabel(payload.Hourly.WeatherCode[i]),
			UVIndex:        opts.HourlyUVIndex,
		})
	}

	daily := make([]Weather, 0, opts.DailyPoints)
	for i := 0; i < opts.DailyPoints; i++ {
		min := roundTenth(payload.Daily.TemperatureMin[i])
		max := roundTenth(payload.Daily.TemperatureMax[i])
		daily = append(daily, Weather{
			Time:           payload.Daily.Time[i],
			Temperature:    roundTenth((min + max) / 2),
			TemperatureMin: min,
			TemperatureMax: max,
			Condition:      ConditionLabel(payload.Daily.WeatherCode[i]),
			UVIndex:        roundUV(payload.Daily.UVIndexMax[i]),
		})
	}

	timezone := payload.Timezone
	if timezone == "" {
		timezone = opts.DefaultTimezone
	}

	return WeatherResponse{
		Location: loc.Name,
		Timezone: timezone,
		Current:  current,
		Hourly:   hourly,
		Daily:    daily,
	}, nil
}

// validatePayload rejects payloads that cannot produce a complete response.
func validatePayload(payload ForecastPayload, opts NormalizeOptions) error {
	if payload.Current == nil {
		return fmt.Errorf("%w: missing current section", ErrUpstream)
	}
	if payload.Hourly == nil {
		return fmt.Errorf("%w: missing hourly section", ErrUpstream)
	}
	if payload.Daily == nil {
		return fmt.Errorf("%w: missing daily section", ErrUpstream)
	}

	h := payload.Hourly
	if len(h.Time) < opts.HourlyPoints || len(h.Temperature) < opts.HourlyPoints || len(h.WeatherCode) < opts.HourlyPoints {
		return fmt.Errorf("%w: hourly series has %d points, need %d",
			ErrUpstream, minLen(len(h.Time), len(h.Temperature), len(h.WeatherCode)), opts.HourlyPoints)
	}

	d := payload.Daily
	if len(d.Time) < opts.DailyPoints || len(d.TemperatureMin) < opts.DailyPoints ||
		len(d.TemperatureMax) < opts.DailyPoints || len(d.WeatherCode) < opts.DailyPoints ||
		len(d.UVIndexMax) < opts.DailyPoints {
		return fmt.Errorf("%w: daily series has %d points, need %d",
			ErrUpstream, minLen(len(d.Time), len(d.TemperatureMin), len(d.TemperatureMax), len(d.WeatherCode), len(d.UVIndexMax)), opts.DailyPoints)
	}

	for i := 0; i < opts.DailyPoints; i++ {
		if d.TemperatureMin[i] > d.TemperatureMax[i] {
			return fmt.Errorf("%w: daily point %d has min %.1f above max %.1f",
				ErrUpstream, i, d.TemperatureMin[i], d.TemperatureMax[i])
		}
	}

	return nil
}

// roundTenth rounds to one decimal place, half away from zero. The same
// rule is applied to current, hourly and daily temperatures.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// roundUV rounds a UV reading to the nearest integer. A missing reading
// coerces to zero, and the result never goes below zero.
func roundUV(v *float64) int {
	if v == nil {
		return 0
	}
	n := int(math.Round(*v))
	if n < 0 {
		return 0
	}
	return n
}

func minLen(ns ...int) int {
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return m
}
