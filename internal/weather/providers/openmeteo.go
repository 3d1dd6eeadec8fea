package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"weather-api/internal/weather"
)

// OpenMeteoProvider implements the weather.ForecastProvider interface for
// the Open-Meteo forecast API. The API is keyless; timezone=auto makes the
// upstream align the hourly series to "now" and the daily series to "today"
// in the location's local time.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
	days    int
}

// NewOpenMeteoProvider creates a forecast client. baseURL is the API root
// without a trailing slash, e.g. "https://api.open-meteo.com".
func NewOpenMeteoProvider(client *http.Client, baseURL string, days int) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo"),
		days:    days,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, lat, lon float64) (weather.ForecastPayload, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("current", "temperature_2m,weather_code,uv_index")
		values.Set("hourly", "temperature_2m,weather_code")
		values.Set("daily", "temperature_2m_max,temperature_2m_min,weather_code,uv_index_max")
		values.Set("timezone", "auto")
		values.Set("forecast_days", strconv.Itoa(p.days))

		u := fmt.Sprintf("%s/v1/forecast?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		return weather.ForecastPayload{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Timezone string `json:"timezone"`
		Current  *struct {
			Time          string   `json:"time"`
			Temperature2m float64  `json:"temperature_2m"`
			WeatherCode   int      `json:"weather_code"`
			UVIndex       *float64 `json:"uv_index"`
		} `json:"current"`
		Hourly *struct {
			Time          []string  `json:"time"`
			Temperature2m []float64 `json:"temperature_2m"`
			WeatherCode   []int     `json:"weather_code"`
		} `json:"hourly"`
		Daily *struct {
			Time             []string   `json:"time"`
			Temperature2mMax []float64  `json:"temperature_2m_max"`
			Temperature2mMin []float64  `json:"temperature_2m_min"`
			WeatherCode      []int      `json:"weather_code"`
			UVIndexMax       []*float64 `json:"uv_index_max"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.ForecastPayload{}, err
	}

	out := weather.ForecastPayload{Timezone: payload.Timezone}
	if payload.Current != nil {
		out.Current = &weather.CurrentConditions{
			Time:        payload.Current.Time,
			Temperature: payload.Current.Temperature2m,
			WeatherCode: payload.Current.WeatherCode,
			UVIndex:     payload.Current.UVIndex,
		}
	}
	if payload.Hourly != nil {
		out.Hourly = &weather.HourlySeries{
			Time:        payload.Hourly.Time,
			Temperature: payload.Hourly.Temperature2m,
			WeatherCode: payload.Hourly.WeatherCode,
		}
	}
	if payload.Daily != nil {
		out.Daily = &weather.DailySeries{
			Time:           payload.Daily.Time,
			TemperatureMin: payload.Daily.Temperature2mMin,
			TemperatureMax: payload.Daily.Temperature2mMax,
			WeatherCode:    payload.Daily.WeatherCode,
			UVIndexMax:     payload.Daily.UVIndexMax,
		}
	}

	return out, nil
}
