package weather

// Weather is a single normalized forecast entry. Temperatures are degrees
// Celsius rounded to one decimal place. Entries are built once per request
// and never mutated afterwards.
type Weather struct {
	Time           string  `json:"time"`
	Temperature    float64 `json:"temperature"`
	TemperatureMin float64 `json:"temperature_min"`
	TemperatureMax float64 `json:"temperature_max"`
	Condition      string  `json:"condition"`
	UVIndex        int     `json:"uv_index"`
}

// WeatherResponse is the fixed response contract of the weather endpoint:
// one current entry, exactly 24 hourly entries starting at the provider's
// "now" and exactly 7 daily entries starting at the provider's "today",
// both chronological. Timestamps are local to Timezone (IANA identifier).
type WeatherResponse struct {
	Location string    `json:"location"`
	Timezone string    `json:"timezone"`
	Current  Weather   `json:"current"`
	Hourly   []Weather `json:"hourly"`
	Daily    []Weather `json:"daily"`
}

// ResolvedLocation is the outcome of a successful geocoding lookup.
// Name is the human-readable display name, not the raw user input.
type ResolvedLocation struct {
	Name      string
	Latitude  float64
	Longitude float64
}
