package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig holds everything main needs to wire the service.
type AppConfig struct {
	Port string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// Provider API roots, overridable so tests can point the clients at
	// local servers.
	GeocodeBaseURL  string
	ForecastBaseURL string

	// GoogleAPIKey selects the Google-backed geocoder when set.
	GoogleAPIKey string

	// ForecastDays is how many days the forecast request asks for.
	ForecastDays int
}

// fileConfig mirrors the optional YAML config file. Every field is optional;
// file values override environment values.
type fileConfig struct {
	Port            string `yaml:"port"`
	HTTPTimeout     string `yaml:"http_timeout"`
	GeocodeBaseURL  string `yaml:"geocode_base_url"`
	ForecastBaseURL string `yaml:"forecast_base_url"`
}

// Load reads configuration from environment with sensible defaults, then
// applies the YAML file named by CONFIG_FILE when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.GeocodeBaseURL = getenvDefault("GEOCODE_BASE_URL", "https://geocoding-api.open-meteo.com")
	cfg.ForecastBaseURL = getenvDefault("FORECAST_BASE_URL", "https://api.open-meteo.com")
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 7)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func applyFile(cfg *AppConfig, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("invalid http_timeout in config file: %w", err)
		}
		cfg.HTTPTimeout = timeout
	}
	if fc.GeocodeBaseURL != "" {
		cfg.GeocodeBaseURL = fc.GeocodeBaseURL
	}
	if fc.ForecastBaseURL != "" {
		cfg.ForecastBaseURL = fc.ForecastBaseURL
	}

	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
