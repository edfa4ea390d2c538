package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/capitolstays/valuation-backend-go/internal/forest"
	"github.com/capitolstays/valuation-backend-go/internal/spatial"
)

// Config is the full application configuration: defaults first, then the
// YAML file if present, then environment overrides.
type Config struct {
	Server    ServerConfig `yaml:"server"`
	DBPath    string       `yaml:"db_path"`
	Dataset   string       `yaml:"dataset"`
	JWTSecret string       `yaml:"jwt_secret"`

	Market    MarketConfig    `yaml:"market"`
	Model     forest.Config   `yaml:"model"`
	ROI       ROIConfig       `yaml:"roi"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// MarketConfig pins the valuation to one metropolitan area: the demand
// anchor, the bounding region, and the category vocabularies the model
// understands. Supporting another city is a configuration change, not a code
// change.
type MarketConfig struct {
	Name           string              `yaml:"name"`
	POI            spatial.Point       `yaml:"poi"`
	Bounds         spatial.BoundingBox `yaml:"bounds"`
	RoomTypes      []string            `yaml:"room_types"`
	Neighbourhoods []string            `yaml:"neighbourhoods"`
	PrimeRadiusKm  float64             `yaml:"prime_radius_km"`
	OuterRadiusKm  float64             `yaml:"outer_radius_km"`
}

// ROIConfig contains the return-calculation defaults.
type ROIConfig struct {
	DefaultOccupancyRate float64 `yaml:"default_occupancy_rate"`
	CapRateYears         float64 `yaml:"cap_rate_years"`
}

// RateLimitConfig contains per-IP request limiting settings.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// Default returns the Washington D.C. configuration the service ships with.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Addr: ":8080"},
		DBPath:    "./data/listings.db",
		Dataset:   "./data/clean_airbnb_dc.csv",
		JWTSecret: "change-me-in-production",
		Market: MarketConfig{
			Name: "Washington D.C.",
			// National Mall, the area's primary tourist anchor.
			POI: spatial.Point{Lat: 38.8893, Lon: -77.0231},
			Bounds: spatial.BoundingBox{
				MinLat: 38.79, MinLon: -77.12,
				MaxLat: 39.00, MaxLon: -76.90,
			},
			RoomTypes: []string{
				"Entire home/apt",
				"Private room",
				"Shared room",
				"Hotel room",
			},
			Neighbourhoods: []string{
				"Capitol Hill",
				"Dupont Circle",
				"Georgetown",
				"Columbia Heights",
				"Shaw",
				"Navy Yard",
				"Foggy Bottom",
				"Adams Morgan",
				"Petworth",
				"Anacostia",
			},
			// Roughly one and four miles.
			PrimeRadiusKm: 1.6,
			OuterRadiusKm: 6.4,
		},
		Model: forest.DefaultConfig(),
		ROI: ROIConfig{
			DefaultOccupancyRate: 0.65,
			CapRateYears:         15,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 120,
		},
	}
}

// Load builds the configuration from the YAML file at path (skipped when the
// file does not exist) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if dataset := os.Getenv("DATASET_PATH"); dataset != "" {
		cfg.Dataset = dataset
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}

	return cfg, nil
}
