package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Astroshield AstroshieldConfig `yaml:"astroshield"`
	Server      ServerConfig      `yaml:"server"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Source      SourceConfig      `yaml:"source"`
	Environment EnvironmentConfig `yaml:"environment"`
	Export      ExportConfig      `yaml:"export"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type AstroshieldConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SimulationConfig centralizes the simulation defaults and physical
// constants so the engine components receive them by injection instead of
// scattering module-level globals.
type SimulationConfig struct {
	DefaultAsteroidID string  `yaml:"default_asteroid_id"`
	DefaultLatitude   float64 `yaml:"default_latitude"`
	DefaultLongitude  float64 `yaml:"default_longitude"`
	SamplePoints      int     `yaml:"sample_points"`
	MOIDThresholdKM   float64 `yaml:"moid_threshold_km"`
}

type SourceConfig struct {
	NASA NASASourceConfig `yaml:"nasa"`
	USGS USGSSourceConfig `yaml:"usgs"`
}

type NASASourceConfig struct {
	Enabled           bool          `yaml:"enabled"`
	APIKey            string        `yaml:"api_key"`
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond int           `yaml:"requests_per_second"`
	BurstSize         int           `yaml:"burst_size"`
}

type USGSSourceConfig struct {
	Enabled      bool          `yaml:"enabled"`
	ElevationURL string        `yaml:"elevation_url"`
	GeoserveURL  string        `yaml:"geoserve_url"`
	Timeout      time.Duration `yaml:"timeout"`
}

// EnvironmentConfig holds the site-assessment thresholds. The tsunami
// elevation threshold is the single canonical value used on every code
// path, live or fallback.
type EnvironmentConfig struct {
	TsunamiElevationThresholdM float64 `yaml:"tsunami_elevation_threshold_m"`
}

type ExportConfig struct {
	S3 S3Config `yaml:"s3"`
}

type S3Config struct {
	Enabled         bool   `yaml:"enabled"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	PathStyle       bool   `yaml:"path_style"`
	KeyPrefix       string `yaml:"key_prefix"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"`
	Output        string `yaml:"output"`
	MaxAge        int    `yaml:"max_age"`
	DashboardName string `yaml:"dashboard_name"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Simulation: SimulationConfig{
			DefaultAsteroidID: "Impactor-2025",
			DefaultLatitude:   34.05,
			DefaultLongitude:  -118.25,
			SamplePoints:      180,
			MOIDThresholdKM:   75000,
		},
		Environment: EnvironmentConfig{
			TsunamiElevationThresholdM: 75,
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override sensitive values from environment variables if available
	if v := os.Getenv("NASA_API_KEY"); v != "" {
		config.Source.NASA.APIKey = strings.TrimSpace(v)
	}
	if config.Export.S3.Enabled {
		if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
			config.Export.S3.AccessKeyID = strings.TrimSpace(v)
		}
		if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
			config.Export.S3.SecretAccessKey = strings.TrimSpace(v)
		}
		if v := os.Getenv("AWS_REGION"); v != "" {
			config.Export.S3.Region = strings.TrimSpace(v)
		}
		if v := os.Getenv("S3_BUCKET"); v != "" {
			config.Export.S3.Bucket = strings.TrimSpace(v)
		}
	}

	config.Export.S3.Bucket = strings.TrimSpace(config.Export.S3.Bucket)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Astroshield.Name == "" {
		return fmt.Errorf("astroshield.name is required")
	}

	if cfg.Astroshield.Version == "" {
		return fmt.Errorf("astroshield.version is required")
	}

	if cfg.Simulation.SamplePoints <= 0 {
		return fmt.Errorf("simulation.sample_points must be greater than 0")
	}

	if cfg.Simulation.DefaultLatitude < -90 || cfg.Simulation.DefaultLatitude > 90 {
		return fmt.Errorf("simulation.default_latitude must be within [-90, 90]")
	}
	if cfg.Simulation.DefaultLongitude < -180 || cfg.Simulation.DefaultLongitude > 180 {
		return fmt.Errorf("simulation.default_longitude must be within [-180, 180]")
	}

	if cfg.Environment.TsunamiElevationThresholdM <= 0 {
		return fmt.Errorf("environment.tsunami_elevation_threshold_m must be greater than 0")
	}

	if cfg.Source.NASA.Enabled {
		if cfg.Source.NASA.BaseURL == "" {
			return fmt.Errorf("source.nasa.base_url is required when NASA source is enabled")
		}
		if cfg.Source.NASA.Timeout <= 0 {
			return fmt.Errorf("source.nasa.timeout must be greater than 0")
		}
	}

	if cfg.Source.USGS.Enabled {
		if cfg.Source.USGS.ElevationURL == "" || cfg.Source.USGS.GeoserveURL == "" {
			return fmt.Errorf("source.usgs.elevation_url and source.usgs.geoserve_url are required when USGS source is enabled")
		}
		if cfg.Source.USGS.Timeout <= 0 {
			return fmt.Errorf("source.usgs.timeout must be greater than 0")
		}
	}

	if cfg.Export.S3.Enabled {
		if cfg.Export.S3.Bucket == "" {
			return fmt.Errorf("export.s3.bucket is required when S3 export is enabled")
		}
		if cfg.Export.S3.Region == "" {
			return fmt.Errorf("export.s3.region is required when S3 export is enabled")
		}
		if !isValidS3Bucket(cfg.Export.S3.Bucket) {
			return fmt.Errorf("export.s3.bucket '%s' is invalid", cfg.Export.S3.Bucket)
		}
	}

	return nil
}

var s3BucketRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

func isValidS3Bucket(name string) bool {
	if len(name) < 3 || len(name) > 63 {
		return false
	}
	if strings.Contains(name, "..") || strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return false
	}
	return s3BucketRegexp.MatchString(name)
}
