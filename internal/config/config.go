package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// TracingConfig configures the OTLP trace exporter.
type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

// Config is the process configuration, read once at startup from the
// environment (a local .env file is honored when present).
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	HTTPAddr       string
	DatabaseDSN    string
	Tracing        TracingConfig
}

// Load reads configuration from the environment with defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ServiceName:    getenv("SERVICE_NAME", "invoicepilot"),
		ServiceVersion: getenv("SERVICE_VERSION", "dev"),
		Environment:    getenv("ENVIRONMENT", "development"),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		DatabaseDSN:    getenv("DATABASE_DSN", ""),
		Tracing: TracingConfig{
			Enabled:          getenvBool("TRACING_ENABLED", false),
			ExporterEndpoint: getenv("OTLP_ENDPOINT", ""),
			ExporterProtocol: getenv("OTLP_PROTOCOL", "grpc"),
			SamplingRatio:    getenvFloat("TRACING_SAMPLING_RATIO", 1.0),
		},
	}
	return cfg, nil
}

// IsProduction reports whether the process runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

var Module = fx.Module("config",
	fx.Provide(Load),
)

func getenv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
