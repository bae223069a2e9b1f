package config

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultEndpoint serves both the selection lists (GET) and account
// creation (POST).
const DefaultEndpoint = "https://frontend-take-home.fetchrewards.com/form"

// Config is the signup configuration. Values come from an optional YAML file
// and are overridden by environment variables.
type Config struct {
	// Environment selects logger settings (development, production).
	Environment string `env:"SIGNUP_ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Endpoint is the form API URL.
	Endpoint string `env:"SIGNUP_ENDPOINT" env-default:"https://frontend-take-home.fetchrewards.com/form" yaml:"endpoint"`

	HTTP struct {
		// Timeout bounds each request. Zero means no timeout.
		Timeout time.Duration `env:"SIGNUP_HTTP_TIMEOUT" env-default:"0s" yaml:"timeout"`
	} `yaml:"http"`

	Log struct {
		// File receives log output. Empty disables logging.
		File string `env:"SIGNUP_LOG_FILE" yaml:"file"`
		// Level overrides the environment's default level.
		Level string `env:"SIGNUP_LOG_LEVEL" yaml:"level"`
	} `yaml:"log"`

	Telemetry struct {
		// OTLPEndpoint enables span export over OTLP/HTTP when set.
		OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" yaml:"otlpEndpoint"`
		ServiceName  string `env:"OTEL_SERVICE_NAME" env-default:"signup" yaml:"serviceName"`
	} `yaml:"telemetry"`
}

// Load reads the YAML file at path, then applies the environment. An empty
// path reads the environment only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, errors.Wrap(err, "read env")
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "read config %q", path)
	}
	return &cfg, nil
}
