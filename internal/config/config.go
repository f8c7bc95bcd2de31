package config

import "time"

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr              string   `yaml:"addr"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	IdleTimeout       Duration `yaml:"idle_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`
}

type CORSConfig struct {
	// AllowOrigins of ["*"] allows every origin.
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowCredentials bool     `yaml:"allow_credentials"`
}

type GeneratorConfig struct {
	// Provider is one of "gemini", "oai_http", "mock".
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`

	// APIKey is supplied from the environment in normal deployments.
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL and ChatCompletionsPath apply to "oai_http" only.
	BaseURL             string `yaml:"base_url,omitempty"`
	ChatCompletionsPath string `yaml:"chat_completions_path,omitempty"`

	// Temperature is left to the provider default when nil.
	Temperature *float64 `yaml:"temperature,omitempty"`
}

type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint,omitempty"`
	Insecure    bool    `yaml:"insecure,omitempty"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type Config struct {
	Env       string          `yaml:"env"`
	HTTP      HTTPConfig      `yaml:"http"`
	CORS      CORSConfig      `yaml:"cors"`
	Generator GeneratorConfig `yaml:"generator"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}
