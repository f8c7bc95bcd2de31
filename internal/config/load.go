package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/lessongen/internal/platform/envutil"
)

const (
	ProviderGemini  = "gemini"
	ProviderOAIHTTP = "oai_http"
	ProviderMock    = "mock"
)

// UnmarshalYAML accepts "5s"-style strings or integer nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	if s == "" || s == "null" || s == "~" {
		d.Duration = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		d.Duration = time.Duration(n)
		return nil
	}
	dd, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration must be a string like \"5s\" or an int nanoseconds: %w", err)
	}
	d.Duration = dd
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: Duration{Duration: 5 * time.Second},
			IdleTimeout:       Duration{Duration: 2 * time.Minute},
			ShutdownTimeout:   Duration{Duration: 15 * time.Second},
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		Generator: GeneratorConfig{
			Provider: ProviderGemini,
			Model:    "gemini-1.5-flash",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "lessongen",
			SampleRatio: 0.1,
		},
	}
}

// Load resolves defaults, then the YAML file (LESSONGEN_CONFIG_PATH or
// ./config/config.yaml when present), then environment overrides.
func Load() (*Config, error) {
	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(os.Getenv("LESSONGEN_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}
	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	applyEnv(cfg)
	if err := normalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := envutil.String("LOG_MODE", ""); v != "" {
		cfg.Env = v
	}
	if v := envutil.String("PORT", ""); v != "" {
		cfg.HTTP.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := envutil.String("LESSONGEN_HTTP_ADDR", ""); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := envutil.List("LESSONGEN_CORS_ORIGINS"); len(v) > 0 {
		cfg.CORS.AllowOrigins = v
	}

	if v := envutil.String("LESSONGEN_GENERATOR", ""); v != "" {
		cfg.Generator.Provider = v
	}
	if v := envutil.String("LESSONGEN_MODEL", ""); v != "" {
		cfg.Generator.Model = v
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Generator.Provider)) {
	case ProviderGemini:
		if v := envutil.First("GEMINI_API_KEY", "GOOGLE_API_KEY"); v != "" {
			cfg.Generator.APIKey = v
		}
	case ProviderOAIHTTP, "openai_http":
		if v := envutil.String("OPENAI_API_KEY", ""); v != "" {
			cfg.Generator.APIKey = v
		}
		if v := envutil.String("OPENAI_BASE_URL", ""); v != "" {
			cfg.Generator.BaseURL = v
		}
	}
	if v := envutil.String("LESSONGEN_TEMPERATURE", ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Generator.Temperature = &f
		}
	}

	if v := envutil.String("OTEL_ENABLED", ""); v != "" {
		cfg.Telemetry.Enabled = envutil.ParseBool(v)
	}
	if v := envutil.String("OTEL_SERVICE_NAME", ""); v != "" {
		cfg.Telemetry.ServiceName = v
	}
	if v := envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""); v != "" {
		cfg.Telemetry.Endpoint = v
	}
	if v := envutil.String("OTEL_EXPORTER_OTLP_INSECURE", ""); v != "" {
		cfg.Telemetry.Insecure = envutil.ParseBool(v)
	}
	cfg.Telemetry.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", cfg.Telemetry.SampleRatio)
}

func normalize(cfg *Config) error {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "development"
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.ShutdownTimeout.Duration <= 0 {
		cfg.HTTP.ShutdownTimeout = Duration{Duration: 15 * time.Second}
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"*"}
	}

	g := &cfg.Generator
	g.Provider = strings.ToLower(strings.TrimSpace(g.Provider))
	g.Model = strings.TrimSpace(g.Model)
	g.APIKey = strings.TrimSpace(g.APIKey)
	g.BaseURL = strings.TrimRight(strings.TrimSpace(g.BaseURL), "/")
	g.ChatCompletionsPath = strings.TrimSpace(g.ChatCompletionsPath)
	switch g.Provider {
	case "":
		return errors.New("generator.provider is required")
	case ProviderGemini:
		if g.APIKey == "" {
			return errors.New("gemini generator requires an API key (GEMINI_API_KEY or GOOGLE_API_KEY)")
		}
	case ProviderOAIHTTP, "openai_http":
		g.Provider = ProviderOAIHTTP
		if g.BaseURL == "" {
			return errors.New("oai_http generator requires generator.base_url")
		}
		if g.Model == "" {
			return errors.New("oai_http generator requires generator.model")
		}
		if g.ChatCompletionsPath == "" {
			g.ChatCompletionsPath = "/v1/chat/completions"
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unsupported generator.provider %q", g.Provider)
	}
	if g.Temperature != nil && (*g.Temperature < 0 || *g.Temperature > 2) {
		return fmt.Errorf("generator.temperature %v out of range [0,2]", *g.Temperature)
	}

	t := &cfg.Telemetry
	if strings.TrimSpace(t.ServiceName) == "" {
		t.ServiceName = "lessongen"
	}
	if t.SampleRatio < 0 {
		t.SampleRatio = 0
	}
	if t.SampleRatio > 1 {
		t.SampleRatio = 1
	}
	return nil
}
