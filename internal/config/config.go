package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	Assist   AssistConfig   `yaml:"assist"`
	Extract  ExtractConfig  `yaml:"extract"`
	Gate     GateConfig     `yaml:"gate"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type AssistConfig struct {
	URL string `yaml:"url"`
}

type ExtractConfig struct {
	MaxLines int `yaml:"max_lines"`
}

type GateConfig struct {
	MaxUnknown       int     `yaml:"max_unknown"`
	MinCompletionPct float64 `yaml:"min_completion_pct"`
	DraftReadyPct    float64 `yaml:"draft_ready_pct"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Extract: ExtractConfig{
			MaxLines: 250,
		},
		Gate: GateConfig{
			MaxUnknown:       2,
			MinCompletionPct: 90.0,
			DraftReadyPct:    70.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PATHAI_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("PATHAI_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("PATHAI_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("PATHAI_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("PATHAI_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("PATHAI_ASSIST_URL"); v != "" {
		cfg.Assist.URL = v
	}
	if v := os.Getenv("PATHAI_EXTRACT_MAX_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Extract.MaxLines = n
		}
	}
	if v := os.Getenv("PATHAI_GATE_MAX_UNKNOWN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Gate.MaxUnknown = n
		}
	}
	if v := os.Getenv("PATHAI_GATE_MIN_COMPLETION_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Gate.MinCompletionPct = f
		}
	}
	if v := os.Getenv("PATHAI_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
