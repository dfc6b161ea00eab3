package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings. Every field has a default so the
// service also starts without a config file.
type Config struct {
	Listen           string `yaml:"listen"`
	LogLevel         string `yaml:"log_level"`
	MaxEvalDepth     int    `yaml:"max_eval_depth"`
	WebhookWorkers   int    `yaml:"webhook_workers"`
	WebhookQueueSize int    `yaml:"webhook_queue_size"`
	WebhookTimeoutMs int    `yaml:"webhook_timeout_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:           ":8080",
		LogLevel:         "info",
		MaxEvalDepth:     DefaultMaxEvalDepth,
		WebhookWorkers:   5,
		WebhookQueueSize: 20,
		WebhookTimeoutMs: 5000,
	}
}

// LoadConfig reads a YAML config from path. An empty path yields the
// defaults; zero-valued fields fall back to their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	loaded := Config{}
	if err = yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if loaded.Listen != "" {
		cfg.Listen = loaded.Listen
	}
	if loaded.LogLevel != "" {
		cfg.LogLevel = loaded.LogLevel
	}
	if loaded.MaxEvalDepth > 0 {
		cfg.MaxEvalDepth = loaded.MaxEvalDepth
	}
	if loaded.WebhookWorkers > 0 {
		cfg.WebhookWorkers = loaded.WebhookWorkers
	}
	if loaded.WebhookQueueSize > 0 {
		cfg.WebhookQueueSize = loaded.WebhookQueueSize
	}
	if loaded.WebhookTimeoutMs > 0 {
		cfg.WebhookTimeoutMs = loaded.WebhookTimeoutMs
	}

	return cfg, nil
}
