package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is the local-development exam service address, used
// when neither the flag, the config file, nor EXAMDESK_API_URL is set.
const DefaultAPIBaseURL = "http://localhost:9000"

// EnvAPIBaseURL names the environment variable overriding the exam
// service base URL.
const EnvAPIBaseURL = "EXAMDESK_API_URL"

// ServerConfig holds configuration for the Examdesk frontend server.
type ServerConfig struct {
	Addr         string `yaml:"addr"`          // Listen address (default ":8080")
	APIBaseURL   string `yaml:"api_url"`       // Exam service base URL
	LogLevel     string `yaml:"log_level"`     // Log level: debug, info, warn, error
	LogFormat    string `yaml:"log_format"`    // Log format: text, json
	DBPath       string `yaml:"db_path"`       // Session cache path (default ~/.examdesk/examdesk.db, ":memory:" for testing)
	SecureCookie bool   `yaml:"secure_cookie"` // Set Secure on the token cookie (HTTPS deployments)
}

// DefaultServerConfig returns sensible defaults. The API base URL falls
// back to EXAMDESK_API_URL, then to the local-development default.
func DefaultServerConfig() ServerConfig {
	api := os.Getenv(EnvAPIBaseURL)
	if api == "" {
		api = DefaultAPIBaseURL
	}
	return ServerConfig{
		Addr:       ":8080",
		APIBaseURL: api,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// LoadFile overlays settings from a YAML file onto cfg. Fields absent
// from the file keep their current values.
func LoadFile(path string, cfg *ServerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var file ServerConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Addr != "" {
		cfg.Addr = file.Addr
	}
	if file.APIBaseURL != "" {
		cfg.APIBaseURL = file.APIBaseURL
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		cfg.LogFormat = file.LogFormat
	}
	if file.DBPath != "" {
		cfg.DBPath = file.DBPath
	}
	if file.SecureCookie {
		cfg.SecureCookie = true
	}
	return nil
}
