// ABOUTME: Configuration loading and parsing for zunou-proxy
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete zunou-proxy configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Provider      ProviderConfig      `yaml:"provider"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Auth          AuthConfig          `yaml:"auth"`
	Agent         AgentConfig         `yaml:"agent"`
	Store         StoreConfig         `yaml:"store"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`

	ReadTimeout  time.Duration `yaml:"-"`
	WriteTimeout time.Duration `yaml:"-"`

	// Raw string values for YAML unmarshaling
	ReadTimeoutRaw  string `yaml:"read_timeout"`
	WriteTimeoutRaw string `yaml:"write_timeout"`
}

// ProviderConfig holds the completion provider configuration
type ProviderConfig struct {
	BaseURL       string `yaml:"base_url"`
	APIKey        string `yaml:"api_key"`
	DefaultModel  string `yaml:"default_model"`
	RealtimeModel string `yaml:"realtime_model"`
	RealtimeVoice string `yaml:"realtime_voice"`
}

// TranscriptionConfig holds the speech-transcription provider configuration
type TranscriptionConfig struct {
	BaseURL      string `yaml:"base_url"`
	StreamingURL string `yaml:"streaming_url"`
	APIKey       string `yaml:"api_key"`

	PollInterval time.Duration `yaml:"-"`
	MaxPolls     int           `yaml:"max_polls"`

	PollIntervalRaw string `yaml:"poll_interval"`
}

// AuthConfig holds JWT verification configuration. An empty issuer domain
// disables verification entirely (gradual rollout).
type AuthConfig struct {
	IssuerDomain string `yaml:"issuer_domain"`
	Audience     string `yaml:"audience"`
}

// AgentConfig holds the identity metadata stamped into every prompt
type AgentConfig struct {
	Version   string `yaml:"version"`
	BuildDate string `yaml:"build_date"`
}

// StoreConfig holds the session-usage database configuration.
// An empty path disables usage telemetry.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://api.openai.com/v1"
	}
	if c.Provider.DefaultModel == "" {
		c.Provider.DefaultModel = "gpt-5.2"
	}
	if c.Provider.RealtimeModel == "" {
		c.Provider.RealtimeModel = "gpt-4o-realtime-preview"
	}
	if c.Provider.RealtimeVoice == "" {
		c.Provider.RealtimeVoice = "coral"
	}
	if c.Transcription.BaseURL == "" {
		c.Transcription.BaseURL = "https://api.assemblyai.com/v2"
	}
	if c.Transcription.StreamingURL == "" {
		c.Transcription.StreamingURL = "https://streaming.assemblyai.com/v3"
	}
	if c.Transcription.MaxPolls == 0 {
		c.Transcription.MaxPolls = 120
	}
	if c.Agent.Version == "" {
		c.Agent.Version = "local-dev"
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}

	// The provider key may be omitted only because BYOK callers can supply
	// their own per request; a missing key is rejected at call time instead.

	if c.Auth.IssuerDomain == "" && c.Auth.Audience != "" {
		return fmt.Errorf("auth.audience requires auth.issuer_domain")
	}

	if c.Transcription.MaxPolls < 1 {
		return fmt.Errorf("transcription.max_polls must be positive")
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Server.ReadTimeoutRaw != "" {
		cfg.Server.ReadTimeout, err = time.ParseDuration(cfg.Server.ReadTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing read_timeout %q: %w", cfg.Server.ReadTimeoutRaw, err)
		}
	}

	if cfg.Server.WriteTimeoutRaw != "" {
		cfg.Server.WriteTimeout, err = time.ParseDuration(cfg.Server.WriteTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing write_timeout %q: %w", cfg.Server.WriteTimeoutRaw, err)
		}
	}

	if cfg.Transcription.PollIntervalRaw != "" {
		cfg.Transcription.PollInterval, err = time.ParseDuration(cfg.Transcription.PollIntervalRaw)
		if err != nil {
			return fmt.Errorf("parsing poll_interval %q: %w", cfg.Transcription.PollIntervalRaw, err)
		}
	}
	if cfg.Transcription.PollInterval == 0 {
		cfg.Transcription.PollInterval = 5 * time.Second
	}

	return nil
}
