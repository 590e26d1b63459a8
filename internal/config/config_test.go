// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, defaults, and duration parsing

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "proxy.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8080"
  read_timeout: "30s"
  write_timeout: "15m"

provider:
  base_url: "https://api.openai.com/v1"
  api_key: "sk-test"
  default_model: "gpt-5.2"
  realtime_model: "gpt-4o-realtime-preview"
  realtime_voice: "coral"

transcription:
  api_key: "aai-test"
  poll_interval: "5s"
  max_polls: 120

auth:
  issuer_domain: "zunou.us.auth0.com"
  audience: "https://api.zunou.ai"

store:
  path: "./usage.db"

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "0.0.0.0:8080" {
		t.Errorf("Server.HTTPAddr = %q, want %q", cfg.Server.HTTPAddr, "0.0.0.0:8080")
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 30*time.Second)
	}
	if cfg.Server.WriteTimeout != 15*time.Minute {
		t.Errorf("Server.WriteTimeout = %v, want %v", cfg.Server.WriteTimeout, 15*time.Minute)
	}

	if cfg.Provider.APIKey != "sk-test" {
		t.Errorf("Provider.APIKey = %q, want %q", cfg.Provider.APIKey, "sk-test")
	}
	if cfg.Provider.DefaultModel != "gpt-5.2" {
		t.Errorf("Provider.DefaultModel = %q, want %q", cfg.Provider.DefaultModel, "gpt-5.2")
	}

	if cfg.Transcription.PollInterval != 5*time.Second {
		t.Errorf("Transcription.PollInterval = %v, want %v", cfg.Transcription.PollInterval, 5*time.Second)
	}
	if cfg.Transcription.MaxPolls != 120 {
		t.Errorf("Transcription.MaxPolls = %d, want 120", cfg.Transcription.MaxPolls)
	}

	if cfg.Auth.IssuerDomain != "zunou.us.auth0.com" {
		t.Errorf("Auth.IssuerDomain = %q, want %q", cfg.Auth.IssuerDomain, "zunou.us.auth0.com")
	}
	if cfg.Store.Path != "./usage.db" {
		t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, "./usage.db")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_Defaults(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8080"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("Provider.BaseURL = %q, want OpenAI default", cfg.Provider.BaseURL)
	}
	if cfg.Provider.DefaultModel != "gpt-5.2" {
		t.Errorf("Provider.DefaultModel = %q, want %q", cfg.Provider.DefaultModel, "gpt-5.2")
	}
	if cfg.Provider.RealtimeModel != "gpt-4o-realtime-preview" {
		t.Errorf("Provider.RealtimeModel = %q, want %q", cfg.Provider.RealtimeModel, "gpt-4o-realtime-preview")
	}
	if cfg.Provider.RealtimeVoice != "coral" {
		t.Errorf("Provider.RealtimeVoice = %q, want %q", cfg.Provider.RealtimeVoice, "coral")
	}
	if cfg.Transcription.BaseURL != "https://api.assemblyai.com/v2" {
		t.Errorf("Transcription.BaseURL = %q, want AssemblyAI default", cfg.Transcription.BaseURL)
	}
	if cfg.Transcription.StreamingURL != "https://streaming.assemblyai.com/v3" {
		t.Errorf("Transcription.StreamingURL = %q, want streaming default", cfg.Transcription.StreamingURL)
	}
	if cfg.Transcription.MaxPolls != 120 {
		t.Errorf("Transcription.MaxPolls = %d, want 120", cfg.Transcription.MaxPolls)
	}
	if cfg.Transcription.PollInterval != 5*time.Second {
		t.Errorf("Transcription.PollInterval = %v, want 5s", cfg.Transcription.PollInterval)
	}
	if cfg.Agent.Version != "local-dev" {
		t.Errorf("Agent.Version = %q, want %q", cfg.Agent.Version, "local-dev")
	}
	if cfg.Store.Path != "" {
		t.Errorf("Store.Path = %q, want empty (telemetry off)", cfg.Store.Path)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_PROVIDER_KEY", "sk-from-env")
	t.Setenv("TEST_TRANSCRIPTION_KEY", "aai-from-env")

	configPath := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8080"

provider:
  api_key: "${TEST_PROVIDER_KEY}"

transcription:
  api_key: "${TEST_TRANSCRIPTION_KEY}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider.APIKey != "sk-from-env" {
		t.Errorf("Provider.APIKey = %q, want %q", cfg.Provider.APIKey, "sk-from-env")
	}
	if cfg.Transcription.APIKey != "aai-from-env" {
		t.Errorf("Transcription.APIKey = %q, want %q", cfg.Transcription.APIKey, "aai-from-env")
	}
}

func TestLoad_EnvVarExpansion_UnsetVar(t *testing.T) {
	os.Unsetenv("UNSET_VAR_FOR_TEST")

	configPath := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8080"

provider:
  api_key: "${UNSET_VAR_FOR_TEST}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Unset env vars expand to empty; the provider key stays optional
	// because callers can bring their own per request.
	if cfg.Provider.APIKey != "" {
		t.Errorf("Provider.APIKey = %q, want empty string for unset env var", cfg.Provider.APIKey)
	}
}

func TestLoad_DurationParsing(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8080"
  read_timeout: "1m30s"
  write_timeout: "2h"

transcription:
  poll_interval: "750ms"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := 1*time.Minute + 30*time.Second; cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, want)
	}
	if cfg.Server.WriteTimeout != 2*time.Hour {
		t.Errorf("Server.WriteTimeout = %v, want %v", cfg.Server.WriteTimeout, 2*time.Hour)
	}
	if cfg.Transcription.PollInterval != 750*time.Millisecond {
		t.Errorf("Transcription.PollInterval = %v, want 750ms", cfg.Transcription.PollInterval)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/proxy.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr "missing colon"
`)

	if _, err := Load(configPath); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8080"
  read_timeout: "invalid-duration"
`)

	if _, err := Load(configPath); err == nil {
		t.Error("Load() expected error for invalid duration, got nil")
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		wantErrSubstr string
	}{
		{
			name: "missing http_addr",
			configContent: `
server:
  http_addr: ""
`,
			wantErrSubstr: "server.http_addr is required",
		},
		{
			name: "audience without issuer",
			configContent: `
server:
  http_addr: "0.0.0.0:8080"
auth:
  audience: "https://api.zunou.ai"
`,
			wantErrSubstr: "auth.audience requires auth.issuer_domain",
		},
		{
			name: "negative max_polls",
			configContent: `
server:
  http_addr: "0.0.0.0:8080"
transcription:
  max_polls: -1
`,
			wantErrSubstr: "transcription.max_polls must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeConfig(t, tt.configContent)

			_, err := Load(configPath)
			if err == nil {
				t.Errorf("Load() expected error containing %q, got nil", tt.wantErrSubstr)
				return
			}
			if !strings.Contains(err.Error(), tt.wantErrSubstr) {
				t.Errorf("Load() error = %q, want error containing %q", err.Error(), tt.wantErrSubstr)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("FOO", "bar")
	t.Setenv("BAZ", "qux")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single env var", input: "${FOO}", expected: "bar"},
		{name: "env var with surrounding text", input: "prefix-${FOO}-suffix", expected: "prefix-bar-suffix"},
		{name: "multiple env vars", input: "${FOO}/${BAZ}", expected: "bar/qux"},
		{name: "no env vars", input: "no-vars-here", expected: "no-vars-here"},
		{name: "unset env var", input: "${UNSET_VAR}", expected: ""},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandEnvVars(tt.input)
			if result != tt.expected {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
