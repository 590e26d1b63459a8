// Package config handles configuration loading for zunou-proxy.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from ZUNOU_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/zunou/proxy.yaml
//  3. ~/.config/zunou/proxy.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	provider:
//	  api_key: "${OPENAI_API_KEY}"
//
// Syntax: ${VAR_NAME}
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	server:
//	  read_timeout: "30s"
//	  write_timeout: "15m"
//	transcription:
//	  poll_interval: "5s"
//
// Supported units: ns, us, ms, s, m, h
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "0.0.0.0:8080"
//	  read_timeout: "30s"
//	  write_timeout: "15m"   # long enough for streamed responses
//
// AI provider:
//
//	provider:
//	  base_url: "https://api.openai.com/v1"
//	  api_key: "${OPENAI_API_KEY}"   # optional; clients may bring their own
//	  default_model: "gpt-5.2"
//	  realtime_model: "gpt-4o-realtime-preview"
//	  realtime_voice: "coral"
//
// Transcription:
//
//	transcription:
//	  api_key: "${ASSEMBLYAI_API_KEY}"
//	  poll_interval: "5s"
//	  max_polls: 120
//
// Authentication (omit issuer_domain to disable verification):
//
//	auth:
//	  issuer_domain: "zunou.us.auth0.com"
//	  audience: "https://api.zunou.ai"
//
// Usage telemetry (omit path to disable):
//
//	store:
//	  path: "/var/lib/zunou/usage.db"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - http_addr presence
//   - audience requires issuer_domain
//   - max_polls positivity
//   - Duration format validity
//
// # Usage
//
// Load configuration from a specific path:
//
//	cfg, err := config.Load("/etc/zunou/proxy.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
