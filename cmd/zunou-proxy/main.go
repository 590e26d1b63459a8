// ABOUTME: Entry point for the zunou-proxy edge server
// ABOUTME: Routes assistant clients to AI providers with server-held prompts

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/fatih/color"

	"github.com/2389/zunou-proxy/internal/auth"
	"github.com/2389/zunou-proxy/internal/config"
	"github.com/2389/zunou-proxy/internal/gateway"
	"github.com/2389/zunou-proxy/internal/provider"
	"github.com/2389/zunou-proxy/internal/store"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
 _____   _ _ __   ___  _   _       _ __  _ __ _____  ___   _
|_  / | | | '_ \ / _ \| | | |_____| '_ \| '__/ _ \ \/ / | | |
 / /| |_| | | | | (_) | |_| |_____| |_) | | | (_) >  <| |_| |
/___|\__,_|_| |_|\___/ \__,_|     | .__/|_|  \___/_/\_\\__, |
                                  |_|                  |___/
`

// getConfigPath returns the path to the proxy config file.
// Priority: ZUNOU_CONFIG env var > XDG_CONFIG_HOME/zunou/proxy.yaml > ~/.config/zunou/proxy.yaml
func getConfigPath() string {
	if envPath := os.Getenv("ZUNOU_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "proxy.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "zunou", "proxy.yaml")
}

// getDataPath returns the path to the zunou data directory.
// Priority: XDG_DATA_HOME/zunou > ~/.local/share/zunou
func getDataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "zunou")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: zunou-proxy <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve    Start the proxy server")
		fmt.Println("  init     Create a new config file interactively")
		fmt.Println("  health   Check proxy health")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit()
	case "health":
		err = runHealth(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	// Version info
	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Agent.Version == "local-dev" && version != "dev" {
		cfg.Agent.Version = version
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	// Startup info
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:     %s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Model:    %s\n", cfg.Provider.DefaultModel)
	green.Print("    ▶ ")
	fmt.Printf("Realtime: %s", cfg.Provider.RealtimeModel)
	gray.Printf(" (voice: %s)\n", cfg.Provider.RealtimeVoice)
	if cfg.Auth.IssuerDomain == "" {
		yellow.Print("    ▶ ")
		fmt.Println("Auth:     disabled")
	} else {
		green.Print("    ▶ ")
		fmt.Printf("Auth:     %s\n", cfg.Auth.IssuerDomain)
	}
	fmt.Println()

	logger.Info("starting zunou-proxy",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
	)

	// Wire dependencies
	completion := provider.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, logger)
	transcription := provider.NewTranscriptionClient(
		cfg.Transcription.BaseURL, cfg.Transcription.StreamingURL, cfg.Transcription.APIKey,
		cfg.Transcription.PollInterval, cfg.Transcription.MaxPolls, logger,
	)

	usage, err := store.NewUsageStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("opening usage store: %w", err)
	}

	var verifier auth.TokenVerifier
	if cfg.Auth.IssuerDomain != "" {
		verifier = auth.NewJWKSVerifier(cfg.Auth.IssuerDomain, cfg.Auth.Audience)
	}

	gw := gateway.New(cfg, logger, completion, transcription, usage, verifier)
	return gw.Run(ctx)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = &colorHandler{
			level: level,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	// Format timestamp
	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	// Colorize level
	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	// Print message
	buf.WriteString(r.Message)

	// Print handler-level attrs first (from WithAttrs)
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	// Print record attrs
	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Print(buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

func runHealth(ctx context.Context) error {
	configPath := getConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	url := fmt.Sprintf("http://%s/health", cfg.Server.HTTPAddr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	fmt.Println(strings.TrimSpace(string(body)))
	return nil
}

func runInit() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("zunou-proxy configuration setup")
	fmt.Println("===============================")
	fmt.Println()

	defaultConfigPath := getConfigPath()
	defaultDataPath := getDataPath()
	defaultDbPath := filepath.Join(defaultDataPath, "usage.db")

	outputFile := promptLine(reader, "Config file path", defaultConfigPath)

	if _, err := os.Stat(outputFile); err == nil {
		overwrite := promptLine(reader, "File exists. Overwrite?", "no")
		if strings.ToLower(overwrite) != "yes" && strings.ToLower(overwrite) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	fmt.Println("\n--- Server Configuration ---")
	httpAddr := promptLine(reader, "HTTP address", "localhost:8080")

	fmt.Println("\n--- Provider Configuration ---")
	defaultModel := promptLine(reader, "Default text model", "gpt-5.2")
	realtimeModel := promptLine(reader, "Realtime voice model", "gpt-4o-realtime-preview")
	realtimeVoice := promptLine(reader, "Realtime voice", "coral")

	fmt.Println("\n--- Auth Configuration ---")
	issuerDomain := promptLine(reader, "Token issuer domain (leave empty to disable auth)", "")

	fmt.Println("\n--- Telemetry Configuration ---")
	dbPath := promptLine(reader, "Usage database path (leave empty to disable)", defaultDbPath)

	fmt.Println("\n--- Logging Configuration ---")
	logLevel := promptLine(reader, "Log level (debug/info/warn/error)", "info")
	logFormat := promptLine(reader, "Log format (text/json)", "text")

	var cfg strings.Builder
	cfg.WriteString("# zunou-proxy configuration\n")
	cfg.WriteString("# Generated by zunou-proxy init\n\n")

	cfg.WriteString("server:\n")
	cfg.WriteString(fmt.Sprintf("  http_addr: \"%s\"\n", httpAddr))
	cfg.WriteString("  read_timeout: \"30s\"\n")
	cfg.WriteString("  write_timeout: \"15m\"\n")
	cfg.WriteString("\n")

	cfg.WriteString("provider:\n")
	cfg.WriteString("  api_key: \"${OPENAI_API_KEY}\"\n")
	cfg.WriteString(fmt.Sprintf("  default_model: \"%s\"\n", defaultModel))
	cfg.WriteString(fmt.Sprintf("  realtime_model: \"%s\"\n", realtimeModel))
	cfg.WriteString(fmt.Sprintf("  realtime_voice: \"%s\"\n", realtimeVoice))
	cfg.WriteString("\n")

	cfg.WriteString("transcription:\n")
	cfg.WriteString("  api_key: \"${ASSEMBLYAI_API_KEY}\"\n")
	cfg.WriteString("\n")

	cfg.WriteString("auth:\n")
	if issuerDomain != "" {
		cfg.WriteString(fmt.Sprintf("  issuer_domain: \"%s\"\n", issuerDomain))
	} else {
		cfg.WriteString("  issuer_domain: \"\"\n")
	}
	cfg.WriteString("\n")

	cfg.WriteString("store:\n")
	cfg.WriteString(fmt.Sprintf("  path: \"%s\"\n", dbPath))
	cfg.WriteString("\n")

	cfg.WriteString("logging:\n")
	cfg.WriteString(fmt.Sprintf("  level: \"%s\"\n", logLevel))
	cfg.WriteString(fmt.Sprintf("  format: \"%s\"\n", logFormat))

	configDir := filepath.Dir(outputFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(outputFile, []byte(cfg.String()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	fmt.Printf("\nConfig written to %s\n", outputFile)
	fmt.Println("\nTo start the server:")
	fmt.Printf("  zunou-proxy serve\n")

	return nil
}

func promptLine(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		// On EOF or error, return default
		fmt.Println()
		return defaultVal
	}
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}
