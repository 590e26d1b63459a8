// ABOUTME: Gateway wiring: route registration, HTTP server lifecycle,
// ABOUTME: and the shared usage-telemetry hook.

package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/2389/zunou-proxy/internal/auth"
	"github.com/2389/zunou-proxy/internal/catalog"
	"github.com/2389/zunou-proxy/internal/config"
	"github.com/2389/zunou-proxy/internal/provider"
	"github.com/2389/zunou-proxy/internal/selector"
	"github.com/2389/zunou-proxy/internal/store"
)

// BYOK header names. Header lookup is case-insensitive.
const (
	headerProviderKey      = "X-OpenAI-API-Key"
	headerTranscriptionKey = "X-AssemblyAI-API-Key"
)

// Gateway holds the proxy's request-handling dependencies.
type Gateway struct {
	cfg           *config.Config
	logger        *slog.Logger
	completion    *provider.Client
	transcription *provider.TranscriptionClient
	usage         *store.UsageStore
	verifier      auth.TokenVerifier

	httpServer *http.Server
}

// New creates a gateway. usage may be nil (telemetry disabled) and verifier
// may be nil (auth disabled).
func New(cfg *config.Config, logger *slog.Logger, completion *provider.Client, transcription *provider.TranscriptionClient, usage *store.UsageStore, verifier auth.TokenVerifier) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		cfg:           cfg,
		logger:        logger.With("component", "gateway"),
		completion:    completion,
		transcription: transcription,
		usage:         usage,
		verifier:      verifier,
	}
}

// Handler builds the route table. All session routes sit behind the auth
// middleware; /health stays open for probes.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", g.handleHealth)

	authMiddleware := auth.Middleware(g.verifier, g.logger)
	protected := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}

	mux.Handle("/realtime", protected(g.handleRealtime))
	mux.Handle("/responses", protected(g.handleResponses))
	mux.Handle("/conversations", protected(g.handleConversations))
	mux.Handle("/delegate", protected(g.handleDelegate))
	mux.Handle("/nudge-evaluate", protected(g.handleNudgeEvaluate))
	mux.Handle("/synthesize-report", protected(g.handleSynthesizeReport))
	mux.Handle("/capabilities", protected(g.handleCapabilities))
	mux.Handle("/transcribe/token", protected(g.handleTranscribeToken))
	mux.Handle("/transcribe", protected(g.handleTranscribe))

	// Explicit 404 naming the path, so client misconfiguration is obvious
	mux.HandleFunc("/", g.handleUnknown)

	return mux
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// server fails.
func (g *Gateway) Run(ctx context.Context) error {
	g.httpServer = &http.Server{
		Addr:         g.cfg.Server.HTTPAddr,
		Handler:      g.Handler(),
		ReadTimeout:  g.cfg.Server.ReadTimeout,
		WriteTimeout: g.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		g.logger.Info("HTTP server listening", "addr", g.cfg.Server.HTTPAddr)
		if err := g.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return g.shutdown()
	case err := <-errCh:
		return err
	}
}

func (g *Gateway) shutdown() error {
	g.logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := g.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if err := g.usage.Close(); err != nil {
		g.logger.Warn("closing usage store", "error", err)
	}
	return nil
}

func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": g.cfg.Agent.Version,
	})
}

func (g *Gateway) handleUnknown(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Unknown endpoint: "+r.URL.Path)
}

// recordUsage writes one telemetry row. Failures are logged and swallowed;
// telemetry never blocks a session.
func (g *Gateway) recordUsage(route string, sel *selector.Selection, model string, tokenEstimate int) {
	if g.usage == nil || sel == nil {
		return
	}

	u := &store.SessionUsage{
		Route:          route,
		AgentType:      string(sel.Agent),
		SessionType:    string(sel.Session),
		Hybrid:         sel.Hybrid,
		DirectCount:    len(sel.Direct),
		DelegatedCount: len(sel.Delegated),
		TokenEstimate:  tokenEstimate,
		Model:          model,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.usage.Record(ctx, u); err != nil {
		g.logger.Warn("recording session usage", "route", route, "error", err)
	}
}

// defaultModel resolves the model for a request, falling back to config.
func (g *Gateway) defaultModel(requested string) string {
	if requested != "" {
		return requested
	}
	return g.cfg.Provider.DefaultModel
}

// sessionOrDefault normalizes the session type field with a default.
func sessionOrDefault(s string, fallback catalog.SessionType) catalog.SessionType {
	if s == "" {
		return fallback
	}
	return catalog.SessionType(s)
}
