// ABOUTME: Voice session creation: selects tools, builds the voice prompt,
// ABOUTME: and mints an ephemeral realtime client secret for the frontend.

package gateway

import (
	"errors"
	"net/http"

	"github.com/2389/zunou-proxy/internal/catalog"
	"github.com/2389/zunou-proxy/internal/prompt"
	"github.com/2389/zunou-proxy/internal/provider"
	"github.com/2389/zunou-proxy/internal/relay"
	"github.com/2389/zunou-proxy/internal/selector"
)

// realtimeRequest is the body for POST /realtime.
type realtimeRequest struct {
	SessionType       string                 `json:"session_type"`
	UserContext       string                 `json:"user_context"`
	AdditionalContext string                 `json:"additional_context"`
	DayContext        *prompt.DayContext     `json:"day_context"`
	DebriefContext    *prompt.DebriefContext `json:"debrief_context"`
	Relay             *relay.Relay           `json:"relay"`
	RelayContext      string                 `json:"relay_context"`

	Model string `json:"model"`
	Voice string `json:"voice"`

	Language            string `json:"language"`
	LanguageInstruction string `json:"language_instruction"`
	DialectInstruction  string `json:"dialect_instruction"`
	SpeedHint           string `json:"speed_hint"`
	StyleInstruction    string `json:"style_instruction"`

	VADThreshold         *float64 `json:"vad_threshold"`
	VADSilenceDurationMS *int     `json:"vad_silence_duration_ms"`

	// Hybrid mode defaults on; it is the main token-cost lever.
	HybridMode *bool `json:"hybrid_mode"`
}

// realtimeResponse is the body returned to the frontend. The secret value
// is the only credential the client ever sees.
type realtimeResponse struct {
	Token                    string `json:"token"`
	SessionID                string `json:"session_id,omitempty"`
	ExpiresAt                int64  `json:"expires_at"`
	Model                    string `json:"model,omitempty"`
	Voice                    string `json:"voice,omitempty"`
	ToolsCount               int    `json:"tools_count"`
	TotalCapabilities        int    `json:"total_capabilities"`
	DelegationConversationID string `json:"delegation_conversation_id,omitempty"`
}

func (g *Gateway) handleRealtime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req realtimeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	session := sessionOrDefault(req.SessionType, catalog.SessionAboutMe)
	hybrid := req.HybridMode == nil || *req.HybridMode

	sel, err := selector.Select(catalog.AgentVoice, session, hybrid)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	tools := sel.WireDirect()
	var delegated string
	if sel.Hybrid {
		delegated = selector.SummarizeDelegated(sel.Delegated)
		g.logger.Info("hybrid mode enabled",
			"session_type", session,
			"direct_tools", len(sel.Direct),
			"delegated_tools", len(sel.Delegated),
			"direct_tokens", sel.DirectTokens,
			"budget_remaining", sel.BudgetRemaining,
		)
	}

	model := req.Model
	if model == "" {
		model = g.cfg.Provider.RealtimeModel
	}
	voice := req.Voice
	if voice == "" {
		voice = g.cfg.Provider.RealtimeVoice
	}

	meta := prompt.Meta{
		Agent:     catalog.AgentVoice,
		Session:   session,
		ToolCount: sel.TotalCapabilities(),
		Model:     model,
		Version:   g.cfg.Agent.Version,
		Build:     g.cfg.Agent.BuildDate,
	}

	in := &prompt.Input{
		Language:              req.Language,
		UserContext:           req.UserContext,
		Formatted:             req.AdditionalContext,
		Debrief:               req.DebriefContext,
		Day:                   req.DayContext,
		Relay:                 req.Relay,
		RelayContext:          req.RelayContext,
		DelegatedCapabilities: delegated,
	}
	if req.Relay != nil {
		in.Thread = req.Relay.CurrentThread()
		in.OwnerMode = req.Relay.OwnerMode
		in.OwnerName = req.Relay.OwnerName
	}

	instructions := prompt.VoiceForSession(session)(in, meta)

	// Delivery-style prefixes stack in front of the base prompt. Each one
	// prepends, so the last applied ends up first.
	for _, prefix := range []string{
		req.LanguageInstruction,
		req.DialectInstruction,
		req.SpeedHint,
		req.StyleInstruction,
	} {
		if prefix != "" {
			instructions = prefix + "\n\n" + instructions
		}
	}

	g.logger.Info("voice session requested",
		"session_type", session,
		"tools", len(tools),
		"prompt_length", len(instructions),
	)

	vadThreshold := 0.3
	if req.VADThreshold != nil {
		vadThreshold = *req.VADThreshold
	}
	vadSilence := 400
	if req.VADSilenceDurationMS != nil {
		vadSilence = *req.VADSilenceDurationMS
	}

	byok := r.Header.Get(headerProviderKey)
	secretReq := &provider.RealtimeSecretRequest{
		ExpiresAfter: provider.ExpiresAfter{
			Anchor:  "created_at",
			Seconds: 120,
		},
		Session: provider.RealtimeSession{
			Type:         "realtime",
			Model:        model,
			Instructions: instructions,
			Tools:        tools,
			ToolChoice:   "auto",
			Audio: provider.RealtimeAudio{
				Input: provider.AudioInput{
					Format:        provider.AudioFormat{Type: "audio/pcm", Rate: 24000},
					Transcription: map[string]string{"model": "gpt-4o-transcribe"},
					TurnDetection: provider.TurnDetection{
						Type:              "server_vad",
						Threshold:         vadThreshold,
						PrefixPaddingMS:   250,
						SilenceDurationMS: vadSilence,
						CreateResponse:    true,
					},
				},
				Output: provider.AudioOutput{
					Format: provider.AudioFormat{Type: "audio/pcm", Rate: 24000},
					Voice:  voice,
				},
			},
		},
	}

	secret, err := g.completion.CreateRealtimeSecret(r.Context(), secretReq, byok)
	if err != nil {
		g.logger.Error("realtime session creation failed", "error", err)
		writeUpstreamError(w, err)
		return
	}

	// Hybrid sessions get a persistent conversation for delegations so the
	// delegate calls share context. Failure here is non-fatal; delegation
	// still works without continuity.
	var delegationConvID string
	if sel.Hybrid {
		conv, convErr := g.completion.CreateConversation(r.Context(), nil, byok)
		if convErr != nil {
			var statusErr *provider.StatusError
			if errors.As(convErr, &statusErr) {
				g.logger.Warn("delegation conversation creation failed", "status", statusErr.StatusCode)
			} else {
				g.logger.Warn("delegation conversation creation failed", "error", convErr)
			}
		} else {
			delegationConvID = conv.ID
			g.logger.Info("delegation conversation created", "id", delegationConvID)
		}
	}

	g.recordUsage("realtime", sel, model, sel.DirectTokens)

	writeJSON(w, http.StatusOK, realtimeResponse{
		Token:                    secret.Value,
		SessionID:                secret.Session.ID,
		ExpiresAt:                secret.ExpiresAt,
		Model:                    secret.Session.Model,
		Voice:                    secret.Session.Audio.Output.Voice,
		ToolsCount:               len(tools),
		TotalCapabilities:        sel.TotalCapabilities(),
		DelegationConversationID: delegationConvID,
	})
	g.logger.Info("voice session created", "session_id", secret.Session.ID, "hybrid", sel.Hybrid)
}
