// ABOUTME: Text agent SSE proxy: obfuscated mode assembles the prompt and
// ABOUTME: tools server-side; pass-through mode relays the payload untouched.

package gateway

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/2389/zunou-proxy/internal/catalog"
	"github.com/2389/zunou-proxy/internal/prompt"
	"github.com/2389/zunou-proxy/internal/provider"
	"github.com/2389/zunou-proxy/internal/relay"
	"github.com/2389/zunou-proxy/internal/selector"
)

// responsesRequest is the obfuscated-mode body for POST /responses.
type responsesRequest struct {
	SessionType       string          `json:"session_type"`
	Input             json.RawMessage `json:"input"`
	UserContext       string          `json:"user_context"`
	AdditionalContext json.RawMessage `json:"additional_context"`
	Language          string          `json:"language"`
	TimeOfDay         string          `json:"time_of_day"`
	Model             string          `json:"model"`
	Temperature       *float64        `json:"temperature"`
	MaxOutputTokens   int             `json:"max_output_tokens"`
	Conversation      string          `json:"conversation"`

	// Draft sessions
	TaskType     string `json:"task_type"`
	Instructions string `json:"instructions"`
	Context      string `json:"context"`
	Recipient    string `json:"recipient"`
	Subject      string `json:"subject"`

	// Day-prep sessions
	DayContext *prompt.DayContext `json:"day_context"`

	// Daily-debrief sessions
	DebriefContext *prompt.DebriefContext `json:"debrief_context"`

	// Relay sessions
	Relay         *relay.Relay `json:"relay"`
	RelayContext  string       `json:"relay_context"`
	OwnerName     string       `json:"owner_name"`
	RecipientName string       `json:"recipient_name"`

	ChatContext string `json:"chat_context"`
}

func (g *Gateway) handleResponses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Obfuscated mode: prompt and tools assembled here. An explicit tools
	// key always wins and forces pass-through, even with a session_type.
	_, hasSession := raw["session_type"]
	_, hasTools := raw["tools"]
	obfuscated := hasSession && !hasTools

	var payload any
	var sel *selector.Selection
	model := ""

	if obfuscated {
		var req responsesRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		providerReq, selection, buildErr := g.buildObfuscatedRequest(&req)
		if buildErr != nil {
			writeUpstreamError(w, buildErr)
			return
		}
		if providerReq == nil {
			writeError(w, http.StatusBadRequest, "Missing required field: input")
			return
		}
		payload = providerReq
		sel = selection
		model = providerReq.Model
		g.logger.Info("obfuscated mode",
			"session_type", req.SessionType,
			"tools", len(sel.Direct),
			"prompt_length", len(providerReq.Instructions),
		)
	} else {
		// Pass-through: forward as-is, just force streaming
		if _, ok := raw["model"]; !ok {
			writeError(w, http.StatusBadRequest, "Missing required fields: model, input")
			return
		}
		if _, ok := raw["input"]; !ok {
			writeError(w, http.StatusBadRequest, "Missing required fields: model, input")
			return
		}
		var passthrough map[string]any
		if err := json.Unmarshal(body, &passthrough); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		passthrough["stream"] = true
		payload = passthrough
		model, _ = passthrough["model"].(string)
		g.logger.Info("pass-through mode", "model", model)
	}

	byok := r.Header.Get(headerProviderKey)
	resp, err := g.completion.StreamResponse(r.Context(), payload, byok)
	if err != nil {
		g.relayStreamError(w, err)
		return
	}
	defer resp.Body.Close()

	if sel != nil {
		g.recordUsage("responses", sel, model, sel.DirectTokens)
	}

	// Relay the provider's SSE stream verbatim
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if readErr != nil {
			return
		}
	}
}

// relayStreamError reports a failed stream start. Key and validation
// problems surface as JSON; upstream errors after headers would have gone
// out as SSE, so pre-stream failures mirror the provider status as JSON.
func (g *Gateway) relayStreamError(w http.ResponseWriter, err error) {
	g.logger.Error("responses proxy error", "error", err)
	writeUpstreamError(w, err)
}

// buildObfuscatedRequest assembles the provider payload for obfuscated
// mode: session-filtered tools, server-built prompt, client input relayed.
// Returns (nil, nil, nil) when the input field is missing.
func (g *Gateway) buildObfuscatedRequest(req *responsesRequest) (*provider.ResponseRequest, *selector.Selection, error) {
	if len(req.Input) == 0 {
		return nil, nil, nil
	}

	session := sessionOrDefault(req.SessionType, catalog.SessionGeneral)

	sel, err := selector.Select(catalog.AgentText, session, false)
	if err != nil {
		return nil, nil, err
	}
	tools := sel.WireDirect()

	model := g.defaultModel(req.Model)
	meta := prompt.Meta{
		Agent:     catalog.AgentText,
		Session:   session,
		ToolCount: len(tools),
		Model:     model,
		Version:   g.cfg.Agent.Version,
		Build:     g.cfg.Agent.BuildDate,
	}

	language := req.Language
	if language == "" {
		language = "English"
	}
	timeOfDay := req.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = "morning"
	}

	formatted, relayContext := normalizeAdditional(req.AdditionalContext)
	if req.RelayContext != "" {
		relayContext = req.RelayContext
	}
	if relayContext == "" && session == catalog.SessionRelayManager && req.Relay != nil {
		// Manager sessions fall back to the raw relay object as context
		if b, err := json.Marshal(map[string]any{"relay": req.Relay, "owner_name": req.OwnerName}); err == nil {
			relayContext = string(b)
		}
	}

	in := &prompt.Input{
		Language:      language,
		TimeOfDay:     timeOfDay,
		UserContext:   req.UserContext,
		Formatted:     formatted,
		Debrief:       req.DebriefContext,
		Day:           req.DayContext,
		Relay:         req.Relay,
		RelayContext:  relayContext,
		OwnerName:     req.OwnerName,
		RecipientName: req.RecipientName,
		ChatContext:   req.ChatContext,
	}
	if session == catalog.SessionDraft {
		in.Draft = &prompt.DraftInput{
			TaskType:     orDefault(req.TaskType, "other"),
			Instructions: req.Instructions,
			Context:      req.Context,
			Recipient:    req.Recipient,
			Subject:      req.Subject,
		}
	}
	if req.Relay != nil {
		in.Thread = req.Relay.CurrentThread()
		in.OwnerMode = req.Relay.OwnerMode
		if in.OwnerName == "" {
			in.OwnerName = req.Relay.OwnerName
		}
	}

	instructions := prompt.ForSession(session)(in, meta)

	temperature := 0.7
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	providerReq := &provider.ResponseRequest{
		Model:           model,
		Stream:          true,
		Instructions:    instructions,
		Input:           req.Input,
		Temperature:     temperature,
		MaxOutputTokens: req.MaxOutputTokens,
		Conversation:    req.Conversation,
	}
	// Empty tool lists are omitted entirely, never sent as []
	if len(tools) > 0 {
		providerReq.Tools = tools
		providerReq.ToolChoice = "auto"
	}

	return providerReq, sel, nil
}

// normalizeAdditional flattens the additional_context field, which arrives
// either as a pre-formatted string or as an object. Objects may carry a
// relay_context string; remaining fields become "key: value" lines.
func normalizeAdditional(raw json.RawMessage) (formatted, relayContext string) {
	if len(raw) == 0 {
		return "", ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, ""
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", ""
	}

	if rc, ok := obj["relay_context"]; ok {
		var rcStr string
		if err := json.Unmarshal(rc, &rcStr); err == nil {
			relayContext = rcStr
		} else {
			relayContext = string(rc)
		}
		delete(obj, "relay_context")
	}
	if f, ok := obj["formatted"]; ok {
		var fStr string
		if err := json.Unmarshal(f, &fStr); err == nil {
			formatted = fStr
		}
		delete(obj, "formatted")
	}
	if formatted == "" && len(obj) > 0 {
		b, err := json.MarshalIndent(obj, "", "  ")
		if err == nil {
			formatted = string(b)
		}
	}
	return formatted, relayContext
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
