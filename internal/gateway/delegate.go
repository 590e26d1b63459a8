// ABOUTME: Hybrid-mode delegation: the voice agent hands an action to the
// ABOUTME: text agent and gets a structured, speakable result back.

package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/2389/zunou-proxy/internal/catalog"
	"github.com/2389/zunou-proxy/internal/prompt"
	"github.com/2389/zunou-proxy/internal/provider"
	"github.com/2389/zunou-proxy/internal/selector"
)

// delegateRequest is the body for POST /delegate.
type delegateRequest struct {
	Action   string                     `json:"action"`
	Category string                     `json:"category"`
	Entities map[string]json.RawMessage `json:"entities"`
	Urgency  string                     `json:"urgency"`

	SessionType string `json:"session_type"`
	UserContext string `json:"user_context"`

	// ToolName pins the exact tool when the voice agent knows it.
	ToolName string `json:"tool_name"`

	// Multi-turn continuation: outputs from the previous turn's tool calls.
	ToolOutputs []delegateToolOutput `json:"tool_outputs"`

	PreviousResponseID string `json:"previous_response_id"`
}

type delegateToolOutput struct {
	CallID string `json:"call_id"`
	Output string `json:"output"`
}

// delegateResponse is the structured result the voice agent speaks from.
type delegateResponse struct {
	Success        bool                `json:"success"`
	ResponseID     string              `json:"response_id,omitempty"`
	Text           string              `json:"text,omitempty"`
	ToolCalls      []provider.ToolCall `json:"tool_calls,omitempty"`
	SpeakToUser    string              `json:"speak_to_user,omitempty"`
	Error          string              `json:"error,omitempty"`
	UpstreamStatus int                 `json:"upstream_status,omitempty"`
}

func (g *Gateway) handleDelegate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req delegateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Action == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: action, category")
		return
	}

	session := sessionOrDefault(req.SessionType, catalog.SessionGeneral)
	sel, err := selector.Select(catalog.AgentText, session, false)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}

	instruction := buildDelegateInstruction(&req)
	systemPrompt := buildDelegateSystemPrompt(req.UserContext)

	// Fresh actions send the instruction; continuations send the previous
	// turn's tool outputs instead.
	var input any
	if len(req.ToolOutputs) > 0 {
		items := make([]map[string]string, 0, len(req.ToolOutputs))
		for _, to := range req.ToolOutputs {
			items = append(items, map[string]string{
				"type":    "function_call_output",
				"call_id": to.CallID,
				"output":  to.Output,
			})
		}
		input = items
	} else {
		input = []map[string]string{{"role": "user", "content": instruction}}
	}

	g.logger.Info("delegate action",
		"category", req.Category,
		"tool_name", req.ToolName,
		"continuation", len(req.ToolOutputs) > 0,
	)

	providerReq := &provider.ResponseRequest{
		Model:              g.cfg.Provider.DefaultModel,
		Instructions:       systemPrompt,
		Input:              input,
		Tools:              sel.WireDirect(),
		ToolChoice:         "auto",
		Temperature:        0.7,
		PreviousResponseID: req.PreviousResponseID,
	}

	byok := r.Header.Get(headerProviderKey)
	resp, err := g.completion.CreateResponse(r.Context(), providerReq, byok)
	if err != nil {
		var statusErr *provider.StatusError
		if errors.As(err, &statusErr) {
			// Returned as 200 with an error payload so the voice client can
			// still parse and speak it.
			g.logger.Error("delegate upstream error", "status", statusErr.StatusCode)
			writeJSON(w, http.StatusOK, delegateResponse{
				Success:        false,
				Error:          upstreamErrorDetail(statusErr.Body),
				UpstreamStatus: statusErr.StatusCode,
				SpeakToUser:    "I ran into an issue with that request.",
			})
			return
		}
		g.logger.Error("delegate error", "error", err)
		writeJSON(w, http.StatusInternalServerError, delegateResponse{Success: false, Error: err.Error()})
		return
	}

	text := resp.Text()
	toolCalls := resp.ToolCalls()

	speak := text
	if speak == "" {
		if len(toolCalls) > 0 {
			speak = "Done."
		} else {
			speak = "I wasn't able to complete that action."
		}
	}

	g.recordUsage("delegate", sel, g.cfg.Provider.DefaultModel, sel.DirectTokens)
	g.logger.Info("delegate complete", "tool_calls", len(toolCalls), "text_chars", len(text), "response_id", resp.ID)

	writeJSON(w, http.StatusOK, delegateResponse{
		Success:     true,
		ResponseID:  resp.ID,
		Text:        text,
		ToolCalls:   toolCalls,
		SpeakToUser: speak,
	})
}

// buildDelegateInstruction renders the user-turn instruction: pinned-tool
// execution when the voice agent named a tool, otherwise a free-form action
// for the text agent to resolve.
func buildDelegateInstruction(req *delegateRequest) string {
	entities := formatEntities(req.Entities)

	if req.ToolName != "" {
		instruction := fmt.Sprintf(`EXECUTE TOOL: %s

USER REQUEST: %s

Call the %q tool with appropriate parameters based on the user's request.`, req.ToolName, req.Action, req.ToolName)
		if entities != "" {
			instruction += "\n\nENTITIES FROM SESSION:\n" + entities
		}
		return instruction + "\n\nAfter executing, provide a brief spoken summary of the result."
	}

	urgency := orDefault(req.Urgency, "normal")
	var b strings.Builder
	b.WriteString("Execute this delegated action from the Voice Agent:\n\n")
	b.WriteString("DELEGATED ACTION: " + req.Action + "\n")
	b.WriteString("CATEGORY: " + req.Category + "\n")
	b.WriteString("URGENCY: " + urgency)
	if entities != "" {
		b.WriteString("\n\nENTITIES FROM SESSION:\n" + entities)
	}
	b.WriteString("\n\nExecute the action and return the result. Be concise - the Voice Agent will speak the result to the user.")
	return b.String()
}

func buildDelegateSystemPrompt(userContext string) string {
	p := `You are ` + prompt.AgentName + `'s Text Agent, executing a delegated action from the Voice Agent.

IMPORTANT:
- Execute the requested action using the appropriate tools
- Be concise in your text response - it will be spoken aloud
- If using display tools (show_events, show_relays, etc.), also provide a brief spoken summary
- After lookups, ALWAYS use the corresponding show_* tool to display results visually`
	if userContext != "" {
		p += "\n\nABOUT THE USER:\n" + userContext
	}
	return p
}

// formatEntities renders session entities as "ref: json" lines in a stable
// order.
func formatEntities(entities map[string]json.RawMessage) string {
	if len(entities) == 0 {
		return ""
	}
	refs := make([]string, 0, len(entities))
	for ref := range entities {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		lines = append(lines, "  "+ref+": "+string(entities[ref]))
	}
	return strings.Join(lines, "\n")
}

// upstreamErrorDetail pulls the provider's error message out of its JSON
// envelope when possible, falling back to the raw body.
func upstreamErrorDetail(body string) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return body
}
