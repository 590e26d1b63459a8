// ABOUTME: Tests for the text-agent proxy: obfuscated vs pass-through mode
// ABOUTME: detection, validation, and SSE relay behavior.

package gateway

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses_ObfuscatedMode(t *testing.T) {
	var got map[string]any
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/responses", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"type\":\"response.created\"}\n\n"))
	})

	rec := postJSON(h, "/responses", `{
		"session_type": "general",
		"input": [{"role":"user","content":"what's on my calendar"}]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "response.created")

	// The provider payload is assembled server-side.
	assert.Equal(t, "gpt-5.2", got["model"])
	assert.Equal(t, true, got["stream"])
	instructions, _ := got["instructions"].(string)
	assert.Contains(t, instructions, "--- AGENT IDENTITY ---")
	tools, _ := got["tools"].([]any)
	assert.NotEmpty(t, tools)
	assert.Equal(t, "auto", got["tool_choice"])
}

func TestResponses_ObfuscatedMissingInput(t *testing.T) {
	h := newTestGateway(t, nil)
	rec := postJSON(h, "/responses", `{"session_type":"general"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required field: input")
}

func TestResponses_ObfuscatedUnknownSession(t *testing.T) {
	h := newTestGateway(t, nil)
	rec := postJSON(h, "/responses", `{"session_type":"bogus","input":"hi"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown session type")
}

func TestResponses_DigestSessionOmitsTools(t *testing.T) {
	var got map[string]any
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("data: done\n\n"))
	})

	rec := postJSON(h, "/responses", `{"session_type":"digest","input":"summarize my day"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	// Toolless sessions never send an empty tools array.
	assert.NotContains(t, got, "tools")
	assert.NotContains(t, got, "tool_choice")
}

func TestResponses_RelayThreadByIDReachesPrompt(t *testing.T) {
	var got map[string]any
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("data: ok\n\n"))
	})

	// Older clients send only the thread id; it must resolve against the
	// threads list.
	rec := postJSON(h, "/responses", `{
		"session_type": "relay-conversation",
		"input": "hello",
		"relay": {
			"id": "relay_2",
			"owner_name": "Alex",
			"_my_thread_id": "thread_2",
			"threads": [
				{"id":"thread_1","recipient_name":"Kim","status":"pending"},
				{"id":"thread_2","recipient_name":"Dana","status":"active",
				 "redirect_chain":[{"from_name":"Sam","to_name":"Dana","reason":"knows the numbers"}]}
			]
		}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	instructions, _ := got["instructions"].(string)
	assert.Contains(t, instructions, "reaching out to Dana on behalf of Alex")
	assert.Contains(t, instructions, "HOW THIS REACHED DANA:")
}

func TestResponses_PassThroughValidation(t *testing.T) {
	h := newTestGateway(t, nil)

	for _, body := range []string{
		`{"model":"gpt-5.2"}`,
		`{"input":"hi"}`,
		`{}`,
	} {
		rec := postJSON(h, "/responses", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "Missing required fields: model, input")
	}
}

func TestResponses_PassThroughForcesStreaming(t *testing.T) {
	var got map[string]any
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("data: ok\n\n"))
	})

	rec := postJSON(h, "/responses", `{"model":"o4-mini","input":"hi","stream":false,"metadata":{"k":"v"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, got["stream"])
	assert.Equal(t, "o4-mini", got["model"])
	// Everything else is relayed untouched.
	assert.Equal(t, map[string]any{"k": "v"}, got["metadata"])
	assert.NotContains(t, got, "instructions")
}

func TestResponses_ExplicitToolsForcePassThrough(t *testing.T) {
	var got map[string]any
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("data: ok\n\n"))
	})

	rec := postJSON(h, "/responses", `{
		"session_type": "general",
		"model": "gpt-5.2",
		"input": "hi",
		"tools": [{"type":"function","name":"my_tool"}]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	tools, _ := got["tools"].([]any)
	require.Len(t, tools, 1)
	tool, _ := tools[0].(map[string]any)
	assert.Equal(t, "my_tool", tool["name"])
	assert.NotContains(t, got, "instructions")
}

func TestResponses_UpstreamErrorMirrored(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model not found"}}`, http.StatusNotFound)
	})

	rec := postJSON(h, "/responses", `{"session_type":"general","input":"hi"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "model not found")
}

func TestResponses_MethodNotAllowed(t *testing.T) {
	h := newTestGateway(t, nil)
	rec := getPath(h, "/responses")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNormalizeAdditional(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantFormatted string
		wantRelay     string
	}{
		{name: "empty", raw: ""},
		{name: "string", raw: `"TODAY: 3 meetings"`, wantFormatted: "TODAY: 3 meetings"},
		{
			name:          "object with formatted and relay_context",
			raw:           `{"formatted":"CONTEXT","relay_context":"RELAY"}`,
			wantFormatted: "CONTEXT",
			wantRelay:     "RELAY",
		},
		{name: "invalid json", raw: `[1,2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted, relayContext := normalizeAdditional(json.RawMessage(tt.raw))
			assert.Equal(t, tt.wantFormatted, formatted)
			assert.Equal(t, tt.wantRelay, relayContext)
		})
	}
}

func TestNormalizeAdditional_LeftoverFieldsBecomeJSON(t *testing.T) {
	formatted, relayContext := normalizeAdditional(json.RawMessage(`{"relay_context":"RC","schedule":"busy"}`))
	assert.Equal(t, "RC", relayContext)
	assert.Contains(t, formatted, `"schedule"`)
	assert.NotContains(t, formatted, "relay_context")
}
