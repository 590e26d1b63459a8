// ABOUTME: Tests for hybrid delegation: instruction building, upstream error
// ABOUTME: wrapping, and the speakable-result contract.

package gateway

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/zunou-proxy/internal/provider"
)

func TestDelegate_MissingFields(t *testing.T) {
	h := newTestGateway(t, nil)

	for _, body := range []string{
		`{}`,
		`{"action":"check my calendar"}`,
		`{"category":"calendar"}`,
	} {
		rec := postJSON(h, "/delegate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "Missing required fields: action, category")
	}
}

func TestDelegate_Success(t *testing.T) {
	var got provider.ResponseRequest
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(provider.Response{
			ID: "resp_1",
			Output: []provider.OutputItem{
				{Type: "message", Content: []provider.ContentPart{{Type: "output_text", Text: "Created the event."}}},
				{Type: "function_call", Name: "create_event", Arguments: `{"title":"standup"}`, CallID: "call_1"},
			},
		})
	})

	rec := postJSON(h, "/delegate", `{
		"action": "schedule standup tomorrow at 9",
		"category": "calendar",
		"urgency": "high"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp delegateResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "resp_1", resp.ResponseID)
	assert.Equal(t, "Created the event.", resp.Text)
	assert.Equal(t, "Created the event.", resp.SpeakToUser)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "create_event", resp.ToolCalls[0].Name)

	// The text agent runs the full direct toolset with the delegated action
	// as the user turn.
	assert.Equal(t, "gpt-5.2", got.Model)
	assert.False(t, got.Stream)
	assert.Equal(t, "auto", got.ToolChoice)
	assert.NotEmpty(t, got.Tools)
	assert.Contains(t, got.Instructions, "executing a delegated action from the Voice Agent")

	b, err := json.Marshal(got.Input)
	require.NoError(t, err)
	assert.Contains(t, string(b), "DELEGATED ACTION: schedule standup tomorrow at 9")
	assert.Contains(t, string(b), "URGENCY: high")
}

func TestDelegate_UpstreamErrorReturnsSpeakable200(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	})

	rec := postJSON(h, "/delegate", `{"action":"do the thing","category":"tasks"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp delegateResponse
	decodeResponse(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusTooManyRequests, resp.UpstreamStatus)
	assert.Equal(t, "rate limited", resp.Error)
	assert.Equal(t, "I ran into an issue with that request.", resp.SpeakToUser)
}

func TestDelegate_ToolCallsWithoutTextSpeakDone(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(provider.Response{
			ID: "resp_2",
			Output: []provider.OutputItem{
				{Type: "function_call", Name: "show_events", Arguments: `{}`, CallID: "call_1"},
			},
		})
	})

	rec := postJSON(h, "/delegate", `{"action":"show my events","category":"calendar"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp delegateResponse
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "Done.", resp.SpeakToUser)
}

func TestDelegate_EmptyResultSpeaksFailure(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(provider.Response{ID: "resp_3"})
	})

	rec := postJSON(h, "/delegate", `{"action":"do something","category":"tasks"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp delegateResponse
	decodeResponse(t, rec, &resp)
	assert.Equal(t, "I wasn't able to complete that action.", resp.SpeakToUser)
}

func TestDelegate_ContinuationSendsToolOutputs(t *testing.T) {
	var got provider.ResponseRequest
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(provider.Response{ID: "resp_4"})
	})

	rec := postJSON(h, "/delegate", `{
		"action": "continue",
		"category": "calendar",
		"previous_response_id": "resp_1",
		"tool_outputs": [{"call_id":"call_1","output":"{\"created\":true}"}]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "resp_1", got.PreviousResponseID)

	b, err := json.Marshal(got.Input)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"function_call_output"`)
	assert.Contains(t, string(b), `"call_1"`)
	assert.NotContains(t, string(b), "DELEGATED ACTION")
}

func TestBuildDelegateInstruction_PinnedTool(t *testing.T) {
	instruction := buildDelegateInstruction(&delegateRequest{
		Action:   "create the standup event",
		Category: "calendar",
		ToolName: "create_event",
	})

	assert.True(t, strings.HasPrefix(instruction, "EXECUTE TOOL: create_event"))
	assert.Contains(t, instruction, "USER REQUEST: create the standup event")
	assert.Contains(t, instruction, `Call the "create_event" tool`)
	assert.Contains(t, instruction, "brief spoken summary")
	assert.NotContains(t, instruction, "DELEGATED ACTION")
}

func TestBuildDelegateInstruction_FreeFormDefaultsUrgency(t *testing.T) {
	instruction := buildDelegateInstruction(&delegateRequest{
		Action:   "find the budget doc",
		Category: "tasks",
	})

	assert.Contains(t, instruction, "DELEGATED ACTION: find the budget doc")
	assert.Contains(t, instruction, "URGENCY: normal")
	assert.Contains(t, instruction, "the Voice Agent will speak the result")
}

func TestBuildDelegateSystemPrompt_UserContext(t *testing.T) {
	p := buildDelegateSystemPrompt("")
	assert.NotContains(t, p, "ABOUT THE USER")

	p = buildDelegateSystemPrompt("Works in finance.")
	assert.Contains(t, p, "ABOUT THE USER:\nWorks in finance.")
}

func TestFormatEntities_StableOrder(t *testing.T) {
	entities := map[string]json.RawMessage{
		"zeta":  json.RawMessage(`{"id":2}`),
		"alpha": json.RawMessage(`{"id":1}`),
	}
	got := formatEntities(entities)
	assert.Equal(t, "  alpha: {\"id\":1}\n  zeta: {\"id\":2}", got)

	assert.Equal(t, "", formatEntities(nil))
}

func TestUpstreamErrorDetail(t *testing.T) {
	assert.Equal(t, "bad model", upstreamErrorDetail(`{"error":{"message":"bad model"}}`))
	assert.Equal(t, "plain text failure", upstreamErrorDetail("plain text failure"))
}
