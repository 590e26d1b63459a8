// ABOUTME: HTTP client for the completion provider: Responses API streaming
// ABOUTME: and non-streaming, realtime client secrets, conversations, JSON chat

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Provider errors
var (
	ErrNoAPIKey = errors.New("no API key configured")
)

// StatusError carries a non-2xx upstream response so handlers can mirror
// the provider's status code and body to the client.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the completion provider's REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a completion client. apiKey may be empty when every
// caller supplies its own key (BYOK-only deployments).
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		// No overall timeout: streaming responses are long-lived.
		http:   &http.Client{},
		logger: logger.With("component", "provider"),
	}
}

// key returns the effective API key for a call: the per-request override
// wins over the configured key.
func (c *Client) key(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.apiKey != "" {
		return c.apiKey, nil
	}
	return "", ErrNoAPIKey
}

// ResponseRequest is the payload for the provider's Responses API.
// Tools is left untyped so callers can pass wire-format tool lists; it is
// omitted entirely when empty, as is tool_choice.
type ResponseRequest struct {
	Model              string  `json:"model"`
	Stream             bool    `json:"stream"`
	Instructions       string  `json:"instructions,omitempty"`
	Input              any     `json:"input"`
	Tools              any     `json:"tools,omitempty"`
	ToolChoice         string  `json:"tool_choice,omitempty"`
	Temperature        float64 `json:"temperature,omitempty"`
	MaxOutputTokens    int     `json:"max_output_tokens,omitempty"`
	Conversation       string  `json:"conversation,omitempty"`
	PreviousResponseID string  `json:"previous_response_id,omitempty"`
}

// post sends a JSON POST to the given path and returns the raw response.
// The caller owns the response body.
func (c *Client) post(ctx context.Context, path string, payload any, apiKey string) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling provider: %w", err)
	}
	return resp, nil
}

// postJSON sends a JSON POST and decodes a 2xx response into out. Non-2xx
// responses are returned as *StatusError.
func (c *Client) postJSON(ctx context.Context, path string, payload any, apiKey string, out any) error {
	resp, err := c.post(ctx, path, payload, apiKey)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding provider response: %w", err)
	}
	return nil
}

// StreamResponse starts a streaming Responses API call and returns the raw
// HTTP response for the caller to relay. A non-2xx status is returned as
// *StatusError with the body consumed.
func (c *Client) StreamResponse(ctx context.Context, req any, keyOverride string) (*http.Response, error) {
	apiKey, err := c.key(keyOverride)
	if err != nil {
		return nil, err
	}

	resp, err := c.post(ctx, "/responses", req, apiKey)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}

// ContentPart is one element of a message output item.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// OutputItem is one element of a Responses API output array.
type OutputItem struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Content   []ContentPart `json:"content"`
	Name      string        `json:"name"`
	Arguments string        `json:"arguments"`
	CallID    string        `json:"call_id"`
}

// Response is a parsed non-streaming Responses API result.
type Response struct {
	ID     string       `json:"id"`
	Output []OutputItem `json:"output"`
}

// Text concatenates all output_text parts across message items.
func (r *Response) Text() string {
	var text string
	for _, item := range r.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type == "output_text" {
				text += part.Text
			}
		}
	}
	return text
}

// ToolCall is a function call extracted from a response.
type ToolCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
	CallID    string          `json:"call_id"`
}

// ToolCalls extracts function calls from the output, normalizing arguments
// to JSON and preferring call_id over the item id.
func (r *Response) ToolCalls() []ToolCall {
	var calls []ToolCall
	for _, item := range r.Output {
		if item.Type != "function_call" || item.Name == "" {
			continue
		}
		args := json.RawMessage(item.Arguments)
		if len(args) == 0 || !json.Valid(args) {
			args = json.RawMessage("{}")
		}
		callID := item.CallID
		if callID == "" {
			callID = item.ID
		}
		calls = append(calls, ToolCall{Name: item.Name, Arguments: args, CallID: callID})
	}
	return calls
}

// CreateResponse makes a non-streaming Responses API call. Used for
// delegated actions where a reliable response_id matters more than latency.
func (c *Client) CreateResponse(ctx context.Context, req *ResponseRequest, keyOverride string) (*Response, error) {
	apiKey, err := c.key(keyOverride)
	if err != nil {
		return nil, err
	}

	req.Stream = false
	var out Response
	if err := c.postJSON(ctx, "/responses", req, apiKey, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Conversation is a provider-side conversation for multi-turn state.
type Conversation struct {
	ID  string
	Raw json.RawMessage
}

// CreateConversation creates a conversation, merging the given metadata
// over the standard agent/created fields.
func (c *Client) CreateConversation(ctx context.Context, metadata map[string]string, keyOverride string) (*Conversation, error) {
	apiKey, err := c.key(keyOverride)
	if err != nil {
		return nil, err
	}

	merged := map[string]string{
		"agent":   "text-agent",
		"created": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range metadata {
		merged[k] = v
	}

	var raw json.RawMessage
	if err := c.postJSON(ctx, "/conversations", map[string]any{"metadata": merged}, apiKey, &raw); err != nil {
		return nil, err
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decoding conversation: %w", err)
	}
	return &Conversation{ID: parsed.ID, Raw: raw}, nil
}

// AudioFormat describes a PCM stream format.
type AudioFormat struct {
	Type string `json:"type"`
	Rate int    `json:"rate"`
}

// TurnDetection configures server-side voice activity detection.
type TurnDetection struct {
	Type              string  `json:"type"`
	Threshold         float64 `json:"threshold"`
	PrefixPaddingMS   int     `json:"prefix_padding_ms"`
	SilenceDurationMS int     `json:"silence_duration_ms"`
	CreateResponse    bool    `json:"create_response"`
}

// AudioInput configures the inbound audio leg of a realtime session.
type AudioInput struct {
	Format        AudioFormat       `json:"format"`
	Transcription map[string]string `json:"transcription"`
	TurnDetection TurnDetection     `json:"turn_detection"`
}

// AudioOutput configures the outbound audio leg of a realtime session.
type AudioOutput struct {
	Format AudioFormat `json:"format"`
	Voice  string      `json:"voice"`
}

// RealtimeAudio groups both audio legs.
type RealtimeAudio struct {
	Input  AudioInput  `json:"input"`
	Output AudioOutput `json:"output"`
}

// RealtimeSession is the session block of a client-secret request.
type RealtimeSession struct {
	Type         string        `json:"type"`
	Model        string        `json:"model"`
	Instructions string        `json:"instructions"`
	Tools        any           `json:"tools"`
	ToolChoice   string        `json:"tool_choice"`
	Audio        RealtimeAudio `json:"audio"`
}

// ExpiresAfter bounds the lifetime of an ephemeral client secret.
type ExpiresAfter struct {
	Anchor  string `json:"anchor"`
	Seconds int    `json:"seconds"`
}

// RealtimeSecretRequest is the payload for creating a realtime client secret.
type RealtimeSecretRequest struct {
	ExpiresAfter ExpiresAfter    `json:"expires_after"`
	Session      RealtimeSession `json:"session"`
}

// RealtimeSecret is the parsed client-secret response: the ephemeral token
// plus the provider's echo of the session config.
type RealtimeSecret struct {
	Value     string `json:"value"`
	ExpiresAt int64  `json:"expires_at"`
	Session   struct {
		ID    string `json:"id"`
		Model string `json:"model"`
		Audio struct {
			Output struct {
				Voice string `json:"voice"`
			} `json:"output"`
		} `json:"audio"`
	} `json:"session"`
}

// CreateRealtimeSecret creates an ephemeral realtime client secret. The
// frontend uses the returned token to open its own WebSocket; the secret
// expires if unused within the configured window.
func (c *Client) CreateRealtimeSecret(ctx context.Context, req *RealtimeSecretRequest, keyOverride string) (*RealtimeSecret, error) {
	apiKey, err := c.key(keyOverride)
	if err != nil {
		return nil, err
	}

	var out RealtimeSecret
	if err := c.postJSON(ctx, "/realtime/client_secrets", req, apiKey, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteJSON makes a JSON-mode chat completion: system prompt plus a
// single user turn, with the response constrained to a JSON object.
// Returns the raw content string for the caller to parse.
func (c *Client) CompleteJSON(ctx context.Context, model, system, user string, temperature float64, maxTokens int, keyOverride string) (string, error) {
	apiKey, err := c.key(keyOverride)
	if err != nil {
		return "", err
	}

	payload := map[string]any{
		"model":  model,
		"stream": false,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     temperature,
		"max_tokens":      maxTokens,
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := c.postJSON(ctx, "/chat/completions", payload, apiKey, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("provider returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
