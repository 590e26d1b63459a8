// ABOUTME: HTTP client for the transcription provider: streaming tokens
// ABOUTME: and batch diarization with upload-then-poll semantics

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

// Transcription errors
var (
	ErrNoTranscriptionKey   = errors.New("transcription API key not configured")
	ErrTranscriptionTimeout = errors.New("transcription timed out")
	ErrTranscriptionFailed  = errors.New("transcription failed")
)

// TranscriptionClient talks to the transcription provider. The provider
// uses a bare API key in the Authorization header (no Bearer prefix).
type TranscriptionClient struct {
	baseURL      string
	streamingURL string
	apiKey       string
	pollInterval time.Duration
	maxPolls     int
	http         *http.Client
	logger       *slog.Logger
}

// NewTranscriptionClient creates a transcription client.
func NewTranscriptionClient(baseURL, streamingURL, apiKey string, pollInterval time.Duration, maxPolls int, logger *slog.Logger) *TranscriptionClient {
	if logger == nil {
		logger = slog.Default()
	}
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	if maxPolls <= 0 {
		maxPolls = 120
	}
	return &TranscriptionClient{
		baseURL:      baseURL,
		streamingURL: streamingURL,
		apiKey:       apiKey,
		pollInterval: pollInterval,
		maxPolls:     maxPolls,
		// Upload and status calls are short; the poll loop bounds total time.
		http:   &http.Client{Timeout: 60 * time.Second},
		logger: logger.With("component", "transcription"),
	}
}

func (c *TranscriptionClient) key(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.apiKey != "" {
		return c.apiKey, nil
	}
	return "", ErrNoTranscriptionKey
}

// StreamingToken is an ephemeral token for the realtime transcription socket.
type StreamingToken struct {
	Token            string `json:"token"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

// CreateStreamingToken fetches a short-lived streaming token (60s) so the
// frontend can open its own realtime transcription socket without ever
// seeing the long-lived API key.
func (c *TranscriptionClient) CreateStreamingToken(ctx context.Context, keyOverride string) (*StreamingToken, error) {
	apiKey, err := c.key(keyOverride)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.streamingURL+"/token?expires_in_seconds=60", nil)
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Authorization", apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching streaming token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var token StreamingToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decoding streaming token: %w", err)
	}
	return &token, nil
}

// TranscribeRequest describes one batch transcription job. Exactly one of
// AudioData (raw bytes, uploaded first) or AudioURL must be set.
type TranscribeRequest struct {
	AudioData        []byte
	AudioURL         string
	SpeakerLabels    bool
	SpeakersExpected int
}

// Transcript is a completed diarized transcription.
type Transcript struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Utterances json.RawMessage `json:"utterances"`
	Words      json.RawMessage `json:"words"`
}

// Transcribe uploads the audio if needed, submits the transcription job,
// and polls until it completes or the poll budget is exhausted.
// Returns ErrTranscriptionTimeout when the budget runs out.
func (c *TranscriptionClient) Transcribe(ctx context.Context, req *TranscribeRequest, keyOverride string) (*Transcript, error) {
	apiKey, err := c.key(keyOverride)
	if err != nil {
		return nil, err
	}

	audioURL := req.AudioURL
	if len(req.AudioData) > 0 {
		audioURL, err = c.upload(ctx, req.AudioData, apiKey)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("audio uploaded", "url", audioURL)
	}
	if audioURL == "" {
		return nil, errors.New("audio data or audio URL required")
	}

	jobID, err := c.submit(ctx, audioURL, req, apiKey)
	if err != nil {
		return nil, err
	}
	c.logger.Info("transcription queued", "id", jobID)

	return c.poll(ctx, jobID, apiKey)
}

func (c *TranscriptionClient) upload(ctx context.Context, audio []byte, apiKey string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out struct {
		UploadURL string `json:"upload_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}
	return out.UploadURL, nil
}

func (c *TranscriptionClient) submit(ctx context.Context, audioURL string, r *TranscribeRequest, apiKey string) (string, error) {
	payload := map[string]any{
		"audio_url":      audioURL,
		"speaker_labels": r.SpeakerLabels,
	}
	if r.SpeakersExpected > 0 {
		payload["speakers_expected"] = r.SpeakersExpected
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling transcript request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building transcript request: %w", err)
	}
	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting transcription: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding transcript response: %w", err)
	}
	return out.ID, nil
}

func (c *TranscriptionClient) poll(ctx context.Context, jobID, apiKey string) (*Transcript, error) {
	for poll := 0; poll < c.maxPolls; poll++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		status, transcript, err := c.checkStatus(ctx, jobID, apiKey)
		if err != nil {
			// Transient status-check failures are retried
			c.logger.Warn("transcription status check failed", "id", jobID, "error", err)
			continue
		}

		switch status {
		case "completed":
			c.logger.Info("transcription completed", "id", jobID)
			return transcript, nil
		case "error":
			return nil, fmt.Errorf("%w: %s", ErrTranscriptionFailed, transcript.Text)
		}

		c.logger.Debug("transcription pending", "id", jobID, "status", status, "poll", poll+1, "max", c.maxPolls)
	}

	return nil, ErrTranscriptionTimeout
}

func (c *TranscriptionClient) checkStatus(ctx context.Context, jobID, apiKey string) (string, *Transcript, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcript/"+jobID, nil)
	if err != nil {
		return "", nil, fmt.Errorf("building status request: %w", err)
	}
	req.Header.Set("Authorization", apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("checking status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return "", nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out struct {
		ID         string          `json:"id"`
		Status     string          `json:"status"`
		Text       string          `json:"text"`
		Error      string          `json:"error"`
		Utterances json.RawMessage `json:"utterances"`
		Words      json.RawMessage `json:"words"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", nil, fmt.Errorf("decoding status response: %w", err)
	}

	transcript := &Transcript{
		ID:         out.ID,
		Text:       out.Text,
		Utterances: out.Utterances,
		Words:      out.Words,
	}
	if out.Status == "error" {
		transcript.Text = out.Error
	}
	return out.Status, transcript, nil
}
