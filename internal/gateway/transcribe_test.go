// ABOUTME: Tests for the transcription endpoints: token minting, input
// ABOUTME: validation, diarization defaults, and timeout mapping.

package gateway

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribeToken(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/token", r.URL.Path)
		assert.Equal(t, "aai-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"token":"tok_1","expires_in_seconds":60}`))
	})

	rec := getPath(h, "/transcribe/token")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	decodeResponse(t, rec, &body)
	assert.Equal(t, "tok_1", body["token"])
}

func TestTranscribeToken_POSTAllowed(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok_2","expires_in_seconds":60}`))
	})

	rec := postJSON(h, "/transcribe/token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTranscribeToken_BYOKHeaderForwarded(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-aai-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"token":"tok_3","expires_in_seconds":60}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/transcribe/token", nil)
	req.Header.Set("X-AssemblyAI-API-Key", "user-aai-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTranscribe_MissingAudio(t *testing.T) {
	h := newTestGateway(t, nil)
	rec := postJSON(h, "/transcribe", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required field: audio_data or audio_url")
}

func TestTranscribe_InvalidBase64(t *testing.T) {
	h := newTestGateway(t, nil)
	rec := postJSON(h, "/transcribe", `{"audio_data":"not base64!!!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid base64 audio_data")
}

func TestTranscribe_FullFlow(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/upload":
			w.Write([]byte(`{"upload_url":"https://cdn.example/a"}`))
		case r.URL.Path == "/transcript" && r.Method == http.MethodPost:
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			// Diarization defaults on.
			assert.Equal(t, true, req["speaker_labels"])
			w.Write([]byte(`{"id":"job_1"}`))
		case r.URL.Path == "/transcript/job_1":
			w.Write([]byte(`{"id":"job_1","status":"completed","text":"hello","utterances":[{"speaker":"A","text":"hello"}]}`))
		}
	})

	audio := base64.StdEncoding.EncodeToString([]byte("pcm"))
	rec := postJSON(h, "/transcribe", `{"audio_data":"`+audio+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success    bool `json:"success"`
		Transcript struct {
			ID         string          `json:"id"`
			Text       string          `json:"text"`
			Utterances json.RawMessage `json:"utterances"`
			Words      json.RawMessage `json:"words"`
		} `json:"transcript"`
	}
	decodeResponse(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "job_1", body.Transcript.ID)
	assert.Equal(t, "hello", body.Transcript.Text)
	assert.Contains(t, string(body.Transcript.Utterances), `"speaker"`)
	// Absent arrays come back as [], never null.
	assert.JSONEq(t, "[]", string(body.Transcript.Words))
}

func TestTranscribe_TimeoutMapsTo504(t *testing.T) {
	h := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/transcript" && r.Method == http.MethodPost:
			w.Write([]byte(`{"id":"job_2"}`))
		default:
			w.Write([]byte(`{"id":"job_2","status":"processing"}`))
		}
	})

	rec := postJSON(h, "/transcribe", `{"audio_url":"https://example.com/a.wav"}`)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transcription timed out")
}

func TestRawOrEmptyArray(t *testing.T) {
	assert.Equal(t, "[]", string(rawOrEmptyArray(nil)))
	assert.Equal(t, "[]", string(rawOrEmptyArray(json.RawMessage("null"))))
	assert.Equal(t, `[{"a":1}]`, string(rawOrEmptyArray(json.RawMessage(`[{"a":1}]`))))
}
