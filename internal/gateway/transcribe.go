// ABOUTME: Transcription endpoints: ephemeral streaming tokens and batch
// ABOUTME: diarization with server-side polling until completion.

package gateway

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2389/zunou-proxy/internal/provider"
)

func (g *Gateway) handleTranscribeToken(w http.ResponseWriter, r *http.Request) {
	// GET or POST; POST exists for iOS Safari compatibility
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	byok := r.Header.Get(headerTranscriptionKey)
	token, err := g.transcription.CreateStreamingToken(r.Context(), byok)
	if err != nil {
		g.logger.Error("streaming token fetch failed", "error", err)
		writeUpstreamError(w, err)
		return
	}

	g.logger.Info("streaming token issued", "expires_in_seconds", token.ExpiresInSeconds)
	writeJSON(w, http.StatusOK, token)
}

// transcribeRequest is the body for POST /transcribe. Exactly one of
// audio_data (base64) or audio_url is required.
type transcribeRequest struct {
	AudioData        string `json:"audio_data"`
	AudioURL         string `json:"audio_url"`
	SpeakerLabels    *bool  `json:"speaker_labels"`
	SpeakersExpected int    `json:"speakers_expected"`
}

// transcribeResponse wraps a completed transcript.
type transcribeResponse struct {
	Success    bool             `json:"success"`
	Transcript transcriptDetail `json:"transcript"`
}

type transcriptDetail struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Utterances json.RawMessage `json:"utterances"`
	Words      json.RawMessage `json:"words"`
}

func (g *Gateway) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req transcribeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.AudioData == "" && req.AudioURL == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: audio_data or audio_url")
		return
	}

	var audio []byte
	if req.AudioData != "" {
		var err error
		audio, err = base64.StdEncoding.DecodeString(req.AudioData)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid base64 audio_data")
			return
		}
	}

	// Diarization defaults on; it is the whole point of this endpoint
	speakerLabels := req.SpeakerLabels == nil || *req.SpeakerLabels

	byok := r.Header.Get(headerTranscriptionKey)
	transcript, err := g.transcription.Transcribe(r.Context(), &provider.TranscribeRequest{
		AudioData:        audio,
		AudioURL:         req.AudioURL,
		SpeakerLabels:    speakerLabels,
		SpeakersExpected: req.SpeakersExpected,
	}, byok)
	if err != nil {
		switch {
		case errors.Is(err, provider.ErrTranscriptionTimeout):
			writeError(w, http.StatusGatewayTimeout, "Transcription timed out")
		default:
			g.logger.Error("transcription failed", "error", err)
			writeUpstreamError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{
		Success: true,
		Transcript: transcriptDetail{
			ID:         transcript.ID,
			Text:       transcript.Text,
			Utterances: rawOrEmptyArray(transcript.Utterances),
			Words:      rawOrEmptyArray(transcript.Words),
		},
	})
}

// rawOrEmptyArray substitutes [] for absent arrays so clients never see null.
func rawOrEmptyArray(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage("[]")
	}
	return raw
}
