// ABOUTME: Conversation creation proxy: mints a provider conversation for
// ABOUTME: multi-turn state and mirrors the provider response verbatim.

package gateway

import (
	"net/http"
)

// conversationsRequest is the optional body for POST /conversations.
type conversationsRequest struct {
	Metadata map[string]string `json:"metadata"`
}

func (g *Gateway) handleConversations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Body is optional; parse errors just mean empty metadata
	var req conversationsRequest
	_ = decodeBody(r, &req)

	byok := r.Header.Get(headerProviderKey)
	conv, err := g.completion.CreateConversation(r.Context(), req.Metadata, byok)
	if err != nil {
		g.logger.Error("conversation creation failed", "error", err)
		writeUpstreamError(w, err)
		return
	}

	g.logger.Info("conversation created", "id", conv.ID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(conv.Raw)
}
