// ABOUTME: Capability listing for the client help surface: tools grouped by
// ABOUTME: category for a session/agent pair, cacheable for five minutes.

package gateway

import (
	"net/http"

	"github.com/2389/zunou-proxy/internal/catalog"
	"github.com/2389/zunou-proxy/internal/selector"
)

// capabilitiesResponse is the body for GET /capabilities.
type capabilitiesResponse struct {
	Success      bool                    `json:"success"`
	SessionType  catalog.SessionType     `json:"session_type"`
	SessionName  string                  `json:"session_name"`
	Agent        catalog.AgentType       `json:"agent"`
	AgentVersion string                  `json:"agent_version"`
	Categories   []selector.HelpCategory `json:"categories"`
	TotalItems   int                     `json:"total_items"`
}

func (g *Gateway) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	session := sessionOrDefault(q.Get("session_type"), catalog.SessionDailyDebrief)
	agent := catalog.AgentType(orDefault(q.Get("agent"), string(catalog.AgentVoice)))

	categories, err := selector.Capabilities(session, agent)
	if err != nil {
		g.logger.Error("capabilities lookup failed", "session_type", session, "error", err)
		writeUpstreamError(w, err)
		return
	}

	total := 0
	for _, cat := range categories {
		total += len(cat.Items)
	}

	g.logger.Info("capabilities served", "session_type", session, "agent", agent, "categories", len(categories))

	// Capability lists only change on deploy; let clients cache briefly
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, capabilitiesResponse{
		Success:      true,
		SessionType:  session,
		SessionName:  catalog.SessionDisplayName(session),
		Agent:        agent,
		AgentVersion: g.cfg.Agent.Version,
		Categories:   categories,
		TotalItems:   total,
	})
}
