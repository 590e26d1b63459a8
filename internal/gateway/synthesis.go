// ABOUTME: Unattended AI-decision endpoints: nudge evaluation and report
// ABOUTME: synthesis. Both degrade to safe defaults rather than erroring out.

package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/2389/zunou-proxy/internal/prompt"
	"github.com/2389/zunou-proxy/internal/relay"
)

// synthesisModel is the fast model used for unattended decisions; these
// calls run on schedules, so cost matters more than depth.
const synthesisModel = "gpt-4o-mini"

// nudgeRequest is the body for POST /nudge-evaluate.
type nudgeRequest struct {
	Relay  *relay.Relay        `json:"relay"`
	Thread *relay.Thread       `json:"thread"`
	Owner  *prompt.Person      `json:"owner"`
	Timing *prompt.NudgeTiming `json:"timing"`
	Policy prompt.NudgePolicy  `json:"policy"`
	Forced bool                `json:"forced"`
}

// nudgeDecision is the fixed response shape. Degraded decisions always say
// no and schedule a later recheck.
type nudgeDecision struct {
	ShouldNudge    bool    `json:"should_nudge"`
	Reasoning      string  `json:"reasoning"`
	Message        string  `json:"message,omitempty"`
	NextCheckHours float64 `json:"next_check_hours"`
	EscalationNote string  `json:"escalation_note,omitempty"`
}

// Degradation recheck windows: upstream failures retry sooner than
// malformed responses, which suggest a prompt or model problem.
const (
	nudgeRetryHoursUpstream  = 6
	nudgeRetryHoursMalformed = 12
)

func (g *Gateway) handleNudgeEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req nudgeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Relay == nil || req.Thread == nil || req.Timing == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: relay, thread, timing")
		return
	}

	g.logger.Info("nudge evaluation",
		"thread", req.Thread.ID,
		"days_pending", req.Timing.DaysPending,
		"forced", req.Forced,
	)

	systemPrompt := prompt.BuildNudgeEvaluation(req.Relay, req.Thread, req.Owner, *req.Timing, req.Policy, req.Forced)

	content, err := g.completion.CompleteJSON(r.Context(), synthesisModel, systemPrompt,
		"Evaluate whether to send a nudge and generate the message if appropriate. Respond with JSON only.",
		0.7, 500, "")
	if err != nil {
		g.logger.Error("nudge evaluation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, nudgeDecision{
			ShouldNudge:    false,
			Reasoning:      "AI evaluation failed",
			NextCheckHours: nudgeRetryHoursUpstream,
		})
		return
	}

	var decision nudgeDecision
	if err := json.Unmarshal([]byte(content), &decision); err != nil {
		g.logger.Error("nudge decision parse failed", "error", err)
		writeJSON(w, http.StatusOK, nudgeDecision{
			ShouldNudge:    false,
			Reasoning:      "Failed to parse AI response",
			NextCheckHours: nudgeRetryHoursMalformed,
		})
		return
	}

	g.logger.Info("nudge decision", "should_nudge", decision.ShouldNudge)
	writeJSON(w, http.StatusOK, decision)
}

// reportRequest is the body for POST /synthesize-report.
type reportRequest struct {
	Relay    *relay.Relay    `json:"relay"`
	Threads  []relay.Thread  `json:"threads"`
	Insights []relay.Insight `json:"insights"`
	Owner    *prompt.Person  `json:"owner"`
}

// reportSynthesis is the fixed response shape; degraded results carry low
// confidence so consumers can flag them.
type reportSynthesis struct {
	Summary    string `json:"summary"`
	Headline   string `json:"headline"`
	Confidence string `json:"confidence"`
}

func (g *Gateway) handleSynthesizeReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req reportRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Relay == nil || req.Threads == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: relay, threads")
		return
	}

	g.logger.Info("report synthesis",
		"relay", req.Relay.ID,
		"threads", len(req.Threads),
		"insights", len(req.Insights),
	)

	systemPrompt := prompt.BuildReportSynthesis(req.Relay, req.Threads, req.Insights, req.Owner)

	content, err := g.completion.CompleteJSON(r.Context(), synthesisModel, systemPrompt,
		"Generate the synthesis report summary.",
		0.5, 400, "")
	if err != nil {
		g.logger.Error("report synthesis failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, reportSynthesis{
			Summary:    "Unable to generate AI summary",
			Headline:   "Report generated",
			Confidence: "low",
		})
		return
	}

	var synthesis reportSynthesis
	if err := json.Unmarshal([]byte(content), &synthesis); err != nil {
		g.logger.Error("report synthesis parse failed", "error", err)
		fallback := content
		if fallback == "" {
			fallback = "Report generated"
		}
		writeJSON(w, http.StatusOK, reportSynthesis{
			Summary:    fallback,
			Headline:   "Report ready",
			Confidence: "low",
		})
		return
	}

	g.logger.Info("report synthesized", "headline", synthesis.Headline, "confidence", synthesis.Confidence)
	writeJSON(w, http.StatusOK, synthesis)
}
