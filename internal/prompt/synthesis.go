// ABOUTME: Unattended AI-decision prompts: nudge evaluation and report
// ABOUTME: synthesis. Both demand JSON-only responses with fixed shapes.

package prompt

import (
	"fmt"
	"strings"

	"github.com/2389/zunou-proxy/internal/relay"
)

// NudgeTiming describes how long a thread has been waiting.
type NudgeTiming struct {
	DaysPending           float64 `json:"days_pending"`
	HoursSinceLastContact float64 `json:"hours_since_last_contact,omitempty"`
	NudgeCount            int     `json:"nudge_count,omitempty"`
	ExpiresAt             string  `json:"expires_at,omitempty"`
}

// NudgePolicy selects how eagerly the owner wants recipients reminded.
type NudgePolicy struct {
	Mode string `json:"mode,omitempty"` // urgent, aggressive, gentle, disabled
}

// Person identifies the relay owner for nudge/report prompts.
type Person struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// BuildNudgeEvaluation renders the system prompt for the unattended
// nudge-decision call. The model must answer with JSON only; the caller
// degrades to should_nudge=false on any failure.
func BuildNudgeEvaluation(r *relay.Relay, t *relay.Thread, owner *Person, timing NudgeTiming, policy NudgePolicy, forced bool) string {
	ownerName := "the owner"
	if owner != nil && owner.Name != "" {
		ownerName = owner.Name
	}

	var b strings.Builder
	b.WriteString("You are " + AgentName + ", deciding whether to send a reminder to a relay recipient who has not responded.\n\n")

	b.WriteString("RELAY:\n")
	if r != nil {
		b.WriteString("Objective: " + r.ObjectiveText() + "\n")
	}
	b.WriteString("Owner: " + ownerName + "\n\n")

	b.WriteString("THREAD:\n")
	if t != nil {
		b.WriteString("Recipient: " + t.RecipientName + "\n")
		b.WriteString("Status: " + string(t.Status) + "\n")
	}
	b.WriteString(fmt.Sprintf("Days pending: %.1f\n", timing.DaysPending))
	if timing.NudgeCount > 0 {
		b.WriteString(fmt.Sprintf("Nudges already sent: %d\n", timing.NudgeCount))
	}
	if timing.HoursSinceLastContact > 0 {
		b.WriteString(fmt.Sprintf("Hours since last contact: %.0f\n", timing.HoursSinceLastContact))
	}
	if timing.ExpiresAt != "" {
		b.WriteString("Thread expires: " + timing.ExpiresAt + "\n")
	}
	b.WriteString("\n")

	b.WriteString("NUDGE POLICY: ")
	switch policy.Mode {
	case "urgent":
		b.WriteString("urgent — remind roughly daily; deadlines matter more than politeness.\n")
	case "aggressive":
		b.WriteString("aggressive — remind every couple of days while the thread is pending.\n")
	case "disabled":
		if forced {
			b.WriteString("disabled — never recommend a nudge (overridden: this evaluation was forced by the owner).\n")
		} else {
			b.WriteString("disabled — never recommend a nudge.\n")
		}
	default:
		b.WriteString("gentle — remind sparingly; err on the side of not nagging.\n")
	}
	if forced {
		b.WriteString("The owner explicitly requested this evaluation now.\n")
	}
	b.WriteString("\n")

	b.WriteString(`MESSAGE RULES (when you do nudge):
- Write in first person as ` + AgentName + ` speaking to the recipient
- Friendly and brief; reference what ` + ownerName + ` is waiting on
- Never guilt-trip, never mention how many reminders were sent

Respond with JSON only:
{"should_nudge": true|false, "reasoning": "...", "message": "...", "next_check_hours": <number>, "escalation_note": "..."}
Omit message and escalation_note when should_nudge is false.`)

	return b.String()
}

// BuildReportSynthesis renders the system prompt for the unattended
// relay-report call: a direct answer to the relay's original request,
// synthesized from completed-thread responses and gathered insights.
func BuildReportSynthesis(r *relay.Relay, threads []relay.Thread, insights []relay.Insight, owner *Person) string {
	ownerName := "the user"
	if owner != nil && owner.Name != "" {
		ownerName = owner.Name
	}

	summaries := make([]string, 0, len(threads))
	for _, t := range threads {
		if t.Status != relay.ThreadComplete {
			continue
		}
		switch {
		case t.ThreadSummary != "":
			summaries = append(summaries, t.RecipientName+": "+t.ThreadSummary)
		case len(t.Conversation) > 0:
			var said []string
			for _, m := range t.Conversation {
				if m.Role == "user" {
					said = append(said, m.Content)
				}
			}
			if len(said) > 5 {
				said = said[len(said)-5:]
			}
			if len(said) > 0 {
				summaries = append(summaries, t.RecipientName+" said:\n  \""+strings.Join(said, "\"\n  \"")+"\"")
			} else {
				summaries = append(summaries, t.RecipientName+": Completed (no detailed response captured)")
			}
		default:
			summaries = append(summaries, t.RecipientName+": Completed (no detailed response captured)")
		}
	}
	threadBlock := "No responses available"
	if len(summaries) > 0 {
		threadBlock = strings.Join(summaries, "\n\n")
	}

	var b strings.Builder
	b.WriteString("You are " + AgentName + ", synthesizing responses to answer a question or complete a task.\n\n")
	b.WriteString("ORIGINAL REQUEST from " + ownerName + ":\n")
	if r != nil {
		b.WriteString("\"" + r.ObjectiveText() + "\"\n")
		if r.Mission != nil && r.Mission.Context != "" {
			b.WriteString("Context: " + r.Mission.Context + "\n")
		}
	}
	b.WriteString("\nRESPONSES RECEIVED:\n" + threadBlock + "\n")

	if len(insights) > 0 {
		b.WriteString("\nKEY INSIGHTS GATHERED:\n")
		for _, ins := range insights {
			line := "- " + ins.Content
			if ins.Source != "" {
				line += " (from " + ins.Source + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(`
Your task: write a clear, concise summary that DIRECTLY ANSWERS the original request.
- Focus on what was learned, the actual answer to the question
- Be specific and actionable
- 2-4 sentences max

Respond with JSON only:
{"summary": "the answer in plain English", "headline": "one line, max 10 words", "confidence": "high"|"medium"|"low"}`)

	return b.String()
}
