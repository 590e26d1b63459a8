// ABOUTME: Relay prompt builders: recipient conversation, owner jump-in,
// ABOUTME: owner status manager, and completed-relay landing.

package prompt

import (
	"fmt"
	"strings"

	"github.com/2389/zunou-proxy/internal/relay"
)

func buildRelayConversation(in *Input, meta Meta) string {
	if in.OwnerMode || (in.Relay != nil && in.Relay.OwnerMode) {
		return buildRelayOwnerTurn(in, meta)
	}
	return buildRelayRecipientTurn(in, meta)
}

// buildRelayRecipientTurn is the agent's working prompt while talking to a
// relay recipient on the owner's behalf.
func buildRelayRecipientTurn(in *Input, meta Meta) string {
	r := in.Relay
	owner := in.OwnerName
	if owner == "" && r != nil {
		owner = r.OwnerName
	}
	if owner == "" {
		owner = "the sender"
	}
	recipient := in.RecipientName
	if recipient == "" && in.Thread != nil {
		recipient = in.Thread.RecipientName
	}

	persona := fmt.Sprintf(
		`You are %s, reaching out to %s on behalf of %s. You are conducting this conversation autonomously: be warm, direct about why you're here, and efficient with their time.`,
		AgentName, recipient, owner)

	var mission string
	if r != nil {
		var b strings.Builder
		b.WriteString("YOUR MISSION:\n")
		b.WriteString("Objective: " + r.ObjectiveText() + "\n")
		if r.Mission != nil {
			if r.Mission.Context != "" {
				b.WriteString("Background: " + r.Mission.Context + "\n")
			}
			if r.Mission.SuccessCriteria != "" {
				b.WriteString("Done when: " + r.Mission.SuccessCriteria + "\n")
			}
			if len(r.Mission.Questions) > 0 {
				b.WriteString("Questions to cover:\n- " + strings.Join(r.Mission.Questions, "\n- ") + "\n")
			}
		}
		mission = strings.TrimRight(b.String(), "\n")
	}

	var updates string
	if r != nil && len(r.ContextUpdates) > 0 {
		lines := make([]string, 0, len(r.ContextUpdates))
		for _, u := range r.ContextUpdates {
			line := "- " + u.Note
			if u.At != "" {
				line += " (" + u.At + ")"
			}
			lines = append(lines, line)
		}
		updates = "UPDATES FROM " + strings.ToUpper(owner) + ":\n" + strings.Join(lines, "\n")
	}

	var prior string
	if in.Thread != nil && len(in.Thread.Insights) > 0 {
		lines := make([]string, 0, len(in.Thread.Insights))
		for _, ins := range in.Thread.Insights {
			lines = append(lines, "- "+ins.Content)
		}
		prior = "WHAT YOU ALREADY KNOW:\n" + strings.Join(lines, "\n")
	}

	journey := relay.JourneyNarrative(r, in.Thread)

	var visible string
	if r != nil && in.Thread != nil {
		visible = relay.VisibleThreadsBlock(r, in.Thread.ID)
	}

	protocol := `CONVERSATION PROTOCOL:
- Call relay_log_insight the moment the recipient shares something useful; do not wait for the end
- If they ask something only ` + owner + ` can answer, call relay_add_question and keep going
- If they say someone else by name is the right person, look that person up (lookup_org_members, then lookup_contacts) and call relay_redirect. Do NOT call relay_mark_partial for a referral; partial is only for "I'll get back to you later myself"
- If they decline to participate, call relay_decline and end politely
- CRITICAL: You MUST call relay_mark_complete with a summary before saying goodbye when the objective is met. Conversational closure alone does not complete the thread.`

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		mission,
		updates,
		prior,
		journey,
		visible,
		protocol,
		FormatRules(meta.Agent),
	)
}

// buildRelayOwnerTurn is the prompt when the relay's owner jumps into their
// own relay. The owner is never asked the mission question; the agent only
// reports progress and takes management commands.
func buildRelayOwnerTurn(in *Input, meta Meta) string {
	r := in.Relay
	persona := fmt.Sprintf(
		`You are %s. The person you are talking to is the OWNER of this relay, checking in on it. Do NOT ask them questions about the relay topic; they created it. Summarize progress and take management commands.`,
		AgentName)

	status := relayStatusBlock(r)

	management := `MANAGEMENT ACTIONS YOU CAN TAKE:
- relay_log_insight to record something the owner adds
- relay_redirect to point a thread at a different person
- relay_mark_complete to close out a thread the owner is satisfied with`

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		status,
		management,
		FormatRules(meta.Agent),
	)
}

func buildRelayManager(in *Input, meta Meta) string {
	persona := fmt.Sprintf(
		`You are %s, giving the relay's SENDER a status update on a relay that is still in flight. This user is the owner, not a recipient: never ask them the relay's question. Report where each thread stands and carry out management requests.`,
		AgentName)

	var context string
	if in.RelayContext != "" {
		context = "RELAY STATE:\n" + in.RelayContext
	} else if in.Relay != nil {
		context = relayStatusBlock(in.Relay)
	}

	management := `MANAGEMENT ACTIONS:
- send_thread_nudge to remind a quiet recipient
- add_relay_recipient to bring someone new in
- relay_redirect / close_relay_thread to reroute or stop a thread
- extend_thread_expiry / remove_thread_expiry to change deadlines
- update_relay_context to pass new information to recipients
- cancel_relay if the owner wants to stop entirely`

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		context,
		management,
		FormatRules(meta.Agent),
	)
}

func buildRelayLanding(in *Input, meta Meta) string {
	persona := fmt.Sprintf(
		`You are %s, walking the owner through the results of a completed relay. Lead with the deliverable (the synthesized answer), then how it got there, then suggested next actions. You have full tool access to act on the findings.`,
		AgentName)

	var context string
	if in.RelayContext != "" {
		context = "RELAY RESULTS:\n" + in.RelayContext
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		context,
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}

// relayStatusBlock renders thread-by-thread status counts for owner views.
func relayStatusBlock(r *relay.Relay) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("RELAY STATUS:\n")
	b.WriteString("Objective: " + r.ObjectiveText() + "\n")
	b.WriteString(fmt.Sprintf("Threads complete: %d of %d (completion mode: %s)\n",
		r.CompletedThreads(), len(r.Threads), r.CompletionMode))
	if r.Resolved() {
		b.WriteString("Overall: complete\n")
	} else {
		b.WriteString("Overall: in progress\n")
	}
	for _, t := range r.Threads {
		b.WriteString(fmt.Sprintf("- %s: %s", t.RecipientName, t.Status))
		if len(t.Insights) > 0 {
			b.WriteString(" — latest: " + t.Insights[len(t.Insights)-1].Content)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
