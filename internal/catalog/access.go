// ABOUTME: Access policy tables: per-tool session allowlists, voice-only set,
// ABOUTME: hybrid direct promotions, and the fixed relay session tool lists.

package catalog

import "sync"

// Session groups. FullAccessSessions is the default allowlist for most tools;
// relay-conversation deliberately gets nothing from the general table (its
// tool set is the fixed list below).
var (
	FullAccessSessions = []SessionType{
		SessionAboutMe, SessionDailyDebrief, SessionQuickAsk, SessionDayPrep,
		SessionEventContext, SessionRelayLanding, SessionRelayManager,
		SessionGeneral, SessionDiscoverTour, SessionChatContext,
		SessionChatCatchup,
	}
	NoToolSessions   = []SessionType{SessionDigest}
	DraftSessions    = []SessionType{SessionDraft}
	RelayRunSessions = []SessionType{SessionRelayConvo}
)

// sessionAccess maps tool name to the sessions allowed to use it. A tool
// absent from this map is invokable by no session. The table is built on
// first use: package variable initializers run before the init functions
// that register tools, so building it eagerly would iterate an empty
// registry.
var (
	sessionAccess     map[string][]SessionType
	sessionAccessOnce sync.Once
)

func accessTable() map[string][]SessionType {
	sessionAccessOnce.Do(func() {
		sessionAccess = buildSessionAccess()
	})
	return sessionAccess
}

func buildSessionAccess() map[string][]SessionType {
	access := make(map[string][]SessionType)

	// Everything defaults to the full-access group...
	for _, t := range All() {
		access[t.Name] = FullAccessSessions
	}

	// ...except the recipient-side relay tools, which exist only inside the
	// fixed relay-conversation/relay-manager lists.
	for _, name := range []string{
		"relay_log_insight", "relay_add_question", "relay_mark_complete",
		"relay_mark_partial", "relay_redirect", "relay_decline",
	} {
		delete(access, name)
	}

	// Mutating relay management stays on owner-facing sessions.
	ownerSessions := []SessionType{
		SessionRelayLanding, SessionRelayManager, SessionGeneral,
		SessionDailyDebrief, SessionChatContext,
	}
	for _, name := range []string{
		"cancel_relay", "add_relay_recipient", "close_relay_thread",
		"update_relay_context", "extend_thread_expiry", "remove_thread_expiry",
		"send_thread_nudge",
	} {
		access[name] = ownerSessions
	}

	return access
}

// AllowedSessions returns the sessions a tool may run in. Nil means none:
// the table is fail-closed.
func AllowedSessions(toolName string) []SessionType {
	return accessTable()[toolName]
}

// AllowedInSession reports whether a tool may run in the given session type.
func AllowedInSession(toolName string, session SessionType) bool {
	for _, s := range accessTable()[toolName] {
		if s == session {
			return true
		}
	}
	return false
}

// voiceOnly lists tools that exist only on the voice agent. They never reach
// the text agent's tool set.
var voiceOnly = map[string]bool{
	"adjust_speaking_pace":       true,
	"adjust_speaking_style":      true,
	"report_audio_quality_issue": true,
	"request_text_input":         true,
}

// VoiceOnly reports whether a tool is restricted to the voice agent.
func VoiceOnly(toolName string) bool {
	return voiceOnly[toolName]
}

// hybridDirect names the tools promoted to the direct set in hybrid mode.
// This is an exclusion-from-delegation list on purpose: a tool added to the
// catalog lands in the delegated set unless promoted here, which keeps the
// direct set's token cost bounded as the catalog grows.
var hybridDirect = map[string]bool{
	"lookup_events":      true,
	"lookup_tasks":       true,
	"lookup_notes":       true,
	"lookup_org_members": true,
	"lookup_contacts":    true,
}

// HybridDirect reports whether a tool is promoted to the hybrid direct set.
// Client-only tools are always direct regardless; they cannot execute
// server-side and so are never eligible for delegation.
func HybridDirect(t *Tool) bool {
	return t.ClientOnly || hybridDirect[t.Name]
}

// RelayConversationTools is the fixed, hand-curated tool set for autonomous
// relay-conversation sessions. It bypasses the general policy table to keep
// long multi-turn dialogues cheap.
var RelayConversationTools = []string{
	"relay_log_insight",
	"relay_add_question",
	"relay_mark_complete",
	"relay_mark_partial",
	"relay_redirect",
	"relay_decline",
	"lookup_events",
	"lookup_org_members",
	"lookup_contacts",
	"lookup_tasks",
	"end_session",
}

// RelayManagerTools is the fixed tool set for owners checking on a sent
// relay: the conversation set plus management and display tools.
var RelayManagerTools = append([]string{
	"add_relay_recipient",
	"close_relay_thread",
	"cancel_relay",
	"update_relay_context",
	"extend_thread_expiry",
	"remove_thread_expiry",
	"send_thread_nudge",
	"show_relays",
	"show_relay",
	"display_html_message",
	"close_modal",
}, RelayConversationTools...)

// ToolsByName resolves a name list against the catalog, dropping unknowns.
func ToolsByName(names []string) []*Tool {
	out := make([]*Tool, 0, len(names))
	for _, name := range names {
		if t := Lookup(name); t != nil {
			out = append(out, t)
		}
	}
	return out
}
