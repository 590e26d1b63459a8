// ABOUTME: Prompt builder family: one template function per session type,
// ABOUTME: composed from shared fragments (identity, rules, capabilities).

package prompt

import (
	"github.com/2389/zunou-proxy/internal/catalog"
	"github.com/2389/zunou-proxy/internal/relay"
)

// Meta is the agent identity metadata interpolated into every prompt.
type Meta struct {
	Agent     catalog.AgentType
	Session   catalog.SessionType
	ToolCount int
	Model     string
	Version   string
	Build     string
}

// DebriefSections is the structured daily-debrief context. Preferred over
// the legacy pre-formatted string whenever present.
type DebriefSections struct {
	Conflicts   string       `json:"conflicts,omitempty"`
	Today       string       `json:"today,omitempty"`
	Tasks       string       `json:"tasks,omitempty"`
	Insights    string       `json:"insights,omitempty"`
	Relays      *RelayCounts `json:"relays,omitempty"`
	Tomorrow    string       `json:"tomorrow,omitempty"`
	Actionables []string     `json:"actionables,omitempty"`
}

// RelayCounts summarizes relay activity for the debrief.
type RelayCounts struct {
	Incoming  int `json:"incoming"`
	Waiting   int `json:"waiting"`
	Completed int `json:"completed"`
}

// DebriefContext is the structured debrief payload.
type DebriefContext struct {
	Counts   map[string]int   `json:"counts,omitempty"`
	Sections *DebriefSections `json:"sections,omitempty"`
}

// DayContext carries a specific day's schedule for day-prep sessions.
type DayContext struct {
	Date   string   `json:"date,omitempty"`
	Events []string `json:"events,omitempty"`
	Notes  string   `json:"notes,omitempty"`
}

// DraftInput carries the task parameters for draft sessions.
type DraftInput struct {
	TaskType     string `json:"task_type"`
	Instructions string `json:"instructions"`
	Context      string `json:"context,omitempty"`
	Recipient    string `json:"recipient,omitempty"`
	Subject      string `json:"subject,omitempty"`
}

// Input is the normalized context record every builder consumes. Callers
// resolve legacy and structured request shapes into this one form before any
// template logic runs.
type Input struct {
	Language  string
	TimeOfDay string

	UserContext string

	// Formatted is the legacy pre-formatted context string. Builders that
	// also accept a structured shape use it only when the structured field
	// is absent.
	Formatted string

	Debrief *DebriefContext
	Day     *DayContext
	Draft   *DraftInput

	Relay         *relay.Relay
	Thread        *relay.Thread
	RelayContext  string
	OwnerMode     bool
	OwnerName     string
	RecipientName string

	ChatContext string

	// DelegatedCapabilities is the hybrid-mode digest from the selector.
	// Empty means delegation is off; the section is omitted entirely.
	DelegatedCapabilities string
}

// Builder renders the system prompt for one session type.
type Builder func(in *Input, meta Meta) string

var textBuilders = map[catalog.SessionType]Builder{
	catalog.SessionDailyDebrief: buildDailyDebrief,
	catalog.SessionQuickAsk:     buildDailyDebrief,
	catalog.SessionDayPrep:      buildDayPrep,
	catalog.SessionEventContext: buildEventContext,
	catalog.SessionRelayLanding: buildRelayLanding,
	catalog.SessionRelayManager: buildRelayManager,
	catalog.SessionRelayConvo:   buildRelayConversation,
	catalog.SessionDigest:       buildDigest,
	catalog.SessionDraft:        buildDraft,
	catalog.SessionDiscoverTour: buildDiscoverTour,
	catalog.SessionChatContext:  buildChatContext,
}

var voiceBuilders = map[catalog.SessionType]Builder{
	catalog.SessionDailyDebrief: voiceWrap(buildDailyDebrief),
	catalog.SessionDayPrep:      voiceWrap(buildDayPrep),
	catalog.SessionEventContext: voiceWrap(buildEventContext),
	catalog.SessionRelayLanding: voiceWrap(buildRelayLanding),
	catalog.SessionRelayManager: voiceWrap(buildRelayManager),
	catalog.SessionRelayConvo:   voiceWrap(buildRelayConversation),
	catalog.SessionDiscoverTour: voiceWrap(buildDiscoverTour),
	catalog.SessionChatContext:  voiceWrap(buildChatContext),
	catalog.SessionChatCatchup:  voiceWrap(buildChatCatchup),
	catalog.SessionAboutMe:      voiceWrap(buildAboutMe),
}

// ForSession returns the text-agent builder for a session type. Unmapped
// session types fall back to the general assistant builder.
func ForSession(session catalog.SessionType) Builder {
	if b, ok := textBuilders[session]; ok {
		return b
	}
	return buildGeneral
}

// VoiceForSession returns the voice-agent builder for a session type.
// The about-me builder is the voice default.
func VoiceForSession(session catalog.SessionType) Builder {
	if b, ok := voiceBuilders[session]; ok {
		return b
	}
	return voiceWrap(buildAboutMe)
}
