// ABOUTME: Declarative tool catalog shared by the voice and text agents.
// ABOUTME: Defines tool records, parameter schemas, and the provider wire form.

package catalog

import "sort"

// AgentType identifies which agent persona a request targets.
type AgentType string

const (
	AgentVoice AgentType = "voice"
	AgentText  AgentType = "text"
)

// SessionType discriminates which prompt template and tool policy apply.
type SessionType string

const (
	SessionAboutMe      SessionType = "about-me"
	SessionDailyDebrief SessionType = "daily-debrief"
	SessionQuickAsk     SessionType = "quick-ask"
	SessionDayPrep      SessionType = "day-prep"
	SessionEventContext SessionType = "event-context"
	SessionRelayLanding SessionType = "relay-landing"
	SessionRelayManager SessionType = "relay-manager"
	SessionRelayConvo   SessionType = "relay-conversation"
	SessionGeneral      SessionType = "general"
	SessionDigest       SessionType = "digest"
	SessionDraft        SessionType = "draft"
	SessionDiscoverTour SessionType = "discover-tour"
	SessionChatContext  SessionType = "chat-context"
	SessionChatCatchup  SessionType = "chat-catchup"
)

// RiskLevel is informational metadata the client uses to gate confirmation
// dialogs. The proxy never enforces it.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Category groups tools for help surfaces and the delegation digest.
type Category string

const (
	CategoryCalendar    Category = "calendar"
	CategoryMeetingPrep Category = "meeting_prep"
	CategoryPastMeeting Category = "past_meetings"
	CategoryInsights    Category = "insights"
	CategoryMessages    Category = "messages"
	CategoryWriting     Category = "writing"
	CategoryPeople      Category = "people"
	CategoryRelays      Category = "relays"
	CategoryNotetaker   Category = "notetaker"
	CategoryRecording   Category = "recording"
	CategoryTasks       Category = "tasks"
	CategoryNotes       Category = "notes"
	CategorySession     Category = "session"
	CategoryVoice       Category = "voice"
	CategoryDisplay     Category = "display"
	CategoryDebug       Category = "debug"
)

// Property describes one parameter in a tool schema. Compact, when set, is
// the token-reduced description substituted for voice-bound payloads.
type Property struct {
	Type        string
	Description string
	Compact     string
	Enum        []string
	Items       *Property
	Properties  map[string]*Property
}

// Schema is a tool's object parameter schema.
type Schema struct {
	Properties map[string]*Property
	Required   []string
}

// Tool is one immutable catalog entry. Defined at init, never mutated.
type Tool struct {
	Name        string
	Description string
	Compact     string
	Category    Category
	Risk        RiskLevel
	ClientOnly  bool
	Examples    []string
	Schema      Schema
}

// WireTool is the provider-facing function definition. Help metadata and
// compact-description variants never appear in this shape.
type WireTool struct {
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Wire renders the provider wire form. When compact is true, token-reduced
// descriptions replace the full ones wherever a compact variant exists.
func (t *Tool) Wire(compact bool) *WireTool {
	desc := t.Description
	if compact && t.Compact != "" {
		desc = t.Compact
	}

	params := map[string]any{
		"type":       "object",
		"properties": wireProperties(t.Schema.Properties, compact),
	}
	if len(t.Schema.Required) > 0 {
		params["required"] = t.Schema.Required
	}

	return &WireTool{
		Type:        "function",
		Name:        t.Name,
		Description: desc,
		Parameters:  params,
	}
}

func wireProperties(props map[string]*Property, compact bool) map[string]any {
	out := make(map[string]any, len(props))
	for name, p := range props {
		out[name] = wireProperty(p, compact)
	}
	return out
}

func wireProperty(p *Property, compact bool) map[string]any {
	desc := p.Description
	if compact && p.Compact != "" {
		desc = p.Compact
	}

	out := map[string]any{"type": p.Type}
	if desc != "" {
		out["description"] = desc
	}
	if len(p.Enum) > 0 {
		out["enum"] = p.Enum
	}
	if p.Items != nil {
		out["items"] = wireProperty(p.Items, compact)
	}
	if len(p.Properties) > 0 {
		out["properties"] = wireProperties(p.Properties, compact)
	}
	return out
}

var byName = map[string]*Tool{}

func register(tools ...*Tool) {
	for _, t := range tools {
		if _, dup := byName[t.Name]; dup {
			panic("catalog: duplicate tool " + t.Name)
		}
		byName[t.Name] = t
	}
}

// Lookup returns the catalog entry for name, or nil.
func Lookup(name string) *Tool {
	return byName[name]
}

// All returns every catalog entry sorted by name.
func All() []*Tool {
	out := make([]*Tool, 0, len(byName))
	for _, t := range byName {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ValidSessionType reports whether s is a recognized session type.
func ValidSessionType(s SessionType) bool {
	switch s {
	case SessionAboutMe, SessionDailyDebrief, SessionQuickAsk, SessionDayPrep,
		SessionEventContext, SessionRelayLanding, SessionRelayManager,
		SessionRelayConvo, SessionGeneral, SessionDigest, SessionDraft,
		SessionDiscoverTour, SessionChatContext, SessionChatCatchup:
		return true
	}
	return false
}

// SessionDisplayName returns the human-facing label for a session type,
// used by the help surface.
func SessionDisplayName(s SessionType) string {
	if name, ok := sessionDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

var sessionDisplayNames = map[SessionType]string{
	SessionAboutMe:      "About Me",
	SessionDailyDebrief: "Daily Debrief",
	SessionQuickAsk:     "Quick Ask",
	SessionDayPrep:      "Day Prep",
	SessionEventContext: "Meeting Context",
	SessionRelayLanding: "Relay Results",
	SessionRelayManager: "Relay Manager",
	SessionRelayConvo:   "Relay Conversation",
	SessionGeneral:      "Assistant",
	SessionDigest:       "Digest",
	SessionDraft:        "Draft",
	SessionDiscoverTour: "Discover Zunou",
	SessionChatContext:  "Chat Context",
	SessionChatCatchup:  "Chat Catchup",
}
