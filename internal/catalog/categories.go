// ABOUTME: Help-category metadata: summaries, trigger phrases, display order.
// ABOUTME: Feeds the delegation digest and the /capabilities help surface.

package catalog

// CategoryInfo describes one help category for user-facing surfaces.
type CategoryInfo struct {
	Name    Category
	Title   string
	Summary string
	// Triggers are example phrases shown in the help modal and quoted in the
	// delegation digest so the model knows what maps to this category.
	Triggers []string
}

var categoryInfo = map[Category]*CategoryInfo{
	CategoryCalendar: {
		Name: CategoryCalendar, Title: "Calendar",
		Summary:  "Look up, create, and change calendar events; check availability and conflicts.",
		Triggers: []string{"what's on my calendar", "schedule a meeting", "move my 3pm"},
	},
	CategoryMeetingPrep: {
		Name: CategoryMeetingPrep, Title: "Meeting Prep",
		Summary:  "Agendas, prep notes, and attendee background for upcoming meetings.",
		Triggers: []string{"prep me for my next meeting", "who am I meeting with"},
	},
	CategoryPastMeeting: {
		Name: CategoryPastMeeting, Title: "Past Meetings",
		Summary:  "Transcripts, action items, takeaways, and analytics from past meetings.",
		Triggers: []string{"action items from the design review", "what did we decide"},
	},
	CategoryInsights: {
		Name: CategoryInsights, Title: "Insights",
		Summary:  "Search knowledge captured across meetings and conversations.",
		Triggers: []string{"what do I know about the Delta account"},
	},
	CategoryMessages: {
		Name: CategoryMessages, Title: "Messages",
		Summary:  "Search recent messages and send direct messages.",
		Triggers: []string{"message Dana that I'm running late", "did Sarah reply"},
	},
	CategoryWriting: {
		Name: CategoryWriting, Title: "Writing",
		Summary:  "Draft emails, messages, summaries, and agendas for review.",
		Triggers: []string{"draft a follow-up email", "summarize that thread"},
	},
	CategoryPeople: {
		Name: CategoryPeople, Title: "People",
		Summary:  "Find colleagues in the org directory and external contacts.",
		Triggers: []string{"find Kenneth's email", "add a new contact"},
	},
	CategoryRelays: {
		Name: CategoryRelays, Title: "Relays",
		Summary:  "Have the agent gather information from others on your behalf.",
		Triggers: []string{"ask the team what's blocking the release", "how's my relay going"},
	},
	CategoryNotetaker: {
		Name: CategoryNotetaker, Title: "Notetaker",
		Summary:  "Invite or remove the meeting notetaker bot.",
		Triggers: []string{"have the notetaker join my 2pm"},
	},
	CategoryRecording: {
		Name: CategoryRecording, Title: "Recording",
		Summary:  "Record in-person meetings on the device and get transcripts.",
		Triggers: []string{"start recording this meeting"},
	},
	CategoryTasks: {
		Name: CategoryTasks, Title: "Tasks",
		Summary:  "Look up, create, update, and complete tasks.",
		Triggers: []string{"what's on my task list", "add review contract to my tasks"},
	},
	CategoryNotes: {
		Name: CategoryNotes, Title: "Notes",
		Summary:  "Search and create notes.",
		Triggers: []string{"find my onboarding notes", "note that the call moved"},
	},
	CategorySession: {
		Name: CategorySession, Title: "Session",
		Summary:  "Session control: confirmations, hand-off, ending the session.",
		Triggers: []string{"never mind, cancel that"},
	},
	CategoryVoice: {
		Name: CategoryVoice, Title: "Voice",
		Summary:  "Speaking pace and style adjustments, audio diagnostics.",
		Triggers: []string{"slow down a little"},
	},
	CategoryDisplay: {
		Name: CategoryDisplay, Title: "Display",
		Summary:  "Visual panels for events, tasks, notes, relays, and contacts.",
		Triggers: []string{"show me those on screen"},
	},
	CategoryDebug: {
		Name: CategoryDebug, Title: "Diagnostics",
		Summary:  "Report agent misbehavior.",
		Triggers: []string{"report a problem"},
	},
}

// Info returns the metadata for a category, or nil for unknown categories.
func Info(c Category) *CategoryInfo {
	return categoryInfo[c]
}

// CategoryPriority is the fixed display order for the delegation digest and
// help surfaces. Highest-value categories come first so they survive any
// upstream truncation of the surrounding prompt.
var CategoryPriority = []Category{
	CategoryCalendar,
	CategoryMeetingPrep,
	CategoryPastMeeting,
	CategoryInsights,
	CategoryMessages,
	CategoryWriting,
	CategoryPeople,
	CategoryRelays,
	CategoryNotetaker,
	CategoryRecording,
	CategoryTasks,
	CategoryNotes,
}

// internalCategories are infrastructure groupings that never appear in the
// delegation digest: their tools are either client-only or session plumbing.
var internalCategories = map[Category]bool{
	CategorySession: true,
	CategoryVoice:   true,
	CategoryDisplay: true,
	CategoryDebug:   true,
}

// InternalCategory reports whether a category is excluded from the
// delegation digest.
func InternalCategory(c Category) bool {
	return internalCategories[c]
}

// RelayHelpCategories is the fixed category list shown in the help surface
// for relay sessions, which bypass the general access table.
var RelayHelpCategories = []Category{CategoryRelays, CategoryPeople, CategoryCalendar}
