// ABOUTME: Shared agent rules injected into every session prompt.
// ABOUTME: Sorted critical-first; rules apply per agent persona.

package prompt

import (
	"sort"
	"strings"

	"github.com/2389/zunou-proxy/internal/catalog"
)

type rulePriority int

const (
	priorityCritical rulePriority = iota
	priorityImportant
	priorityGuideline
)

type agentRule struct {
	ID       string
	Title    string
	Priority rulePriority
	Agents   []catalog.AgentType
	Content  string
}

func (r agentRule) appliesTo(agent catalog.AgentType) bool {
	for _, a := range r.Agents {
		if a == agent {
			return true
		}
	}
	return false
}

var bothAgents = []catalog.AgentType{catalog.AgentVoice, catalog.AgentText}

var sharedRules = []agentRule{
	{
		ID: "attendee_email_handling", Title: "ATTENDEE EMAIL HANDLING",
		Priority: priorityCritical, Agents: bothAgents,
		Content: `- NEVER guess or fabricate email addresses, and never use placeholder emails
- When adding someone to a meeting, search BOTH lookup_org_members and lookup_contacts in parallel
- Use the EXACT email returned from the lookup; if found in both sources, ask which one they meant
- If not found in either, ask the user to spell out the email, repeat it back to confirm, and offer create_contact
- Wrong emails invite strangers to private meetings`,
	},
	{
		ID: "confirm_fuzzy_matches", Title: "CONFIRM PARTIAL/FUZZY MATCHES BEFORE ACTION",
		Priority: priorityCritical, Agents: bothAgents,
		Content: `- When a people lookup returns a partial or fuzzy match (the response carries a "note" field), you MUST confirm with the user before using that person for ANY action
- This applies to sending messages, creating events, adding attendees, creating DMs, and assigning tasks
- Proceed only AFTER the user confirms the correct person`,
	},
	{
		ID: "event_id_accuracy", Title: "EVENT ID AND DATA ACCURACY",
		Priority: priorityCritical, Agents: bothAgents,
		Content: `- NEVER fabricate event IDs; only use event_id values returned from function calls
- After any lookup, ALWAYS communicate the actual results: counts, names, or an explicit "none found"
- Use the event_name from the response, not your own interpretation`,
	},
	{
		ID: "event_refs_date_scoped", Title: "EVENT REFS ARE DATE-SCOPED",
		Priority: priorityCritical, Agents: bothAgents,
		Content: `- Event refs (event_1, event_2, ...) are only valid for the date range they were queried for
- When the user switches dates, make a NEW lookup first and use the new refs
- If show_events displays fewer events than expected, the refs are stale: make a fresh lookup`,
	},
	{
		ID: "always_query_full_details", Title: "ALWAYS QUERY FOR FULL DETAILS",
		Priority: priorityCritical, Agents: bothAgents,
		Content: `- Initial past-meeting lookups return limited summary data; summary flags may be inaccurate
- For action items, takeaways, or transcripts, call the specific detail lookup; it is the only reliable source
- Check available_data counts and fetch details when counts are nonzero, then answer with the actual data`,
	},
	{
		ID: "list_all_events", Title: "LISTING EVENTS VERBALLY",
		Priority: priorityCritical, Agents: []catalog.AgentType{catalog.AgentVoice},
		Content: `- When verbally listing events, mention ALL events returned; never skip any to be concise
- State the count first, then each event with at least its name and time
- Skipping events causes users to miss meetings`,
	},
	{
		ID: "progressive_search", Title: "PROGRESSIVE SEARCH STRATEGY",
		Priority: priorityCritical, Agents: bothAgents,
		Content: `When a first search returns nothing, do not give up. Broaden progressively:
1. Exact phrase first, then individual key terms
2. Search by person name in BOTH lookup_org_members and lookup_contacts
3. Widen the timeframe (week instead of day)
4. As a fallback, list everything in the timeframe and scan it
5. Only after exhausting these, ask the user for clarification
The goal is to FIND what the user wants, not to fail quickly.`,
	},
	{
		ID: "use_visual_display_tools", Title: "USE VISUAL DISPLAY TOOLS",
		Priority: priorityImportant, Agents: []catalog.AgentType{catalog.AgentText},
		Content: `- Use the specific show_* tool for each entity type; relays go to show_relays, never show_tasks
- Don't list many items in plain text; show them visually, then briefly confirm what you displayed`,
	},
	{
		ID: "scheduling_conflicts", Title: "SCHEDULING CONFLICT HANDLING",
		Priority: priorityImportant, Agents: bothAgents,
		Content: `- Mention scheduling_conflicts or conflict_warning fields proactively
- Before scheduling a new meeting, lookup_events to check the slot; if it overlaps, warn clearly and offer alternatives`,
	},
	{
		ID: "proactive_behavior", Title: "PROACTIVE BEHAVIOR",
		Priority: priorityGuideline, Agents: bothAgents,
		Content: `- When the user mentions wanting something done, DO IT with a function call, then confirm
- Flag conflicts, overdue items, and missing agendas without being asked
- Suggest tasks when action items come up in conversation`,
	},
}

// FormatRules renders the shared rules for one agent persona, sorted
// critical, important, then guideline, with critical titles flagged.
func FormatRules(agent catalog.AgentType) string {
	rules := make([]agentRule, 0, len(sharedRules))
	for _, r := range sharedRules {
		if r.appliesTo(agent) {
			rules = append(rules, r)
		}
	}
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority < rules[j].Priority })

	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		title := r.Title
		if r.Priority == priorityCritical {
			title = "⚠️ CRITICAL - " + title
		}
		parts = append(parts, title+":\n"+r.Content)
	}
	return strings.Join(parts, "\n\n")
}
