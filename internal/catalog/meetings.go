// ABOUTME: Past-meeting tools: transcripts, actionables, takeaways, analytics.
// ABOUTME: Summary lookups return limited data; detail lookups are authoritative.

package catalog

func init() {
	register(
		&Tool{
			Name:        "lookup_past_events",
			Description: "Look up past meetings for a timeframe. Returns summary rows with an available_data field (actionable_count, takeaway_count, transcript_lines); use the specific detail lookups for full content.",
			Compact:     "Look up past meetings. Summary only; use detail lookups for content.",
			Category:    CategoryPastMeeting,
			Risk:        RiskLow,
			Examples:    []string{"What meetings did I have yesterday?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"timeframe": {Type: "string", Description: "Timeframe to query, e.g. \"yesterday\", \"last week\"."},
					"search":    {Type: "string", Description: "Optional text filter on names and attendees."},
				},
				Required: []string{"timeframe"},
			},
		},
		&Tool{
			Name:        "lookup_meeting_actionables",
			Description: "Fetch the action items captured for a past meeting. The only reliable source for actionables; summary flags may be stale.",
			Compact:     "Fetch action items for a past meeting.",
			Category:    CategoryPastMeeting,
			Risk:        RiskLow,
			Examples:    []string{"What were the action items from the design review?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Past event id from a lookup result."},
				},
				Required: []string{"event_id"},
			},
		},
		&Tool{
			Name:        "lookup_meeting_takeaways",
			Description: "Fetch key takeaways and decisions recorded for a past meeting.",
			Compact:     "Fetch takeaways for a past meeting.",
			Category:    CategoryPastMeeting,
			Risk:        RiskLow,
			Examples:    []string{"What did we decide in Monday's standup?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Past event id from a lookup result."},
				},
				Required: []string{"event_id"},
			},
		},
		&Tool{
			Name:        "lookup_meeting_transcript",
			Description: "Fetch the transcript for a past meeting, optionally filtered to a speaker or search phrase.",
			Compact:     "Fetch a past meeting's transcript.",
			Category:    CategoryPastMeeting,
			Risk:        RiskLow,
			Examples:    []string{"What did Priya say about the budget?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Past event id from a lookup result."},
					"speaker":  {Type: "string", Description: "Optional speaker name filter."},
					"search":   {Type: "string", Description: "Optional phrase to search for."},
				},
				Required: []string{"event_id"},
			},
		},
		&Tool{
			Name:        "lookup_meeting_analytics",
			Description: "Fetch talk-time and participation analytics for a past meeting.",
			Compact:     "Fetch participation analytics for a past meeting.",
			Category:    CategoryPastMeeting,
			Risk:        RiskLow,
			Examples:    []string{"How much did I talk in the retro?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Past event id from a lookup result."},
				},
				Required: []string{"event_id"},
			},
		},
		&Tool{
			Name:        "lookup_insights",
			Description: "Search insights captured across meetings and conversations, optionally scoped by topic or timeframe.",
			Compact:     "Search captured insights.",
			Category:    CategoryInsights,
			Risk:        RiskLow,
			Examples:    []string{"What have I learned about the Delta account?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"search":    {Type: "string", Description: "Topic or phrase to search for."},
					"timeframe": {Type: "string", Description: "Optional timeframe filter."},
				},
			},
		},
		&Tool{
			Name:        "invite_notetaker",
			Description: "Invite the notetaker bot to join a meeting and capture a transcript.",
			Compact:     "Invite the notetaker to a meeting.",
			Category:    CategoryNotetaker,
			Risk:        RiskMedium,
			Examples:    []string{"Have the notetaker join my 2pm"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Event id from a lookup result."},
				},
				Required: []string{"event_id"},
			},
		},
		&Tool{
			Name:        "remove_notetaker",
			Description: "Remove the notetaker bot from a meeting it was invited to.",
			Compact:     "Remove the notetaker from a meeting.",
			Category:    CategoryNotetaker,
			Risk:        RiskMedium,
			Examples:    []string{"Take the notetaker off the board meeting"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Event id from a lookup result."},
				},
				Required: []string{"event_id"},
			},
		},
	)
}
