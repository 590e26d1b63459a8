// ABOUTME: Calendar and meeting tools: event lookup, creation, and context.
// ABOUTME: Event refs returned by lookups are date-scoped session handles.

package catalog

func init() {
	register(
		&Tool{
			Name:        "lookup_events",
			Description: "Look up calendar events for a timeframe. Returns event refs (event_1, event_2, ...) scoped to the queried date range, with names, times, attendees, and conflict warnings.",
			Compact:     "Look up calendar events for a timeframe. Returns date-scoped event refs.",
			Category:    CategoryCalendar,
			Risk:        RiskLow,
			Examples:    []string{"What's on my calendar today?", "Do I have anything Thursday afternoon?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"timeframe": {
						Type:        "string",
						Description: "Natural timeframe to query, e.g. \"today\", \"tomorrow\", \"this week\", or an ISO date.",
						Compact:     "Timeframe, e.g. \"today\" or an ISO date.",
					},
					"search": {
						Type:        "string",
						Description: "Optional text filter matched against event names and attendees.",
						Compact:     "Optional name/attendee filter.",
					},
				},
				Required: []string{"timeframe"},
			},
		},
		&Tool{
			Name:        "create_event",
			Description: "Create a calendar event. Attendee emails must come from lookup_org_members or lookup_contacts results, never guessed.",
			Compact:     "Create a calendar event. Attendee emails must come from lookups.",
			Category:    CategoryCalendar,
			Risk:        RiskMedium,
			Examples:    []string{"Schedule a call with Dana tomorrow at 2pm"},
			Schema: Schema{
				Properties: map[string]*Property{
					"title":     {Type: "string", Description: "Event title."},
					"start":     {Type: "string", Description: "Start time, ISO 8601."},
					"end":       {Type: "string", Description: "End time, ISO 8601."},
					"attendees": {Type: "array", Description: "Attendee email addresses.", Items: &Property{Type: "string"}},
					"location":  {Type: "string", Description: "Optional location or meeting link."},
				},
				Required: []string{"title", "start", "end"},
			},
		},
		&Tool{
			Name:        "update_event",
			Description: "Update an existing calendar event. Requires an event_id returned by a lookup; never a fabricated id.",
			Compact:     "Update an event by event_id from a lookup.",
			Category:    CategoryCalendar,
			Risk:        RiskHigh,
			Examples:    []string{"Move my 3pm to 4pm"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id":  {Type: "string", Description: "Event id from a lookup result."},
					"title":     {Type: "string", Description: "New title."},
					"start":     {Type: "string", Description: "New start time, ISO 8601."},
					"end":       {Type: "string", Description: "New end time, ISO 8601."},
					"attendees": {Type: "array", Description: "Replacement attendee email list.", Items: &Property{Type: "string"}},
				},
				Required: []string{"event_id"},
			},
		},
		&Tool{
			Name:        "delete_event",
			Description: "Delete a calendar event by event_id. Shows a confirmation dialog before anything is removed.",
			Compact:     "Delete an event by event_id (confirmed by the user first).",
			Category:    CategoryCalendar,
			Risk:        RiskHigh,
			Examples:    []string{"Cancel my dentist appointment"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Event id from a lookup result."},
				},
				Required: []string{"event_id"},
			},
		},
		&Tool{
			Name:        "check_availability",
			Description: "Check free/busy availability for the user and optional attendees over a timeframe.",
			Compact:     "Check free/busy for a timeframe.",
			Category:    CategoryCalendar,
			Risk:        RiskLow,
			Examples:    []string{"When am I free on Friday?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"timeframe": {Type: "string", Description: "Timeframe to check, e.g. \"friday\"."},
					"attendees": {Type: "array", Description: "Optional attendee emails to include.", Items: &Property{Type: "string"}},
				},
				Required: []string{"timeframe"},
			},
		},
		&Tool{
			Name:        "lookup_meeting_agenda",
			Description: "Fetch the agenda and prep notes for an upcoming meeting by event_id.",
			Compact:     "Fetch agenda and prep notes for an event_id.",
			Category:    CategoryMeetingPrep,
			Risk:        RiskLow,
			Examples:    []string{"What's the agenda for my next meeting?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Event id from a lookup result."},
				},
				Required: []string{"event_id"},
			},
		},
		&Tool{
			Name:        "lookup_attendee_context",
			Description: "Gather background on a meeting's attendees: recent interactions, shared meetings, open items.",
			Compact:     "Background on a meeting's attendees.",
			Category:    CategoryMeetingPrep,
			Risk:        RiskLow,
			Examples:    []string{"Who am I meeting with at 10?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"event_id": {Type: "string", Description: "Event id from a lookup result."},
				},
				Required: []string{"event_id"},
			},
		},
	)
}
