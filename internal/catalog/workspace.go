// ABOUTME: Tasks, notes, people, messaging, and writing tools.
// ABOUTME: Lookups feed session refs; mutating tools carry medium/high risk.

package catalog

func init() {
	register(
		// Tasks
		&Tool{
			Name:        "lookup_tasks",
			Description: "Look up the user's tasks, optionally filtered by status, priority, or due timeframe.",
			Compact:     "Look up tasks with optional filters.",
			Category:    CategoryTasks,
			Risk:        RiskLow,
			Examples:    []string{"What's on my task list?", "Anything overdue?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"status":    {Type: "string", Description: "Filter by status.", Enum: []string{"open", "in_progress", "done"}},
					"priority":  {Type: "string", Description: "Filter by priority.", Enum: []string{"low", "medium", "high"}},
					"timeframe": {Type: "string", Description: "Optional due-date timeframe, e.g. \"this week\"."},
				},
			},
		},
		&Tool{
			Name:        "create_task",
			Description: "Create a task for the user. Use immediately when the user states an action item; do not just acknowledge.",
			Compact:     "Create a task.",
			Category:    CategoryTasks,
			Risk:        RiskMedium,
			Examples:    []string{"Add 'review contract' to my tasks"},
			Schema: Schema{
				Properties: map[string]*Property{
					"title":    {Type: "string", Description: "Task title."},
					"due":      {Type: "string", Description: "Optional due date, ISO 8601."},
					"priority": {Type: "string", Description: "Optional priority.", Enum: []string{"low", "medium", "high"}},
					"notes":    {Type: "string", Description: "Optional details."},
				},
				Required: []string{"title"},
			},
		},
		&Tool{
			Name:        "update_task",
			Description: "Update a task's fields by task_id from a lookup result.",
			Compact:     "Update a task by task_id.",
			Category:    CategoryTasks,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"task_id":  {Type: "string", Description: "Task id from a lookup result."},
					"title":    {Type: "string", Description: "New title."},
					"due":      {Type: "string", Description: "New due date, ISO 8601."},
					"priority": {Type: "string", Description: "New priority.", Enum: []string{"low", "medium", "high"}},
					"status":   {Type: "string", Description: "New status.", Enum: []string{"open", "in_progress", "done"}},
				},
				Required: []string{"task_id"},
			},
		},
		&Tool{
			Name:        "complete_task",
			Description: "Mark a task complete by task_id.",
			Compact:     "Complete a task by task_id.",
			Category:    CategoryTasks,
			Risk:        RiskMedium,
			Examples:    []string{"Check off the expense report"},
			Schema: Schema{
				Properties: map[string]*Property{
					"task_id": {Type: "string", Description: "Task id from a lookup result."},
				},
				Required: []string{"task_id"},
			},
		},

		// Notes
		&Tool{
			Name:        "lookup_notes",
			Description: "Search the user's notes by text or timeframe.",
			Compact:     "Search notes.",
			Category:    CategoryNotes,
			Risk:        RiskLow,
			Examples:    []string{"Find my notes about onboarding"},
			Schema: Schema{
				Properties: map[string]*Property{
					"search":    {Type: "string", Description: "Text to search for."},
					"timeframe": {Type: "string", Description: "Optional timeframe filter."},
				},
			},
		},
		&Tool{
			Name:        "create_note",
			Description: "Create a note with a title and body.",
			Compact:     "Create a note.",
			Category:    CategoryNotes,
			Risk:        RiskMedium,
			Examples:    []string{"Note that the vendor call moved to Q3"},
			Schema: Schema{
				Properties: map[string]*Property{
					"title": {Type: "string", Description: "Note title."},
					"body":  {Type: "string", Description: "Note body."},
				},
				Required: []string{"body"},
			},
		},

		// People
		&Tool{
			Name:        "lookup_org_members",
			Description: "Search the user's organization directory for internal team members. Returns exact emails; may include a note field when only fuzzy matches were found.",
			Compact:     "Search the org directory for internal people.",
			Category:    CategoryPeople,
			Risk:        RiskLow,
			Examples:    []string{"Find Kenneth in my org"},
			Schema: Schema{
				Properties: map[string]*Property{
					"search": {Type: "string", Description: "Name or partial name to search for."},
				},
				Required: []string{"search"},
			},
		},
		&Tool{
			Name:        "lookup_contacts",
			Description: "Search the user's external contacts (clients, vendors, partners). Returns exact emails; may include a note field when only fuzzy matches were found.",
			Compact:     "Search external contacts.",
			Category:    CategoryPeople,
			Risk:        RiskLow,
			Examples:    []string{"Do I have a contact named Alvarez?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"search": {Type: "string", Description: "Name or partial name to search for."},
				},
				Required: []string{"search"},
			},
		},
		&Tool{
			Name:        "create_contact",
			Description: "Save a new external contact for future use.",
			Compact:     "Save a new contact.",
			Category:    CategoryPeople,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"name":  {Type: "string", Description: "Contact's full name."},
					"email": {Type: "string", Description: "Contact's email address, confirmed with the user."},
					"notes": {Type: "string", Description: "Optional relationship notes."},
				},
				Required: []string{"name", "email"},
			},
		},

		// Messages
		&Tool{
			Name:        "lookup_messages",
			Description: "Search recent direct messages and channel mentions involving the user.",
			Compact:     "Search recent messages.",
			Category:    CategoryMessages,
			Risk:        RiskLow,
			Examples:    []string{"Did Sarah reply about the deck?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"search":    {Type: "string", Description: "Text or person to search for."},
					"timeframe": {Type: "string", Description: "Optional timeframe filter."},
				},
			},
		},
		&Tool{
			Name:        "send_message",
			Description: "Send a direct message to a person. The recipient must come from lookup_org_members or lookup_contacts, confirmed if the match was fuzzy.",
			Compact:     "Send a DM to a looked-up person.",
			Category:    CategoryMessages,
			Risk:        RiskHigh,
			Examples:    []string{"Message Dana that I'm running late"},
			Schema: Schema{
				Properties: map[string]*Property{
					"recipient_id": {Type: "string", Description: "Recipient id from a people lookup."},
					"body":         {Type: "string", Description: "Message text."},
				},
				Required: []string{"recipient_id", "body"},
			},
		},
		&Tool{
			Name:        "create_dm",
			Description: "Open a direct-message conversation with a looked-up person without sending anything yet.",
			Compact:     "Open a DM conversation.",
			Category:    CategoryMessages,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"recipient_id": {Type: "string", Description: "Recipient id from a people lookup."},
				},
				Required: []string{"recipient_id"},
			},
		},

		// Writing
		&Tool{
			Name:        "draft_content",
			Description: "Draft written content (email, message, summary, agenda) from instructions. Returns the draft for review; nothing is sent.",
			Compact:     "Draft written content for review.",
			Category:    CategoryWriting,
			Risk:        RiskLow,
			Examples:    []string{"Draft a follow-up email to the vendor"},
			Schema: Schema{
				Properties: map[string]*Property{
					"task_type":    {Type: "string", Description: "Kind of artifact to draft.", Enum: []string{"email", "message", "summary", "agenda", "other"}},
					"instructions": {Type: "string", Description: "What the draft should say."},
					"recipient":    {Type: "string", Description: "Optional recipient name for tone."},
					"subject":      {Type: "string", Description: "Optional subject line (email drafts)."},
				},
				Required: []string{"task_type", "instructions"},
			},
		},
		&Tool{
			Name:        "summarize_thread",
			Description: "Summarize a message thread or document the user references.",
			Compact:     "Summarize a referenced thread.",
			Category:    CategoryWriting,
			Risk:        RiskLow,
			Schema: Schema{
				Properties: map[string]*Property{
					"thread_id": {Type: "string", Description: "Thread id from a message lookup."},
				},
				Required: []string{"thread_id"},
			},
		},
	)
}
