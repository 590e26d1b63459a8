// ABOUTME: Relay tools: owner-side management plus the minimal set the agent
// ABOUTME: uses while conducting a relay conversation with a recipient.

package catalog

func init() {
	register(
		// Owner-side management
		&Tool{
			Name:        "create_relay",
			Description: "Create a relay: an autonomous conversation the agent conducts with one or more recipients to gather information on the user's behalf.",
			Compact:     "Create a relay to gather info from recipients.",
			Category:    CategoryRelays,
			Risk:        RiskHigh,
			Examples:    []string{"Ask the team what's blocking the release"},
			Schema: Schema{
				Properties: map[string]*Property{
					"objective":  {Type: "string", Description: "What the relay should find out or accomplish."},
					"context":    {Type: "string", Description: "Background the agent may share with recipients."},
					"recipients": {Type: "array", Description: "Recipient ids from people lookups.", Items: &Property{Type: "string"}},
					"completion_mode": {
						Type:        "string",
						Description: "When the relay counts as complete: every thread, the first, or a majority.",
						Enum:        []string{"all", "any", "majority"},
					},
					"thread_visibility": {
						Type:        "string",
						Description: "Whether recipients can see each other's progress.",
						Enum:        []string{"private", "visible"},
					},
				},
				Required: []string{"objective", "recipients"},
			},
		},
		&Tool{
			Name:        "lookup_relays",
			Description: "Look up the user's relays and their thread statuses, optionally filtered by status.",
			Compact:     "Look up relays and thread statuses.",
			Category:    CategoryRelays,
			Risk:        RiskLow,
			Examples:    []string{"How's my release-blocker relay going?"},
			Schema: Schema{
				Properties: map[string]*Property{
					"status": {Type: "string", Description: "Optional relay status filter.", Enum: []string{"active", "complete", "cancelled"}},
				},
			},
		},
		&Tool{
			Name:        "cancel_relay",
			Description: "Cancel a relay and stop all outstanding threads.",
			Compact:     "Cancel a relay.",
			Category:    CategoryRelays,
			Risk:        RiskHigh,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_id": {Type: "string", Description: "Relay id from a lookup result."},
				},
				Required: []string{"relay_id"},
			},
		},
		&Tool{
			Name:        "add_relay_recipient",
			Description: "Add a recipient to an existing relay, spawning a new pending thread.",
			Compact:     "Add a recipient to a relay.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_id":     {Type: "string", Description: "Relay id from a lookup result."},
					"recipient_id": {Type: "string", Description: "Recipient id from a people lookup."},
				},
				Required: []string{"relay_id", "recipient_id"},
			},
		},
		&Tool{
			Name:        "close_relay_thread",
			Description: "Close one recipient's thread without waiting for a response.",
			Compact:     "Close a relay thread.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_id":  {Type: "string", Description: "Relay id."},
					"thread_id": {Type: "string", Description: "Thread id within the relay."},
				},
				Required: []string{"relay_id", "thread_id"},
			},
		},
		&Tool{
			Name:        "update_relay_context",
			Description: "Append an owner note to a relay so future recipient turns see the update.",
			Compact:     "Append owner context to a relay.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_id": {Type: "string", Description: "Relay id."},
					"note":     {Type: "string", Description: "Context note to append."},
				},
				Required: []string{"relay_id", "note"},
			},
		},
		&Tool{
			Name:        "extend_thread_expiry",
			Description: "Extend the deadline on a relay thread.",
			Compact:     "Extend a thread deadline.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_id":  {Type: "string", Description: "Relay id."},
					"thread_id": {Type: "string", Description: "Thread id within the relay."},
					"extend_by": {Type: "string", Description: "Duration to extend by, e.g. \"24h\"."},
				},
				Required: []string{"relay_id", "thread_id", "extend_by"},
			},
		},
		&Tool{
			Name:        "remove_thread_expiry",
			Description: "Remove the deadline from a relay thread entirely.",
			Compact:     "Remove a thread deadline.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_id":  {Type: "string", Description: "Relay id."},
					"thread_id": {Type: "string", Description: "Thread id within the relay."},
				},
				Required: []string{"relay_id", "thread_id"},
			},
		},
		&Tool{
			Name:        "send_thread_nudge",
			Description: "Send a reminder to a relay recipient who has not responded.",
			Compact:     "Nudge a relay recipient.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_id":  {Type: "string", Description: "Relay id."},
					"thread_id": {Type: "string", Description: "Thread id within the relay."},
					"message":   {Type: "string", Description: "Optional custom reminder text."},
				},
				Required: []string{"relay_id", "thread_id"},
			},
		},

		// Recipient-side conversation tools
		&Tool{
			Name:        "relay_log_insight",
			Description: "Record something the recipient shared that helps the relay's objective. Call as soon as useful information surfaces.",
			Compact:     "Record a useful insight from the recipient.",
			Category:    CategoryRelays,
			Risk:        RiskLow,
			Schema: Schema{
				Properties: map[string]*Property{
					"insight": {Type: "string", Description: "The information learned, in one or two sentences."},
				},
				Required: []string{"insight"},
			},
		},
		&Tool{
			Name:        "relay_add_question",
			Description: "Record a question the recipient asked that needs the owner's answer.",
			Compact:     "Record a question for the owner.",
			Category:    CategoryRelays,
			Risk:        RiskLow,
			Schema: Schema{
				Properties: map[string]*Property{
					"question": {Type: "string", Description: "The recipient's question."},
				},
				Required: []string{"question"},
			},
		},
		&Tool{
			Name:        "relay_mark_complete",
			Description: "Mark this thread complete with a summary of what was learned. Must be called before any goodbye when the objective is met.",
			Compact:     "Mark thread complete with a summary. Required before goodbye.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"summary": {Type: "string", Description: "What was learned, addressed to the owner."},
				},
				Required: []string{"summary"},
			},
		},
		&Tool{
			Name:        "relay_mark_partial",
			Description: "Mark this thread partially answered when the recipient will follow up later themselves. Not for referrals to someone else; use relay_redirect for that.",
			Compact:     "Mark thread partial (recipient will follow up). Not for referrals.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"summary":   {Type: "string", Description: "What was learned so far."},
					"follow_up": {Type: "string", Description: "When or how the recipient will follow up."},
				},
				Required: []string{"summary"},
			},
		},
		&Tool{
			Name:        "relay_redirect",
			Description: "Hand this thread off to the person the recipient named as the right one to answer. Look the person up first; carries a reason and optional summary forward.",
			Compact:     "Redirect the thread to a named person (look them up first).",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"recipient_id": {Type: "string", Description: "New recipient's id from a people lookup."},
					"reason":       {Type: "string", Description: "Why the current recipient referred them."},
					"summary":      {Type: "string", Description: "Optional summary of this conversation to carry forward."},
				},
				Required: []string{"recipient_id", "reason"},
			},
		},
		&Tool{
			Name:        "relay_decline",
			Description: "Record that the recipient declined to participate in the relay.",
			Compact:     "Record that the recipient declined.",
			Category:    CategoryRelays,
			Risk:        RiskMedium,
			Schema: Schema{
				Properties: map[string]*Property{
					"reason": {Type: "string", Description: "Optional stated reason."},
				},
			},
		},
	)
}
