// ABOUTME: Session-control, display, voice-tuning, and delegation tools.
// ABOUTME: Most execute in the client UI and are flagged ClientOnly.

package catalog

func init() {
	register(
		// Session control (client runtime)
		&Tool{
			Name:        "end_session",
			Description: "End the current session. Set should_save when the conversation produced anything worth keeping.",
			Compact:     "End the session.",
			Category:    CategorySession,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"should_save": {Type: "boolean", Description: "Whether to save the session summary."},
					"reason":      {Type: "string", Description: "Optional reason, e.g. user said goodbye."},
				},
			},
		},
		&Tool{
			Name:        "confirm_pending_action",
			Description: "Confirm the action currently awaiting user approval in the confirmation dialog. Must be called when the user approves verbally; acknowledging in speech alone does nothing.",
			Compact:     "Confirm the pending action dialog.",
			Category:    CategorySession,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema:      Schema{Properties: map[string]*Property{}},
		},
		&Tool{
			Name:        "cancel_pending_action",
			Description: "Cancel the action currently awaiting user approval. Must be called when the user declines; the dialog stays open until one of confirm/cancel is called.",
			Compact:     "Cancel the pending action dialog.",
			Category:    CategorySession,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema:      Schema{Properties: map[string]*Property{}},
		},
		&Tool{
			Name:        "modify_pending_action",
			Description: "Modify the pending action's parameters before confirmation, per the user's correction.",
			Compact:     "Modify the pending action before confirming.",
			Category:    CategorySession,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"changes": {Type: "string", Description: "Description of the requested change."},
				},
				Required: []string{"changes"},
			},
		},
		&Tool{
			Name:        "delegate_to_text_agent",
			Description: "Hand the current request to the text agent with full context, for work better done in the chat surface.",
			Compact:     "Hand off to the text agent.",
			Category:    CategorySession,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"request": {Type: "string", Description: "What the text agent should do."},
				},
				Required: []string{"request"},
			},
		},

		// Display (client UI)
		&Tool{
			Name:        "show_events",
			Description: "Display events from the current session context in the visual events panel. Only refs from the most recent lookup are valid.",
			Compact:     "Display looked-up events visually.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"event_refs": {Type: "array", Description: "Event refs from the current lookup.", Items: &Property{Type: "string"}},
				},
				Required: []string{"event_refs"},
			},
		},
		&Tool{
			Name:        "show_past_events",
			Description: "Display past meetings in the visual panel.",
			Compact:     "Display past meetings visually.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"event_refs": {Type: "array", Description: "Past event refs from the current lookup.", Items: &Property{Type: "string"}},
				},
				Required: []string{"event_refs"},
			},
		},
		&Tool{
			Name:        "show_tasks",
			Description: "Display tasks in the visual tasks panel.",
			Compact:     "Display tasks visually.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"task_refs": {Type: "array", Description: "Task refs from the current lookup.", Items: &Property{Type: "string"}},
				},
				Required: []string{"task_refs"},
			},
		},
		&Tool{
			Name:        "show_notes",
			Description: "Display notes in the visual notes panel.",
			Compact:     "Display notes visually.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"note_refs": {Type: "array", Description: "Note refs from the current lookup.", Items: &Property{Type: "string"}},
				},
				Required: []string{"note_refs"},
			},
		},
		&Tool{
			Name:        "show_contacts",
			Description: "Display people from a lookup in the visual contacts panel.",
			Compact:     "Display contacts visually.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"contact_refs": {Type: "array", Description: "Contact refs from the current lookup.", Items: &Property{Type: "string"}},
				},
				Required: []string{"contact_refs"},
			},
		},
		&Tool{
			Name:        "show_insights",
			Description: "Display insights in the visual insights panel.",
			Compact:     "Display insights visually.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"insight_refs": {Type: "array", Description: "Insight refs from the current lookup.", Items: &Property{Type: "string"}},
				},
				Required: []string{"insight_refs"},
			},
		},
		&Tool{
			Name:        "show_relays",
			Description: "Display relays in the visual relays panel. Relays are not tasks; never use show_tasks for them.",
			Compact:     "Display relays visually.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_refs": {Type: "array", Description: "Relay refs from the current lookup.", Items: &Property{Type: "string"}},
				},
				Required: []string{"relay_refs"},
			},
		},
		&Tool{
			Name:        "show_relay",
			Description: "Display one relay's detail view, including thread statuses and insights.",
			Compact:     "Display one relay's detail view.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"relay_ref": {Type: "string", Description: "Relay ref from the current lookup."},
				},
				Required: []string{"relay_ref"},
			},
		},
		&Tool{
			Name:        "display_html_message",
			Description: "Render a rich HTML block in the chat surface, for formatted summaries the plain transcript can't show.",
			Compact:     "Render a rich HTML block.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"html": {Type: "string", Description: "Sanitized HTML fragment to render."},
				},
				Required: []string{"html"},
			},
		},
		&Tool{
			Name:        "close_modal",
			Description: "Close the currently open modal or panel.",
			Compact:     "Close the open modal.",
			Category:    CategoryDisplay,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema:      Schema{Properties: map[string]*Property{}},
		},

		// Recording (client runtime)
		&Tool{
			Name:        "start_recording",
			Description: "Start an in-person meeting recording on the device.",
			Compact:     "Start a device recording.",
			Category:    CategoryRecording,
			Risk:        RiskMedium,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"title": {Type: "string", Description: "Optional recording title."},
				},
			},
		},
		&Tool{
			Name:        "stop_recording",
			Description: "Stop the active device recording and queue it for transcription.",
			Compact:     "Stop the device recording.",
			Category:    CategoryRecording,
			Risk:        RiskMedium,
			ClientOnly:  true,
			Schema:      Schema{Properties: map[string]*Property{}},
		},

		// Voice tuning (voice agent only)
		&Tool{
			Name:        "adjust_speaking_pace",
			Description: "Adjust how fast the agent speaks for the rest of the session.",
			Compact:     "Adjust speaking pace.",
			Category:    CategoryVoice,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"pace": {Type: "string", Description: "Requested pace.", Enum: []string{"slower", "normal", "faster"}},
				},
				Required: []string{"pace"},
			},
		},
		&Tool{
			Name:        "adjust_speaking_style",
			Description: "Adjust the agent's speaking style (more formal, more casual, more concise).",
			Compact:     "Adjust speaking style.",
			Category:    CategoryVoice,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"style": {Type: "string", Description: "Requested style adjustment."},
				},
				Required: []string{"style"},
			},
		},
		&Tool{
			Name:        "report_audio_quality_issue",
			Description: "Report that the user's audio is degraded (choppy, clipped, heavy background noise) so the client can surface diagnostics.",
			Compact:     "Report degraded user audio.",
			Category:    CategoryVoice,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"issue": {Type: "string", Description: "What was heard.", Enum: []string{"choppy", "clipping", "background_noise", "echo", "silence"}},
				},
				Required: []string{"issue"},
			},
		},
		&Tool{
			Name:        "request_text_input",
			Description: "Ask the client to open a text field when the user needs to provide something unspeakable, like an exact email address.",
			Compact:     "Request typed input from the user.",
			Category:    CategoryVoice,
			Risk:        RiskLow,
			ClientOnly:  true,
			Schema: Schema{
				Properties: map[string]*Property{
					"prompt": {Type: "string", Description: "What to ask the user to type."},
				},
				Required: []string{"prompt"},
			},
		},

		// Debug
		&Tool{
			Name:        "report_issue",
			Description: "File a diagnostic report about agent misbehavior, attached to the current session.",
			Compact:     "File a diagnostic report.",
			Category:    CategoryDebug,
			Risk:        RiskLow,
			Schema: Schema{
				Properties: map[string]*Property{
					"description": {Type: "string", Description: "What went wrong."},
				},
				Required: []string{"description"},
			},
		},
	)
}

// DelegateAction is the synthetic tool appended to hybrid voice sessions.
// It is the only path from the voice agent to the delegated catalog and is
// never part of the registered catalog itself.
var DelegateAction = &Tool{
	Name:        "delegate_action",
	Description: "Delegate an action to the text agent when no direct tool fits. Name the exact tool if known, otherwise describe the action and pick the closest category.",
	Compact:     "Delegate an action to the text agent.",
	Category:    CategorySession,
	Risk:        RiskLow,
	Schema: Schema{
		Properties: map[string]*Property{
			"tool_name": {Type: "string", Description: "Exact delegated tool to call, when known."},
			"action":    {Type: "string", Description: "Plain-language description of what to do."},
			"category":  {Type: "string", Description: "Closest capability category from the delegated-actions digest."},
			"entities": {
				Type:        "object",
				Description: "Session entities the action references (refs and their data).",
			},
			"urgency": {Type: "string", Description: "How urgent the action is.", Enum: []string{"low", "normal", "high"}},
		},
		Required: []string{"action", "category"},
	},
}
