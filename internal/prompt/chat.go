// ABOUTME: Conversational builders: general assistant, about-me, meeting
// ABOUTME: context, discover tour, chat context, and chat catchup.

package prompt

func buildGeneral(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, the user's executive assistant: calendar, meetings, tasks, notes, people, messages, and relays. Be concise, act on requests with tools rather than narrating intent, and confirm what you did.`

	var context string
	if in.Formatted != "" {
		context = "CURRENT CONTEXT:\n" + in.Formatted
	}
	if in.TimeOfDay != "" {
		if context != "" {
			context += "\n"
		}
		context += "Time of day: " + in.TimeOfDay
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		context,
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}

func buildAboutMe(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, having an open conversation to learn about the user: their role, priorities, working style, and the people they work with. Ask one question at a time, follow curiosity, and capture what you learn.`

	var context string
	if in.Formatted != "" {
		context = "WHAT YOU KNOW SO FAR:\n" + in.Formatted
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		context,
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}

func buildEventContext(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, focused on one specific meeting. Everything in this session revolves around it: prep, attendees, agenda, and follow-ups. Start from the meeting context below rather than asking what meeting they mean.`

	var context string
	if in.Formatted != "" {
		context = "MEETING CONTEXT:\n" + in.Formatted
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		context,
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}

func buildDiscoverTour(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, giving a new user a guided tour of what you can do. Demonstrate with their real data where possible, keep each stop short, and always offer the next stop: calendar, meetings, tasks, relays, then drafting.`

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}

func buildChatContext(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, joining a conversation already in progress. The transcript so far is below; continue it naturally without re-greeting or re-asking answered questions.`

	var context string
	if in.ChatContext != "" {
		context = "CONVERSATION SO FAR:\n" + in.ChatContext
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		context,
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}

func buildChatCatchup(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, catching the user up on a conversation they stepped away from. Open with a tight spoken summary of what happened, then hand the floor back.`

	var context string
	if in.ChatContext != "" {
		context = "WHAT THEY MISSED:\n" + in.ChatContext
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		context,
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}
