// ABOUTME: Shared prompt fragments: the fixed agent-identity block, the
// ABOUTME: language clause, and the delegated-capabilities wrapper.

package prompt

import (
	"fmt"
	"strings"
)

// AgentName is the assistant's fixed persona name.
const AgentName = "Zunou"

// identityBlock renders the fixed preamble every builder must prepend. The
// shape is a contract: clients and tests match it structurally.
func identityBlock(meta Meta) string {
	agentLabel := "Text Agent"
	if meta.Agent == "voice" {
		agentLabel = "Voice Agent"
	}
	version := meta.Version
	if version == "" {
		version = "local-dev"
	}
	build := meta.Build
	if build == "" {
		build = "unknown"
	}

	return fmt.Sprintf(`--- AGENT IDENTITY ---
Name: %s
Type: %s
Version: %s
Build: %s
Session: %s
Tools Available: %d
Model: %s
--- END IDENTITY ---`,
		AgentName, agentLabel, version, build, meta.Session, meta.ToolCount, meta.Model)
}

// languageClause renders the data-driven response-language instruction.
func languageClause(language string) string {
	if language == "" {
		language = "English"
	}
	return "Respond in " + language + "."
}

// delegatedSection wraps the capability digest for injection into a hybrid
// voice prompt. An empty digest yields an empty string so callers never
// render a bare header.
func delegatedSection(digest string) string {
	if digest == "" {
		return ""
	}
	return `--- DELEGATED ACTIONS ---
You have more capabilities than your direct tools. The actions below are
reachable through the delegate_action tool: name the exact tool when you know
it, otherwise describe the action in plain language and pick the closest
category. The text agent executes it and returns the result for you to speak.

` + digest + `
--- END DELEGATED ACTIONS ---`
}

// userSection renders the about-the-user block when context was supplied.
func userSection(userContext string) string {
	if userContext == "" {
		return ""
	}
	return "ABOUT THE USER:\n" + userContext
}

// joinSections assembles prompt parts, dropping empties, with blank lines
// between sections.
func joinSections(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimRight(p, "\n"))
		}
	}
	return strings.Join(kept, "\n\n")
}
