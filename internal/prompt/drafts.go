// ABOUTME: Content-generation builders: digest and draft sessions.
// ABOUTME: Draft runs in new-content or revision mode via a fixed sentinel.

package prompt

import "strings"

// RevisionSentinel marks a draft context as a revision of existing content.
// Clients embed it verbatim; its presence flips the builder into edit mode.
const RevisionSentinel = "CURRENT DRAFT TO REVISE"

func buildDigest(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, writing a concise digest of the provided material. Output plain prose the user can skim in under a minute. No tools are available in this session; do not reference any.`

	var material string
	if in.Formatted != "" {
		material = "MATERIAL TO DIGEST:\n" + in.Formatted
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		material,
	)
}

func buildDraft(in *Input, meta Meta) string {
	d := in.Draft
	if d == nil {
		d = &DraftInput{TaskType: "other"}
	}

	if strings.Contains(d.Context, RevisionSentinel) {
		return buildDraftRevision(in, d, meta)
	}
	return buildDraftNew(in, d, meta)
}

func buildDraftNew(in *Input, d *DraftInput, meta Meta) string {
	persona := `You are ` + AgentName + `, drafting written content for the user's review. Match the user's voice; nothing you produce is sent automatically.`

	var task strings.Builder
	task.WriteString("DRAFTING TASK:\n")
	task.WriteString("Type: " + d.TaskType + "\n")
	if d.Recipient != "" {
		task.WriteString("Recipient: " + d.Recipient + "\n")
	}
	if d.Subject != "" {
		task.WriteString("Subject: " + d.Subject + "\n")
	}
	task.WriteString("Instructions: " + d.Instructions)

	var context string
	if d.Context != "" {
		context = "REFERENCE CONTEXT:\n" + d.Context
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		task.String(),
		context,
		"Output only the draft itself, with no commentary before or after.",
	)
}

func buildDraftRevision(in *Input, d *DraftInput, meta Meta) string {
	persona := `You are ` + AgentName + `, revising an existing draft per the user's instructions. Apply the requested changes and keep everything else intact.`

	task := "REVISION INSTRUCTIONS:\n" + d.Instructions

	context := "REFERENCE CONTEXT:\n" + d.Context

	output := `OUTPUT FORMAT:
- Output the COMPLETE revised draft, never a diff or a summary of changes.`
	if d.TaskType == "email" {
		output += `
- If your revision changes the subject line, begin your output with exactly these two lines, then the body:
SUBJECT: <the new subject line>
---`
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		task,
		context,
		output,
	)
}
