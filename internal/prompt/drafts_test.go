// ABOUTME: Tests for digest and draft builders: revision sentinel dispatch
// ABOUTME: and the email subject-line output convention.

package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/2389/zunou-proxy/internal/catalog"
)

func draftMeta() Meta {
	return testMeta(catalog.AgentText, catalog.SessionDraft)
}

func TestDigest_Toolless(t *testing.T) {
	in := &Input{Formatted: "three meeting transcripts"}
	prompt := buildDigest(in, testMeta(catalog.AgentText, catalog.SessionDigest))

	assert.Contains(t, prompt, "MATERIAL TO DIGEST:\nthree meeting transcripts")
	assert.Contains(t, prompt, "No tools are available in this session")
	// No shared tool rules in a toolless prompt.
	assert.NotContains(t, prompt, "ATTENDEE EMAIL HANDLING")
}

func TestDraft_NewContent(t *testing.T) {
	in := &Input{Draft: &DraftInput{
		TaskType:     "email",
		Instructions: "decline politely",
		Recipient:    "Dana",
		Subject:      "Re: offsite",
		Context:      "Dana asked about the offsite budget",
	}}
	prompt := buildDraft(in, draftMeta())

	assert.Contains(t, prompt, "DRAFTING TASK:")
	assert.Contains(t, prompt, "Type: email")
	assert.Contains(t, prompt, "Recipient: Dana")
	assert.Contains(t, prompt, "Subject: Re: offsite")
	assert.Contains(t, prompt, "Instructions: decline politely")
	assert.Contains(t, prompt, "REFERENCE CONTEXT:\nDana asked about the offsite budget")
	assert.Contains(t, prompt, "Output only the draft itself")
	assert.NotContains(t, prompt, "REVISION INSTRUCTIONS")
}

func TestDraft_NilInputDefaults(t *testing.T) {
	prompt := buildDraft(&Input{}, draftMeta())
	assert.Contains(t, prompt, "Type: other")
}

func TestDraft_SentinelFlipsToRevision(t *testing.T) {
	in := &Input{Draft: &DraftInput{
		TaskType:     "message",
		Instructions: "make it shorter",
		Context:      RevisionSentinel + ":\nHi Dana, long message here",
	}}
	prompt := buildDraft(in, draftMeta())

	assert.Contains(t, prompt, "REVISION INSTRUCTIONS:\nmake it shorter")
	assert.Contains(t, prompt, "COMPLETE revised draft")
	assert.NotContains(t, prompt, "DRAFTING TASK:")
	// Non-email revisions never get the subject-line convention.
	assert.NotContains(t, prompt, "SUBJECT: <the new subject line>")
}

func TestDraft_EmailRevisionSubjectConvention(t *testing.T) {
	in := &Input{Draft: &DraftInput{
		TaskType:     "email",
		Instructions: "change the subject to reflect the delay",
		Context:      RevisionSentinel + ":\nSubject: offsite\nBody here",
	}}
	prompt := buildDraft(in, draftMeta())

	assert.Contains(t, prompt, "SUBJECT: <the new subject line>\n---")
	assert.Contains(t, prompt, "begin your output with exactly these two lines")
}
