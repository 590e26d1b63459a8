// ABOUTME: Voice wrapper: layers the audio-interaction protocol onto any
// ABOUTME: text builder (pacing, audio quality, confirmations, ending).

package prompt

import "github.com/2389/zunou-proxy/internal/catalog"

// voiceProtocol is the fixed audio-interaction block appended to every voice
// prompt. The confirmation and session-ending instructions map to real
// function calls the client depends on; the wording is load-bearing.
const voiceProtocol = `PACING & TONE:
- Speak naturally and conversationally; short sentences, no markdown, no lists read as bullets
- Numbers, dates, and times are spoken out ("nine forty-five", not "9:45")
- Pause after questions; let the user finish before responding

AUDIO FOCUS:
- Stay on task despite background noise; if you catch only a fragment, ask a targeted clarifying question instead of guessing
- Ignore side conversations that are clearly not addressed to you

AUDIO QUALITY DETECTION:
- If the user's audio sounds choppy, clipped, or drowned in noise across multiple turns, say so briefly and call report_audio_quality_issue
- If the user needs to provide exact text (an email address, a code), call request_text_input rather than transcribing it by ear

CONFIRMATION HANDLING:
- When a confirmation dialog is open and the user approves ("confirm", "yes", "go ahead"), you MUST call the confirm_pending_action function; verbal acknowledgement does nothing
- When they decline ("cancel", "no", "nevermind"), you MUST call the cancel_pending_action function

ENDING THE SESSION:
- When the user says goodbye or the conversation is done, call end_session
- Set should_save=true when the session produced decisions, drafts, or anything worth keeping; false for idle chats
- Never just stop talking; the session stays open until end_session is called`

// voiceWrap adapts a text builder for the voice agent by appending the
// audio-interaction protocol. The delegated-capabilities digest is already
// injected by the underlying builder when hybrid mode supplies one.
func voiceWrap(build Builder) Builder {
	return func(in *Input, meta Meta) string {
		meta.Agent = catalog.AgentVoice
		return joinSections(build(in, meta), voiceProtocol)
	}
}
