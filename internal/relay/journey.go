// ABOUTME: Journey narration: replays a thread's redirect chain oldest-first
// ABOUTME: so "who told you what" reads in causal order.

package relay

import (
	"fmt"
	"strings"
)

// JourneyNarrative renders the hand-off history for the current thread. The
// redirect chain is stored newest-first and must be reversed before
// narration: the hop numbering and the referral story both depend on causal
// order. Falls back to the relay's legacy journey array; with neither, the
// result is empty and callers omit the section entirely.
func JourneyNarrative(r *Relay, t *Thread) string {
	if t != nil && len(t.RedirectChain) > 0 {
		var b strings.Builder
		b.WriteString("HOW THIS REACHED " + strings.ToUpper(t.RecipientName) + ":\n")
		n := len(t.RedirectChain)
		for i := n - 1; i >= 0; i-- {
			hop := t.RedirectChain[i]
			b.WriteString(fmt.Sprintf("### Hop %d: %s\n", n-i, hop.FromName))
			b.WriteString("Referred to " + hop.ToName + " because: " + hop.Reason + "\n")
			if hop.Summary != "" {
				b.WriteString("What they shared: " + hop.Summary + "\n")
			}
		}
		return strings.TrimRight(b.String(), "\n")
	}

	if r != nil && len(r.Journey) > 0 {
		var b strings.Builder
		b.WriteString("JOURNEY SO FAR:\n")
		for i, step := range r.Journey {
			b.WriteString(fmt.Sprintf("### Hop %d: %s\n", i+1, step))
		}
		return strings.TrimRight(b.String(), "\n")
	}

	return ""
}

// VisibleThreadsBlock summarizes the other recipients' status and insights
// for a recipient-facing prompt. Empty unless the relay allows it (see
// ShowVisibleThreads) and there is at least one other thread to describe.
func VisibleThreadsBlock(r *Relay, currentThreadID string) string {
	if r == nil || !r.ShowVisibleThreads() {
		return ""
	}

	var b strings.Builder
	for _, t := range r.Threads {
		if t.ID == currentThreadID {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %s", t.RecipientName, t.Status))
		if len(t.Insights) > 0 {
			b.WriteString(" — " + t.Insights[len(t.Insights)-1].Content)
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return ""
	}
	return "OTHER PARTICIPANTS:\n" + strings.TrimRight(b.String(), "\n")
}
