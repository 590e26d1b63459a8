// ABOUTME: Tests for the unattended-decision prompts: nudge policy wording
// ABOUTME: and report synthesis input shaping.

package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/2389/zunou-proxy/internal/relay"
)

func TestNudgeEvaluation_BasicShape(t *testing.T) {
	r := &relay.Relay{Mission: &relay.Mission{Objective: "collect status updates"}}
	thread := &relay.Thread{RecipientName: "Dana", Status: relay.ThreadPending}
	timing := NudgeTiming{DaysPending: 2.5, NudgeCount: 1, HoursSinceLastContact: 40}

	prompt := BuildNudgeEvaluation(r, thread, &Person{Name: "Alex"}, timing, NudgePolicy{}, false)

	assert.Contains(t, prompt, "Objective: collect status updates")
	assert.Contains(t, prompt, "Owner: Alex")
	assert.Contains(t, prompt, "Recipient: Dana")
	assert.Contains(t, prompt, "Days pending: 2.5")
	assert.Contains(t, prompt, "Nudges already sent: 1")
	assert.Contains(t, prompt, "Hours since last contact: 40")
	assert.Contains(t, prompt, "Respond with JSON only")
	assert.Contains(t, prompt, `"should_nudge"`)
}

func TestNudgeEvaluation_PolicyModes(t *testing.T) {
	base := func(mode string, forced bool) string {
		return BuildNudgeEvaluation(nil, nil, nil, NudgeTiming{}, NudgePolicy{Mode: mode}, forced)
	}

	assert.Contains(t, base("urgent", false), "urgent — remind roughly daily")
	assert.Contains(t, base("aggressive", false), "aggressive — remind every couple of days")
	assert.Contains(t, base("gentle", false), "gentle — remind sparingly")
	assert.Contains(t, base("", false), "gentle — remind sparingly")
	assert.Contains(t, base("disabled", false), "disabled — never recommend a nudge.")
}

func TestNudgeEvaluation_ForcedOverridesDisabled(t *testing.T) {
	prompt := BuildNudgeEvaluation(nil, nil, nil, NudgeTiming{}, NudgePolicy{Mode: "disabled"}, true)
	assert.Contains(t, prompt, "overridden: this evaluation was forced by the owner")
	assert.Contains(t, prompt, "The owner explicitly requested this evaluation now.")
}

func TestNudgeEvaluation_MessageRulesNeverGuiltTrip(t *testing.T) {
	prompt := BuildNudgeEvaluation(nil, nil, &Person{Name: "Alex"}, NudgeTiming{}, NudgePolicy{}, false)
	assert.Contains(t, prompt, "Never guilt-trip, never mention how many reminders were sent")
	assert.Contains(t, prompt, "reference what Alex is waiting on")
}

func TestReportSynthesis_ThreadSummaryPreferred(t *testing.T) {
	threads := []relay.Thread{
		{RecipientName: "Dana", Status: relay.ThreadComplete, ThreadSummary: "finance owns the budget"},
	}
	prompt := BuildReportSynthesis(&relay.Relay{Objective: "who owns the budget"}, threads, nil, &Person{Name: "Alex"})

	assert.Contains(t, prompt, `ORIGINAL REQUEST from Alex:`)
	assert.Contains(t, prompt, `"who owns the budget"`)
	assert.Contains(t, prompt, "Dana: finance owns the budget")
	assert.Contains(t, prompt, `{"summary"`)
}

func TestReportSynthesis_ConversationFallbackLastFive(t *testing.T) {
	conversation := []relay.Message{}
	for _, msg := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		conversation = append(conversation, relay.Message{Role: "user", Content: msg})
		conversation = append(conversation, relay.Message{Role: "assistant", Content: "ack " + msg})
	}
	threads := []relay.Thread{
		{RecipientName: "Dana", Status: relay.ThreadComplete, Conversation: conversation},
	}
	prompt := BuildReportSynthesis(nil, threads, nil, nil)

	assert.Contains(t, prompt, "Dana said:")
	// Only the recipient's last five turns survive; assistant turns never do.
	assert.Contains(t, prompt, `"seven"`)
	assert.Contains(t, prompt, `"three"`)
	assert.NotContains(t, prompt, `"two"`)
	assert.NotContains(t, prompt, "ack ")
}

func TestReportSynthesis_IncompleteThreadsExcluded(t *testing.T) {
	threads := []relay.Thread{
		{RecipientName: "Dana", Status: relay.ThreadComplete, ThreadSummary: "the answer"},
		{RecipientName: "Kim", Status: relay.ThreadDeclined, ThreadSummary: "should not appear"},
	}
	prompt := BuildReportSynthesis(nil, threads, nil, nil)
	assert.Contains(t, prompt, "Dana: the answer")
	assert.NotContains(t, prompt, "should not appear")
}

func TestReportSynthesis_NoResponses(t *testing.T) {
	prompt := BuildReportSynthesis(nil, nil, nil, nil)
	assert.Contains(t, prompt, "ORIGINAL REQUEST from the user:")
	assert.Contains(t, prompt, "No responses available")
}

func TestReportSynthesis_InsightsWithSources(t *testing.T) {
	insights := []relay.Insight{
		{Content: "deadline is Friday", Source: "Dana"},
		{Content: "budget frozen"},
	}
	prompt := BuildReportSynthesis(nil, nil, insights, nil)
	assert.Contains(t, prompt, "KEY INSIGHTS GATHERED:")
	assert.Contains(t, prompt, "- deadline is Friday (from Dana)")
	assert.Contains(t, prompt, "- budget frozen\n")
	assert.False(t, strings.Contains(prompt, "budget frozen (from"))
}
