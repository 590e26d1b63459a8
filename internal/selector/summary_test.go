// ABOUTME: Tests for the delegation digest: category ordering, internal
// ABOUTME: category exclusion, and the usage footer.

package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/zunou-proxy/internal/catalog"
)

func TestSummarizeDelegated_Empty(t *testing.T) {
	assert.Equal(t, "", SummarizeDelegated(nil))
	assert.Equal(t, "", SummarizeDelegated([]*catalog.Tool{}))
}

func TestSummarizeDelegated_OnlyInternalCategories(t *testing.T) {
	tools := []*catalog.Tool{
		{Name: "close_modal", Category: catalog.CategoryDisplay},
		{Name: "end_session", Category: catalog.CategorySession},
	}
	assert.Equal(t, "", SummarizeDelegated(tools))
}

func TestSummarizeDelegated_CategoryPriorityOrder(t *testing.T) {
	tools := []*catalog.Tool{
		{Name: "create_task", Category: catalog.CategoryTasks},
		{Name: "create_event", Category: catalog.CategoryCalendar},
		{Name: "send_message", Category: catalog.CategoryMessages},
	}
	digest := SummarizeDelegated(tools)

	calendarAt := strings.Index(digest, "- calendar:")
	messagesAt := strings.Index(digest, "- messages:")
	tasksAt := strings.Index(digest, "- tasks:")
	require.NotEqual(t, -1, calendarAt)
	require.NotEqual(t, -1, messagesAt)
	require.NotEqual(t, -1, tasksAt)
	assert.Less(t, calendarAt, messagesAt)
	assert.Less(t, messagesAt, tasksAt)
}

func TestSummarizeDelegated_NamesOnlyNoDescriptions(t *testing.T) {
	tools := []*catalog.Tool{
		{Name: "create_event", Description: "Create a calendar event with attendees.", Category: catalog.CategoryCalendar},
	}
	digest := SummarizeDelegated(tools)
	assert.Contains(t, digest, "create_event")
	assert.NotContains(t, digest, "Create a calendar event")
}

func TestSummarizeDelegated_UsageFooter(t *testing.T) {
	tools := []*catalog.Tool{
		{Name: "create_event", Category: catalog.CategoryCalendar},
	}
	digest := SummarizeDelegated(tools)
	assert.True(t, strings.HasPrefix(digest, "DELEGATED ACTIONS (reachable via delegate_action):\n"))
	assert.True(t, strings.HasSuffix(digest, delegationUsageFooter))
	assert.Contains(t, digest, "delegate_action({tool_name?")
}

func TestSummarizeDelegated_RealHybridSelection(t *testing.T) {
	sel, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, true)
	require.NoError(t, err)
	require.NotEmpty(t, sel.Delegated)

	digest := SummarizeDelegated(sel.Delegated)
	require.NotEmpty(t, digest)
	for _, tool := range sel.Delegated {
		if catalog.InternalCategory(tool.Category) {
			assert.NotContains(t, digest, tool.Name)
			continue
		}
		assert.Contains(t, digest, tool.Name)
	}
}
