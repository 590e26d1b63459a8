// ABOUTME: Tests for the tool selector: filtering order, hybrid split,
// ABOUTME: token budget accounting, and wire rendering.

package selector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/zunou-proxy/internal/catalog"
)

func TestSelect_UnknownSession(t *testing.T) {
	_, err := Select(catalog.AgentVoice, "brainstorm", false)
	assert.ErrorIs(t, err, ErrUnknownSessionType)
}

func TestSelect_PartitionInvariant(t *testing.T) {
	// Every eligible tool lands in exactly one of direct/delegated.
	sel, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, true)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, tool := range sel.Direct {
		seen[tool.Name]++
	}
	for _, tool := range sel.Delegated {
		seen[tool.Name]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "%s appears in both sets", name)
	}

	eligible := 0
	for _, tool := range catalog.All() {
		if catalog.AllowedInSession(tool.Name, catalog.SessionDailyDebrief) {
			eligible++
		}
	}
	assert.Equal(t, eligible, len(seen))
}

func TestSelect_NonHybridAllDirect(t *testing.T) {
	sel, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, false)
	require.NoError(t, err)
	assert.NotEmpty(t, sel.Direct)
	assert.Empty(t, sel.Delegated)
}

func TestSelect_HybridSplit(t *testing.T) {
	sel, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, true)
	require.NoError(t, err)

	for _, tool := range sel.Direct {
		assert.True(t, catalog.HybridDirect(tool), "%s is direct but not promoted", tool.Name)
	}
	for _, tool := range sel.Delegated {
		assert.False(t, tool.ClientOnly, "client-only %s cannot be delegated", tool.Name)
		assert.False(t, catalog.HybridDirect(tool), "%s is delegated but promoted", tool.Name)
	}
	assert.NotEmpty(t, sel.Delegated, "debrief hybrid should delegate the mutating tools")
}

func TestSelect_VoiceOnlyExcludedFromText(t *testing.T) {
	sel, err := Select(catalog.AgentText, catalog.SessionGeneral, false)
	require.NoError(t, err)
	for _, tool := range sel.Direct {
		assert.False(t, catalog.VoiceOnly(tool.Name), "%s leaked into the text agent", tool.Name)
	}

	voice, err := Select(catalog.AgentVoice, catalog.SessionGeneral, false)
	require.NoError(t, err)
	names := map[string]bool{}
	for _, tool := range voice.Direct {
		names[tool.Name] = true
	}
	assert.True(t, names["adjust_speaking_pace"])
}

func TestSelect_ToollessSessionsEmptyNotError(t *testing.T) {
	for _, session := range []catalog.SessionType{catalog.SessionDigest, catalog.SessionDraft} {
		sel, err := Select(catalog.AgentText, session, false)
		require.NoError(t, err, session)
		assert.Empty(t, sel.Direct, session)
		assert.Empty(t, sel.Delegated, session)
		assert.Equal(t, 0, sel.DirectTokens)
		assert.Equal(t, TokenBudget, sel.BudgetRemaining)
	}
}

func TestSelect_RelaySessionsUseFixedLists(t *testing.T) {
	convo, err := Select(catalog.AgentVoice, catalog.SessionRelayConvo, true)
	require.NoError(t, err)
	assert.Len(t, convo.Direct, len(catalog.RelayConversationTools))
	assert.Empty(t, convo.Delegated)
	assert.False(t, convo.Hybrid, "relay sessions force hybrid off")

	manager, err := Select(catalog.AgentVoice, catalog.SessionRelayManager, true)
	require.NoError(t, err)
	assert.Len(t, manager.Direct, len(catalog.RelayManagerTools))
	assert.False(t, manager.Hybrid)
}

func TestSelect_Deterministic(t *testing.T) {
	first, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, true)
	require.NoError(t, err)
	second, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, true)
	require.NoError(t, err)

	require.Equal(t, len(first.Direct), len(second.Direct))
	for i := range first.Direct {
		assert.Equal(t, first.Direct[i].Name, second.Direct[i].Name)
	}
	assert.Equal(t, first.DirectTokens, second.DirectTokens)
}

func TestSelect_BudgetMath(t *testing.T) {
	sel, err := Select(catalog.AgentVoice, catalog.SessionQuickAsk, false)
	require.NoError(t, err)

	chars := 0
	for _, tool := range sel.Direct {
		b, err := json.Marshal(tool.Wire(true))
		require.NoError(t, err)
		chars += len(b)
	}
	want := (chars + charsPerToken - 1) / charsPerToken
	assert.Equal(t, want, sel.DirectTokens)
	assert.Equal(t, TokenBudget-want, sel.BudgetRemaining)
}

func TestWireDirect_DelegateActionOnlyWhenHybrid(t *testing.T) {
	hybrid, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, true)
	require.NoError(t, err)
	wire := hybrid.WireDirect()
	require.Len(t, wire, len(hybrid.Direct)+1)
	assert.Equal(t, "delegate_action", wire[len(wire)-1].Name)

	plain, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, false)
	require.NoError(t, err)
	for _, w := range plain.WireDirect() {
		assert.NotEqual(t, "delegate_action", w.Name)
	}
}

func TestWireDirect_VoiceUsesCompact(t *testing.T) {
	sel, err := Select(catalog.AgentVoice, catalog.SessionGeneral, false)
	require.NoError(t, err)

	for _, w := range sel.WireDirect() {
		tool := catalog.Lookup(w.Name)
		require.NotNil(t, tool)
		if tool.Compact != "" {
			assert.Equal(t, tool.Compact, w.Description, w.Name)
		}
	}
}

func TestTotalCapabilities(t *testing.T) {
	sel, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, true)
	require.NoError(t, err)
	assert.Equal(t, len(sel.Direct)+len(sel.Delegated), sel.TotalCapabilities())

	plain, err := Select(catalog.AgentVoice, catalog.SessionDailyDebrief, false)
	require.NoError(t, err)
	// Hybrid never changes what the agent can ultimately reach.
	assert.Equal(t, plain.TotalCapabilities(), sel.TotalCapabilities())
}
