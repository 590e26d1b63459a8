// ABOUTME: Tests for the tool catalog: wire rendering, compact descriptions,
// ABOUTME: and the session access policy tables.

package catalog

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWire_FullDescriptions(t *testing.T) {
	tool := Lookup("end_session")
	require.NotNil(t, tool)

	wire := tool.Wire(false)
	assert.Equal(t, "function", wire.Type)
	assert.Equal(t, "end_session", wire.Name)
	assert.Equal(t, tool.Description, wire.Description)
	assert.Equal(t, "object", wire.Parameters["type"])
}

func TestWire_CompactSubstitution(t *testing.T) {
	tool := Lookup("end_session")
	require.NotNil(t, tool)
	require.NotEmpty(t, tool.Compact)

	wire := tool.Wire(true)
	assert.Equal(t, tool.Compact, wire.Description)
	assert.NotEqual(t, tool.Description, wire.Description)
}

func TestWire_CompactFallsBackToFull(t *testing.T) {
	tool := &Tool{
		Name:        "no_compact",
		Description: "Full description only.",
		Schema:      Schema{Properties: map[string]*Property{}},
	}
	wire := tool.Wire(true)
	assert.Equal(t, "Full description only.", wire.Description)
}

func TestWire_RequiredOmittedWhenEmpty(t *testing.T) {
	tool := Lookup("close_modal")
	require.NotNil(t, tool)
	require.Empty(t, tool.Schema.Required)

	wire := tool.Wire(false)
	_, present := wire.Parameters["required"]
	assert.False(t, present, "empty required list must be omitted, not serialized as []")
}

func TestWire_NoHelpMetadata(t *testing.T) {
	tool := Lookup("lookup_events")
	require.NotNil(t, tool)
	require.NotEmpty(t, tool.Examples, "test needs a tool with examples")

	b, err := json.Marshal(tool.Wire(false))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.NotContains(t, out, "examples")
	assert.NotContains(t, out, "risk")
	assert.NotContains(t, out, "category")
}

func TestWire_NestedProperties(t *testing.T) {
	tool := Lookup("show_events")
	require.NotNil(t, tool)

	wire := tool.Wire(false)
	props, ok := wire.Parameters["properties"].(map[string]any)
	require.True(t, ok)
	refs, ok := props["event_refs"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", refs["type"])
	items, ok := refs["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", items["type"])
}

func TestAll_SortedAndStable(t *testing.T) {
	tools := All()
	require.NotEmpty(t, tools)
	assert.True(t, sort.SliceIsSorted(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	}))

	again := All()
	require.Equal(t, len(tools), len(again))
	for i := range tools {
		assert.Equal(t, tools[i].Name, again[i].Name)
	}
}

func TestLookup_Unknown(t *testing.T) {
	assert.Nil(t, Lookup("not_a_tool"))
}

func TestAllowedSessions_FailClosed(t *testing.T) {
	// Unknown tools get nil, never a default allowlist.
	assert.Nil(t, AllowedSessions("not_a_tool"))
	assert.False(t, AllowedInSession("not_a_tool", SessionGeneral))
}

func TestAccess_RegisteredToolsCoveredAfterInit(t *testing.T) {
	// The access table is built lazily: every tool registered by the
	// per-file init functions must land in the full-access group, not just
	// the handful of explicit relay entries.
	assert.True(t, AllowedInSession("lookup_events", SessionGeneral))
	assert.True(t, AllowedInSession("create_event", SessionDailyDebrief))
	assert.True(t, AllowedInSession("end_session", SessionQuickAsk))
	assert.Equal(t, FullAccessSessions, AllowedSessions("create_event"))

	// Every catalog tool except the six recipient-side relay tools has an
	// allowlist entry.
	covered := 0
	for _, tool := range All() {
		if AllowedSessions(tool.Name) != nil {
			covered++
		}
	}
	assert.Equal(t, len(All())-6, covered)
}

func TestAccess_RecipientRelayToolsExcluded(t *testing.T) {
	// Recipient-side relay tools exist only inside the fixed relay lists;
	// the general access table must not grant them anywhere.
	for _, name := range []string{
		"relay_log_insight", "relay_add_question", "relay_mark_complete",
		"relay_mark_partial", "relay_redirect", "relay_decline",
	} {
		require.NotNil(t, Lookup(name), name)
		assert.Nil(t, AllowedSessions(name), name)
	}
}

func TestAccess_OwnerRelayManagement(t *testing.T) {
	assert.True(t, AllowedInSession("cancel_relay", SessionRelayManager))
	assert.True(t, AllowedInSession("cancel_relay", SessionGeneral))
	assert.False(t, AllowedInSession("cancel_relay", SessionAboutMe))
	assert.False(t, AllowedInSession("cancel_relay", SessionQuickAsk))
}

func TestAccess_DigestAndDraftGetNothingFromTable(t *testing.T) {
	for _, tool := range All() {
		assert.False(t, AllowedInSession(tool.Name, SessionDigest),
			"digest sessions run toolless, %s leaked in", tool.Name)
		assert.False(t, AllowedInSession(tool.Name, SessionDraft),
			"draft sessions run toolless, %s leaked in", tool.Name)
	}
}

func TestVoiceOnly(t *testing.T) {
	assert.True(t, VoiceOnly("adjust_speaking_pace"))
	assert.True(t, VoiceOnly("request_text_input"))
	assert.False(t, VoiceOnly("lookup_events"))
	assert.False(t, VoiceOnly("end_session"))
}

func TestHybridDirect_ClientOnlyAlwaysDirect(t *testing.T) {
	tool := Lookup("show_events")
	require.NotNil(t, tool)
	require.True(t, tool.ClientOnly)
	assert.True(t, HybridDirect(tool))
}

func TestHybridDirect_PromotedLookups(t *testing.T) {
	for _, name := range []string{"lookup_events", "lookup_tasks", "lookup_notes", "lookup_org_members", "lookup_contacts"} {
		tool := Lookup(name)
		require.NotNil(t, tool, name)
		assert.True(t, HybridDirect(tool), name)
	}
}

func TestHybridDirect_ServerToolsDelegated(t *testing.T) {
	tool := Lookup("create_event")
	require.NotNil(t, tool)
	require.False(t, tool.ClientOnly)
	assert.False(t, HybridDirect(tool), "mutating server tools stay delegated")
}

func TestRelayLists_ResolveFully(t *testing.T) {
	assert.Len(t, ToolsByName(RelayConversationTools), len(RelayConversationTools))
	assert.Len(t, ToolsByName(RelayManagerTools), len(RelayManagerTools))
}

func TestRelayManagerTools_SupersetOfConversation(t *testing.T) {
	manager := map[string]bool{}
	for _, name := range RelayManagerTools {
		manager[name] = true
	}
	for _, name := range RelayConversationTools {
		assert.True(t, manager[name], "manager set must include %s", name)
	}
}

func TestDelegateAction_NotRegistered(t *testing.T) {
	// delegate_action is synthetic; it must never be in the catalog or the
	// access table, only appended at wire time.
	assert.Nil(t, Lookup(DelegateAction.Name))
	assert.Nil(t, AllowedSessions(DelegateAction.Name))
	assert.ElementsMatch(t, []string{"action", "category"}, DelegateAction.Schema.Required)
}

func TestValidSessionType(t *testing.T) {
	assert.True(t, ValidSessionType(SessionDailyDebrief))
	assert.True(t, ValidSessionType(SessionChatCatchup))
	assert.False(t, ValidSessionType("brainstorm"))
	assert.False(t, ValidSessionType(""))
}

func TestSessionDisplayName(t *testing.T) {
	assert.Equal(t, "Daily Debrief", SessionDisplayName(SessionDailyDebrief))
	assert.Equal(t, "Discover Zunou", SessionDisplayName(SessionDiscoverTour))
	assert.Equal(t, "mystery", SessionDisplayName(SessionType("mystery")))
}
