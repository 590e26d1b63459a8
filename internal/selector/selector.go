// ABOUTME: Tool Selector: filters the catalog by agent, session, and hybrid
// ABOUTME: mode, and computes token-budget statistics for the direct set.

package selector

import (
	"encoding/json"
	"errors"

	"github.com/2389/zunou-proxy/internal/catalog"
)

var ErrUnknownSessionType = errors.New("unknown session type")

const (
	// TokenBudget is the ceiling the direct tool set is measured against.
	// The selector computes and exposes the remainder; it never truncates.
	TokenBudget = 28000

	// charsPerToken is the serialized-chars-to-tokens approximation.
	charsPerToken = 4
)

// Selection is the result of one selector pass. Direct tools go into the
// provider payload; delegated tools are only summarized.
type Selection struct {
	Agent     catalog.AgentType
	Session   catalog.SessionType
	Hybrid    bool
	Direct    []*catalog.Tool
	Delegated []*catalog.Tool

	DirectTokens    int
	DelegatedTokens int
	BudgetRemaining int
}

// Select filters the catalog for an agent/session pair. Filtering order:
// voice-only exclusion, then session access, then (when hybrid) the
// direct/delegated split. Relay sessions bypass the access table and use the
// fixed catalog lists. A recognized session with no allowed tools yields an
// empty selection, not an error.
func Select(agent catalog.AgentType, session catalog.SessionType, hybrid bool) (*Selection, error) {
	if !catalog.ValidSessionType(session) {
		return nil, ErrUnknownSessionType
	}

	sel := &Selection{Agent: agent, Session: session, Hybrid: hybrid}

	switch session {
	case catalog.SessionRelayConvo:
		sel.Direct = catalog.ToolsByName(catalog.RelayConversationTools)
		sel.Hybrid = false
	case catalog.SessionRelayManager:
		sel.Direct = catalog.ToolsByName(catalog.RelayManagerTools)
		sel.Hybrid = false
	default:
		for _, t := range catalog.All() {
			if agent == catalog.AgentText && catalog.VoiceOnly(t.Name) {
				continue
			}
			if !catalog.AllowedInSession(t.Name, session) {
				continue
			}
			if hybrid && !catalog.HybridDirect(t) {
				sel.Delegated = append(sel.Delegated, t)
				continue
			}
			sel.Direct = append(sel.Direct, t)
		}
	}

	compact := agent == catalog.AgentVoice
	sel.DirectTokens = estimateTokens(sel.Direct, compact)
	sel.DelegatedTokens = estimateTokens(sel.Delegated, compact)
	sel.BudgetRemaining = TokenBudget - sel.DirectTokens
	return sel, nil
}

// WireDirect renders the direct set in provider wire form. Voice selections
// use compact descriptions and carry no help metadata. Hybrid selections
// gain the delegate_action tool, the only bridge to the delegated set.
func (s *Selection) WireDirect() []*catalog.WireTool {
	compact := s.Agent == catalog.AgentVoice
	out := make([]*catalog.WireTool, 0, len(s.Direct)+1)
	for _, t := range s.Direct {
		out = append(out, t.Wire(compact))
	}
	if s.Hybrid {
		out = append(out, catalog.DelegateAction.Wire(compact))
	}
	return out
}

// TotalCapabilities is the full capability count the agent should be told
// about: direct plus delegated, regardless of what is on the wire.
func (s *Selection) TotalCapabilities() int {
	return len(s.Direct) + len(s.Delegated)
}

func estimateTokens(tools []*catalog.Tool, compact bool) int {
	if len(tools) == 0 {
		return 0
	}
	chars := 0
	for _, t := range tools {
		b, err := json.Marshal(t.Wire(compact))
		if err != nil {
			continue
		}
		chars += len(b)
	}
	return (chars + charsPerToken - 1) / charsPerToken
}
