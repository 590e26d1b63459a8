// ABOUTME: Help-surface projection: capabilities grouped by category for a
// ABOUTME: session/agent pair, kept in sync with what the selector allows.

package selector

import (
	"sort"

	"github.com/2389/zunou-proxy/internal/catalog"
)

// HelpItem is one capability row in the help surface.
type HelpItem struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Risk        catalog.RiskLevel `json:"risk"`
	Examples    []string          `json:"examples,omitempty"`
}

// HelpCategory groups help items under a category with its trigger phrases.
type HelpCategory struct {
	Category catalog.Category `json:"category"`
	Title    string           `json:"title"`
	Summary  string           `json:"summary"`
	Triggers []string         `json:"triggers,omitempty"`
	Items    []HelpItem       `json:"items"`
}

// Capabilities projects the tool catalog's help metadata for a session/agent
// pair. Only tools the selector would actually allow appear, so a category
// with zero allowed tools is omitted rather than shown empty. Relay sessions
// use their fixed category list.
func Capabilities(session catalog.SessionType, agent catalog.AgentType) ([]HelpCategory, error) {
	sel, err := Select(agent, session, false)
	if err != nil {
		return nil, err
	}

	byCategory := map[catalog.Category][]HelpItem{}
	for _, t := range sel.Direct {
		byCategory[t.Category] = append(byCategory[t.Category], HelpItem{
			Name:        t.Name,
			Description: t.Description,
			Risk:        t.Risk,
			Examples:    t.Examples,
		})
	}
	for _, items := range byCategory {
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	}

	order := categoryOrder(session, byCategory)

	out := make([]HelpCategory, 0, len(order))
	for _, c := range order {
		items, ok := byCategory[c]
		if !ok {
			continue
		}
		hc := HelpCategory{Category: c, Items: items}
		if info := catalog.Info(c); info != nil {
			hc.Title = info.Title
			hc.Summary = info.Summary
			hc.Triggers = info.Triggers
		}
		out = append(out, hc)
	}
	return out, nil
}

func categoryOrder(session catalog.SessionType, present map[catalog.Category][]HelpItem) []catalog.Category {
	if session == catalog.SessionRelayConvo || session == catalog.SessionRelayManager {
		return catalog.RelayHelpCategories
	}

	order := append([]catalog.Category{}, catalog.CategoryPriority...)
	onList := map[catalog.Category]bool{}
	for _, c := range order {
		onList[c] = true
	}
	rest := make([]catalog.Category, 0, len(present))
	for c := range present {
		if !onList[c] {
			rest = append(rest, c)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(order, rest...)
}
