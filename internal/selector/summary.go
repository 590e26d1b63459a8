// ABOUTME: Capability Summarizer: renders the delegated tool set as a
// ABOUTME: compact category-grouped digest for hybrid voice prompts.

package selector

import (
	"sort"
	"strings"

	"github.com/2389/zunou-proxy/internal/catalog"
)

const delegationUsageFooter = `USAGE: delegate_action({tool_name?: "exact_tool", action: "what to do", category: "closest category", entities?: {...}, urgency?: "low|normal|high"})`

// SummarizeDelegated renders the delegated tool names grouped by category in
// fixed priority order. It surfaces names only, never fabricated
// descriptions. An empty delegated set yields an empty string; callers omit
// the section entirely in that case.
func SummarizeDelegated(delegated []*catalog.Tool) string {
	byCategory := map[catalog.Category][]string{}
	for _, t := range delegated {
		if catalog.InternalCategory(t.Category) {
			continue
		}
		byCategory[t.Category] = append(byCategory[t.Category], t.Name)
	}
	if len(byCategory) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("DELEGATED ACTIONS (reachable via delegate_action):\n")

	emit := func(c catalog.Category) {
		names, ok := byCategory[c]
		if !ok {
			return
		}
		delete(byCategory, c)
		b.WriteString("- " + string(c) + ": " + strings.Join(names, ", ") + "\n")
	}

	for _, c := range catalog.CategoryPriority {
		emit(c)
	}

	// Any category not on the priority list trails in stable order.
	rest := make([]catalog.Category, 0, len(byCategory))
	for c := range byCategory {
		rest = append(rest, c)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, c := range rest {
		emit(c)
	}

	b.WriteString("\n" + delegationUsageFooter)
	return b.String()
}
