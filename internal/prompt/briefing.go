// ABOUTME: Briefing builders: daily debrief and day prep.
// ABOUTME: Structured debrief context is preferred; section order is fixed.

package prompt

import (
	"fmt"
	"strings"
)

// actionablePreviewCap limits the outstanding-actionables preview; the
// remainder is always surfaced as a "+N more" count, never dropped silently.
const actionablePreviewCap = 3

func buildDailyDebrief(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, the user's executive assistant, giving their daily debrief. Lead with what needs attention, keep momentum, and offer to act on anything you surface.`

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		debriefBody(in),
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}

// debriefBody prefers the structured sections and falls back to the legacy
// pre-formatted string only when no structured context was supplied. The
// section order is significant: urgent material first, previews last.
func debriefBody(in *Input) string {
	if in.Debrief == nil || in.Debrief.Sections == nil {
		if in.Formatted == "" {
			return ""
		}
		return "TODAY'S CONTEXT:\n" + in.Formatted
	}

	s := in.Debrief.Sections
	var parts []string

	if s.Conflicts != "" {
		parts = append(parts, "SCHEDULING CONFLICTS (address these first):\n"+s.Conflicts)
	}
	if s.Today != "" {
		parts = append(parts, "TODAY'S SCHEDULE:\n"+s.Today)
	}
	if s.Tasks != "" {
		parts = append(parts, "URGENT TASKS:\n"+s.Tasks)
	}
	if s.Insights != "" {
		parts = append(parts, "NEEDS ATTENTION:\n"+s.Insights)
	}
	if s.Relays != nil {
		parts = append(parts, fmt.Sprintf(
			"RELAYS:\n%d incoming to answer, %d waiting on others, %d completed since yesterday",
			s.Relays.Incoming, s.Relays.Waiting, s.Relays.Completed))
	}
	if s.Tomorrow != "" {
		// Preview only: the first line of tomorrow's agenda.
		first := s.Tomorrow
		if i := strings.IndexByte(first, '\n'); i >= 0 {
			first = first[:i]
		}
		parts = append(parts, "TOMORROW (preview):\n"+first)
	}
	if len(s.Actionables) > 0 {
		shown := s.Actionables
		extra := 0
		if len(shown) > actionablePreviewCap {
			extra = len(shown) - actionablePreviewCap
			shown = shown[:actionablePreviewCap]
		}
		block := "OUTSTANDING ACTION ITEMS:\n- " + strings.Join(shown, "\n- ")
		if extra > 0 {
			block += fmt.Sprintf("\n...+%d more", extra)
		}
		parts = append(parts, block)
	}

	return strings.Join(parts, "\n\n")
}

func buildDayPrep(in *Input, meta Meta) string {
	persona := `You are ` + AgentName + `, prepping the user for a specific day. Walk the schedule in order, flag conflicts and gaps, and surface prep the user still owes.`

	var day string
	if in.Day != nil {
		var b strings.Builder
		if in.Day.Date != "" {
			b.WriteString("DAY UNDER REVIEW: " + in.Day.Date + "\n")
		}
		if len(in.Day.Events) > 0 {
			b.WriteString("SCHEDULE:\n- " + strings.Join(in.Day.Events, "\n- ") + "\n")
		}
		if in.Day.Notes != "" {
			b.WriteString("NOTES:\n" + in.Day.Notes)
		}
		day = strings.TrimRight(b.String(), "\n")
	}

	return joinSections(
		identityBlock(meta),
		persona,
		languageClause(in.Language),
		userSection(in.UserContext),
		day,
		delegatedSection(in.DelegatedCapabilities),
		FormatRules(meta.Agent),
	)
}
