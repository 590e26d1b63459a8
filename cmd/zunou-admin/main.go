// ABOUTME: Operator CLI for inspecting the tool catalog, session policy,
// ABOUTME: and recorded usage telemetry without starting the server.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/2389/zunou-proxy/internal/catalog"
	"github.com/2389/zunou-proxy/internal/config"
	"github.com/2389/zunou-proxy/internal/selector"
	"github.com/2389/zunou-proxy/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: zunou-admin <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  tools [session] [agent]  Show the tool split for a session (default daily-debrief voice)")
		fmt.Println("  sessions                 List known session types")
		fmt.Println("  capabilities [session]   Show the help-surface capability listing")
		fmt.Println("  usage [days]             Summarize recorded session usage (default 7 days)")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "tools":
		err = runTools()
	case "sessions":
		err = runSessions()
	case "capabilities":
		err = runCapabilities()
	case "usage":
		err = runUsage(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func argOr(i int, fallback string) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return fallback
}

func runTools() error {
	session := catalog.SessionType(argOr(2, string(catalog.SessionDailyDebrief)))
	agent := catalog.AgentType(argOr(3, string(catalog.AgentVoice)))

	hybrid := agent == catalog.AgentVoice
	sel, err := selector.Select(agent, session, hybrid)
	if err != nil {
		return fmt.Errorf("selecting tools: %w", err)
	}

	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	cyan.Printf("%s / %s", session, agent)
	if sel.Hybrid {
		yellow.Print(" [hybrid]")
	}
	fmt.Println()
	gray.Printf("direct tokens: %d, budget remaining: %d\n\n", sel.DirectTokens, sel.BudgetRemaining)

	green.Printf("DIRECT (%d)\n", len(sel.Direct))
	for _, t := range sel.Direct {
		fmt.Printf("  %-32s", t.Name)
		gray.Printf(" %s", t.Category)
		if t.ClientOnly {
			yellow.Print(" client-only")
		}
		fmt.Println()
	}

	if len(sel.Delegated) > 0 {
		fmt.Println()
		yellow.Printf("DELEGATED (%d)\n", len(sel.Delegated))
		for _, t := range sel.Delegated {
			fmt.Printf("  %-32s", t.Name)
			gray.Printf(" %s\n", t.Category)
		}
	}

	fmt.Println()
	gray.Printf("total capabilities: %d\n", sel.TotalCapabilities())
	return nil
}

func runSessions() error {
	cyan := color.New(color.FgCyan)
	for _, s := range []catalog.SessionType{
		catalog.SessionAboutMe, catalog.SessionDailyDebrief, catalog.SessionQuickAsk,
		catalog.SessionDayPrep, catalog.SessionEventContext, catalog.SessionRelayLanding,
		catalog.SessionRelayManager, catalog.SessionRelayConvo, catalog.SessionGeneral,
		catalog.SessionDigest, catalog.SessionDraft, catalog.SessionDiscoverTour,
		catalog.SessionChatContext, catalog.SessionChatCatchup,
	} {
		cyan.Printf("%-20s", s)
		fmt.Println(catalog.SessionDisplayName(s))
	}
	return nil
}

func runCapabilities() error {
	session := catalog.SessionType(argOr(2, string(catalog.SessionDailyDebrief)))

	categories, err := selector.Capabilities(session, catalog.AgentVoice)
	if err != nil {
		return fmt.Errorf("building capabilities: %w", err)
	}

	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)

	for _, cat := range categories {
		title := cat.Title
		if title == "" {
			title = string(cat.Category)
		}
		cyan.Println(title)
		for _, item := range cat.Items {
			fmt.Printf("  %-32s %s\n", item.Name, item.Description)
			if len(item.Examples) > 0 {
				gray.Printf("    e.g. %q\n", item.Examples[0])
			}
		}
		fmt.Println()
	}
	return nil
}

func runUsage(ctx context.Context) error {
	days := 7
	if arg := argOr(2, ""); arg != "" {
		if _, err := fmt.Sscanf(arg, "%d", &days); err != nil {
			return fmt.Errorf("invalid day count %q", arg)
		}
	}

	configPath := os.Getenv("ZUNOU_CONFIG")
	if configPath == "" {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolving home directory: %w", err)
			}
			configDir = filepath.Join(homeDir, ".config")
		}
		configPath = filepath.Join(configDir, "zunou", "proxy.yaml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Store.Path == "" {
		return fmt.Errorf("usage telemetry is disabled (store.path is empty)")
	}

	usage, err := store.NewUsageStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("opening usage store: %w", err)
	}
	defer usage.Close()

	since := time.Now().AddDate(0, 0, -days)
	summaries, err := usage.Summarize(ctx, since)
	if err != nil {
		return fmt.Errorf("summarizing usage: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Printf("No sessions recorded in the last %d days.\n", days)
		return nil
	}

	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)

	cyan.Printf("%-20s %-8s %8s %12s %8s\n", "SESSION", "AGENT", "COUNT", "AVG TOKENS", "HYBRID")
	for _, s := range summaries {
		fmt.Printf("%-20s %-8s %8d %12.0f %8d\n", s.SessionType, s.AgentType, s.Sessions, s.AvgTokens, s.HybridSessions)
	}
	gray.Printf("\nsince %s\n", since.Format("2006-01-02"))
	return nil
}
