// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/hupe1980/engineroom/core"
	"github.com/hupe1980/engineroom/state"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// ReadyBadge returns a colored indicator for an engine's ready state.
func ReadyBadge(s core.ReadyState) string {
	switch s {
	case core.Ready, core.Initialized:
		return Green("● " + s.String())
	case core.Analyzing, core.Busy, core.Starting:
		return Yellow("◐ " + s.String())
	default:
		return Red("○ " + s.String())
	}
}

// FormatScore renders a search score: centipawns from the engine's point of
// view, or a mate distance.
func FormatScore(score *core.Score) string {
	if score == nil {
		return Dim("-")
	}
	var s string
	switch {
	case score.Mate != nil:
		s = fmt.Sprintf("#%d", *score.Mate)
	case score.CP != nil:
		s = fmt.Sprintf("%+.2f", float64(*score.CP)/100)
	default:
		return Dim("-")
	}
	switch score.Bound {
	case core.ScoreLowerBound:
		s += "↑"
	case core.ScoreUpperBound:
		s += "↓"
	}
	return Cyan(s)
}

// PrintAnalysisLine prints one search progress line for an engine.
func PrintAnalysisLine(engine string, data core.AnalysisData) {
	var parts []string
	if data.Depth != nil {
		parts = append(parts, fmt.Sprintf("d%d", *data.Depth))
	}
	parts = append(parts, FormatScore(data.Score))
	if data.NPS != nil {
		parts = append(parts, Dim(fmt.Sprintf("%d kn/s", *data.NPS/1000)))
	}
	if len(data.PV) > 0 {
		parts = append(parts, strings.Join(data.PV, " "))
	}
	fmt.Fprintf(Output, "%s %s\n", Bold(engine+":"), strings.Join(parts, "  "))
}

// PrintBestMove prints an engine's final move choice.
func PrintBestMove(engine string, move string, ponder *string) {
	line := fmt.Sprintf("%s %s", Bold(engine+":"), Green("bestmove "+move))
	if ponder != nil {
		line += Dim(" (ponder " + *ponder + ")")
	}
	fmt.Fprintln(Output, line)
}

// PrintEngineState prints a full engine snapshot in a formatted style.
func PrintEngineState(name string, snap state.Snapshot) {
	fmt.Fprintf(Output, "%s %s\n", Bold(name), ReadyBadge(snap.ReadyState))

	if snap.Identity.Name != "" {
		id := snap.Identity.Name
		if snap.Identity.Author != "" {
			id += Dim(" by " + snap.Identity.Author)
		}
		fmt.Fprintf(Output, "  %s %s\n", Bold("Engine:"), id)
	}
	if snap.CurrentPosition != nil {
		fmt.Fprintf(Output, "  %s %s\n", Bold("Position:"), *snap.CurrentPosition)
	}
	if snap.BestMove != nil {
		fmt.Fprintf(Output, "  %s %s\n", Bold("Best move:"), Green(snap.BestMove.Move))
	}
	if len(snap.Analysis) > 0 {
		last := snap.Analysis[len(snap.Analysis)-1]
		fmt.Fprintf(Output, "  %s %s\n", Bold("Last line:"), FormatScore(last.Score))
	}
	fmt.Fprintf(Output, "  %s %d\n", Bold("Options:"), len(snap.Capabilities))
}

// PrintCapabilities prints an engine's option table sorted by name.
func PrintCapabilities(name string, caps map[string]core.OptionDefinition) {
	if len(caps) == 0 {
		fmt.Fprintln(Output, "No options reported.")
		return
	}

	names := make([]string, 0, len(caps))
	for n := range caps {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprintf(Output, "%s\n", Bold(name+" options:"))
	for _, n := range names {
		def := caps[n]
		detail := def.Type.String()
		if def.Default != "" {
			detail += Dim(" default=" + def.Default)
		}
		if def.Min != nil && def.Max != nil {
			detail += Dim(fmt.Sprintf(" [%d..%d]", *def.Min, *def.Max))
		}
		if len(def.Vars) > 0 {
			detail += Dim(" (" + strings.Join(def.Vars, "|") + ")")
		}
		fmt.Fprintf(Output, "  %s %s\n", Cyan(n), detail)
	}
}
