package model

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
)

const (
	heavyRule = "================================================================================"
	lightRule = "--------------------------------------------------------------------------------"
)

// FormatResult formats the outcome of a run for display
func FormatResult(r *Result) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	b.WriteString(color.Bold.Sprint("Run:       "))
	b.WriteString(color.Yellow.Sprintf("%s", r.Name))
	b.WriteString(color.Gray.Sprintf(" (%s)\n", r.RunID))
	b.WriteString(color.Bold.Sprint("Algorithm: "))
	b.WriteString(fmt.Sprintf("%s %s\n", r.Kind, r.Algorithm))

	if r.Kind == KindGame {
		formatDecision(&b, r)
	} else {
		formatPlan(&b, r)
	}
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	return b.String()
}

func formatPlan(b *strings.Builder, r *Result) {
	b.WriteString(color.Bold.Sprint("Found:     "))
	if r.Found {
		b.WriteString(color.Green.Sprint("yes\n"))
	} else if r.Truncated {
		b.WriteString(color.Yellow.Sprint("no (expansion limit reached)\n"))
	} else {
		b.WriteString(color.Red.Sprint("no (goal unreachable)\n"))
	}
	if !r.Found {
		return
	}
	b.WriteString(color.Bold.Sprint("Cost:      "))
	b.WriteString(fmt.Sprintf("%s\n", formatFloat(r.Cost)))
	b.WriteString(color.Bold.Sprint("Length:    "))
	b.WriteString(fmt.Sprintf("%d\n", len(r.Actions)))
	b.WriteString(color.Gray.Sprint(lightRule))
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint("Plan:"))
	b.WriteString("\n")
	if len(r.Actions) == 0 {
		b.WriteString("  (start state is a goal)\n")
	}
	for i, a := range r.Actions {
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, a))
	}
}

func formatDecision(b *strings.Builder, r *Result) {
	b.WriteString(color.Bold.Sprint("Action:    "))
	if r.Found {
		b.WriteString(color.Green.Sprintf("%s\n", r.Action))
	} else {
		b.WriteString(color.Yellow.Sprint("none (terminal root)\n"))
	}
	b.WriteString(color.Bold.Sprint("Value:     "))
	b.WriteString(fmt.Sprintf("%s\n", formatFloat(r.Value)))
}

// FormatViolation formats a single unmet expectation for display
func FormatViolation(v Violation) string {
	var b strings.Builder
	b.WriteString(color.Bold.Sprint("Field:    "))
	b.WriteString(color.Yellow.Sprintf("%s\n", v.Field))
	b.WriteString(color.Bold.Sprint("Expected: "))
	b.WriteString(fmt.Sprintf("%s\n", v.Want))
	b.WriteString(color.Bold.Sprint("Got:      "))
	b.WriteString(color.Red.Sprintf("%s\n", v.Got))
	return b.String()
}

// FormatAllViolations formats all unmet expectations for display
func FormatAllViolations(violations []Violation) string {
	if len(violations) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")
	b.WriteString(color.Red.Sprintf("EXPECTATIONS NOT MET: %d\n", len(violations)))
	b.WriteString(color.Gray.Sprint(heavyRule))
	b.WriteString("\n")

	for i, v := range violations {
		b.WriteString(color.Yellow.Sprintf("\nViolation #%d:\n", i+1))
		b.WriteString(FormatViolation(v))
	}

	return b.String()
}

// FormatStatistics formats search statistics, showing only the counters
// of the engine that ran
func FormatStatistics(r *Result) string {
	stats := r.Statistics
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint("=== Search statistics ==="))
	b.WriteString("\n")
	b.WriteString(color.Bold.Sprint("Distinct states: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.States))
	if r.Kind == KindGame {
		b.WriteString(color.Bold.Sprint("Nodes visited: "))
		b.WriteString(fmt.Sprintf("%d\n", stats.Nodes))
		b.WriteString(color.Bold.Sprint("Evaluations: "))
		b.WriteString(fmt.Sprintf("%d\n", stats.Evaluations))
		b.WriteString(color.Bold.Sprint("Cutoffs: "))
		b.WriteString(fmt.Sprintf("%d\n", stats.Cutoffs))
		b.WriteString(color.Bold.Sprint("Deepest move: "))
		b.WriteString(fmt.Sprintf("%d\n", stats.MaxDepth))
	} else {
		b.WriteString(color.Bold.Sprint("States expanded: "))
		b.WriteString(fmt.Sprintf("%d\n", stats.Expanded))
		b.WriteString(color.Bold.Sprint("Successors generated: "))
		b.WriteString(fmt.Sprintf("%d\n", stats.Generated))
		b.WriteString(color.Bold.Sprint("Stale entries discarded: "))
		b.WriteString(fmt.Sprintf("%d\n", stats.Duplicates))
		b.WriteString(color.Bold.Sprint("Largest frontier: "))
		b.WriteString(fmt.Sprintf("%d\n", stats.MaxFrontier))
	}
	b.WriteString(color.Bold.Sprint("Elapsed: "))
	b.WriteString(fmt.Sprintf("%s\n", stats.Duration))

	b.WriteString(color.Bold.Sprint("Expectations failed: "))
	if len(r.Violations) > 0 {
		b.WriteString(color.Red.Sprintf("%d\n", len(r.Violations)))
	} else {
		b.WriteString(color.Green.Sprintf("%d\n", len(r.Violations)))
	}
	return b.String()
}

// FormatBatchSummary formats the one-line-per-spec summary of a batch
func FormatBatchSummary(outcomes []Outcome) string {
	var b strings.Builder
	failed := 0
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint("=== Summary ==="))
	b.WriteString("\n")
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			failed++
			b.WriteString(color.Red.Sprint("✗ "))
			b.WriteString(fmt.Sprintf("%s: %v\n", o.Path, o.Err))
		case !o.Result.Success():
			failed++
			b.WriteString(color.Red.Sprint("✗ "))
			b.WriteString(fmt.Sprintf("%s: %d expectation(s) not met\n", o.Path, len(o.Result.Violations)))
		default:
			b.WriteString(color.Green.Sprint("✓ "))
			b.WriteString(fmt.Sprintf("%s\n", o.Path))
		}
	}
	if failed > 0 {
		b.WriteString(color.Red.Sprintf("%d of %d runs failed\n", failed, len(outcomes)))
	} else {
		b.WriteString(color.Green.Sprintf("all %d runs passed\n", len(outcomes)))
	}
	return b.String()
}
