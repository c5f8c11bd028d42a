package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vizquery-org/vizquery/engine"
)

// ============================================================================
// TEXT RENDERING — human-readable summary for --format text
// ============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(12)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

func renderText(query string, result *engine.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(query))
	b.WriteString("\n")

	if !result.Success {
		b.WriteString(errorStyle.Render(result.Message))
		b.WriteString("\n")
		return b.String()
	}

	chart := result.Chart
	b.WriteString(result.Explanation)
	b.WriteString("\n\n")

	writeRow(&b, "Type", string(chart.Type))
	writeRow(&b, "Aggregator", string(chart.Aggregator))
	writeRow(&b, "Columns", channelNames(chart.Encoding.Columns))
	writeRow(&b, "Rows", channelNames(chart.Encoding.Rows))
	if len(chart.Encoding.Color) > 0 {
		writeRow(&b, "Color", channelNames(chart.Encoding.Color))
	}

	for _, note := range result.Notes {
		b.WriteString(noteStyle.Render("note: " + note))
		b.WriteString("\n")
	}
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", labelStyle.Render(label), value)
}

func channelNames(fields []engine.EncodedField) string {
	if len(fields) == 0 {
		return "-"
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
		if f.Aggregation != "" {
			names[i] = fmt.Sprintf("%s (%s)", f.Name, f.Aggregation)
		}
	}
	return strings.Join(names, ", ")
}
