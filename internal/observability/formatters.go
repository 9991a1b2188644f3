// Package observability provides formatted output utilities for CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mvarela/cv-alchemist/internal/ats"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintATSAnalysis outputs a human-readable summary of a parsed ATS report.
func (p *Printer) PrintATSAnalysis(analysis *ats.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %s %d/100\n", ats.ScoreEmoji(analysis.Score), analysis.Score))
	sb.WriteString(fmt.Sprintf("Nivel:  %s\n", analysis.Level))
	sb.WriteString("\n")

	writeList(&sb, "Palabras clave encontradas:", analysis.KeywordsFound)

	if len(analysis.KeywordsMissing) > 0 {
		sb.WriteString("Palabras clave faltantes:\n")
		count := min(len(analysis.KeywordsMissing), maxItemsToShow)
		for i := 0; i < count; i++ {
			kw := analysis.KeywordsMissing[i]
			sb.WriteString(fmt.Sprintf("  • %s", kw.Keyword))
			if kw.Suggestion != "" {
				suggestion := kw.Suggestion
				if len(suggestion) > 35 {
					suggestion = suggestion[:32] + "..."
				}
				sb.WriteString(fmt.Sprintf(" (%s)", suggestion))
			}
			sb.WriteString("\n")
		}
		if len(analysis.KeywordsMissing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... y %d más\n", len(analysis.KeywordsMissing)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Fortalezas:", analysis.Strengths)
	writeList(&sb, "Debilidades:", analysis.Weaknesses)
	writeList(&sb, "Recomendaciones:", analysis.Recommendations)

	p.printBox("ANÁLISIS DE COMPATIBILIDAD ATS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetails outputs the per-criterion breakdown of an analysis.
func (p *Printer) PrintDetails(analysis *ats.Analysis) {
	if analysis == nil || len(analysis.Details) == 0 {
		return
	}

	var sb strings.Builder
	for _, key := range sortedKeys(analysis.Details) {
		value := analysis.Details[key]
		if len(value) > 30 {
			value = value[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s: %s\n", key, value))
	}

	p.printBox("DETALLES POR CRITERIO", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}

	sb.WriteString(title + "\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... y %d más\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
