// Package ats converts the free-text ATS compatibility report produced by a
// generation provider into a structured analysis record. The report format
// is an informal text protocol: each section is searched independently and
// absence of a section leaves the corresponding field at its default, so the
// parser is total over arbitrary input.
package ats

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultLevel is reported when the NIVEL section is absent.
const DefaultLevel = "Desconocido"

// MissingKeyword is a keyword absent from the CV, optionally annotated with
// a placement suggestion.
type MissingKeyword struct {
	Keyword    string `json:"keyword"`
	Suggestion string `json:"suggestion,omitempty"`
}

// SectionPresence records which labeled sections were actually found, so a
// genuinely-zero score can be told apart from an unparseable reply.
type SectionPresence struct {
	Score           bool `json:"score"`
	Level           bool `json:"level"`
	KeywordsFound   bool `json:"keywords_found"`
	KeywordsMissing bool `json:"keywords_missing"`
	Strengths       bool `json:"strengths"`
	Weaknesses      bool `json:"weaknesses"`
	Recommendations bool `json:"recommendations"`
	Details         bool `json:"details"`
}

// Analysis is the structured ATS compatibility result.
type Analysis struct {
	Score           int               `json:"score"`
	Level           string            `json:"level"`
	KeywordsFound   []string          `json:"keywords_found"`
	KeywordsMissing []MissingKeyword  `json:"keywords_missing"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	Recommendations []string          `json:"recommendations"`
	Details         map[string]string `json:"details"`
	Raw             string            `json:"raw_analysis"`
	Sections        SectionPresence   `json:"sections"`
}

var (
	scoreRe   = regexp.MustCompile(`\*\*SCORE_ATS:\*\*\s*(\d+)`)
	levelRe   = regexp.MustCompile(`\*\*NIVEL:\*\*\s*([^\n]+)`)
	bulletRe  = regexp.MustCompile(`- ([^\n]+)`)
	numberRe  = regexp.MustCompile(`\d+\. ([^\n]+)`)
	suggestRe = regexp.MustCompile(`^(.*?)\s*\(sugerencia:\s*(.+)\)\s*$`)
)

// bulletSection matches a bolded label followed by one or more "- " lines.
func bulletSection(label string) *regexp.Regexp {
	return regexp.MustCompile(`\*\*` + label + `:\*\*\s*((?:- [^\n]+\n?)+)`)
}

// numberedSection matches a bolded label followed by "1. " style lines.
func numberedSection(label string) *regexp.Regexp {
	return regexp.MustCompile(`\*\*` + label + `:\*\*\s*((?:\d+\. [^\n]+\n?)+)`)
}

var (
	foundSectionRe   = bulletSection("PALABRAS_CLAVE_ENCONTRADAS")
	missingSectionRe = bulletSection("PALABRAS_CLAVE_FALTANTES")
	strengthsRe      = bulletSection("FORTALEZAS")
	weaknessesRe     = bulletSection("DEBILIDADES")
	recommendRe      = numberedSection("RECOMENDACIONES")
	detailsRe        = bulletSection("DETALLES_POR_CRITERIO")
)

// Parse extracts the structured analysis from a raw model reply. It never
// fails: missing or malformed sections leave their fields at defaults.
func Parse(raw string) *Analysis {
	result := &Analysis{
		Level:           DefaultLevel,
		KeywordsFound:   []string{},
		KeywordsMissing: []MissingKeyword{},
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
		Details:         map[string]string{},
		Raw:             raw,
	}

	if m := scoreRe.FindStringSubmatch(raw); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			result.Score = score
			result.Sections.Score = true
		}
	}

	if m := levelRe.FindStringSubmatch(raw); m != nil {
		result.Level = strings.TrimSpace(m[1])
		result.Sections.Level = true
	}

	if items, ok := bulletItems(foundSectionRe, raw); ok {
		result.KeywordsFound = items
		result.Sections.KeywordsFound = true
	}

	if items, ok := bulletItems(missingSectionRe, raw); ok {
		result.KeywordsMissing = parseMissingKeywords(items)
		result.Sections.KeywordsMissing = true
	}

	if items, ok := bulletItems(strengthsRe, raw); ok {
		result.Strengths = items
		result.Sections.Strengths = true
	}

	if items, ok := bulletItems(weaknessesRe, raw); ok {
		result.Weaknesses = items
		result.Sections.Weaknesses = true
	}

	if m := recommendRe.FindStringSubmatch(raw); m != nil {
		for _, item := range numberRe.FindAllStringSubmatch(m[1], -1) {
			result.Recommendations = append(result.Recommendations, strings.TrimSpace(item[1]))
		}
		result.Sections.Recommendations = true
	}

	if items, ok := bulletItems(detailsRe, raw); ok {
		// "label: value" split on the first colon; colon-less lines dropped
		for _, line := range items {
			key, value, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			result.Details[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		result.Sections.Details = true
	}

	return result
}

// bulletItems captures the "- " items following a section label.
func bulletItems(re *regexp.Regexp, raw string) ([]string, bool) {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}

	var items []string
	for _, item := range bulletRe.FindAllStringSubmatch(m[1], -1) {
		items = append(items, strings.TrimSpace(item[1]))
	}
	return items, true
}

// parseMissingKeywords splits the optional "(sugerencia: ...)" annotation
// off each missing-keyword line.
func parseMissingKeywords(items []string) []MissingKeyword {
	keywords := make([]MissingKeyword, 0, len(items))
	for _, item := range items {
		if m := suggestRe.FindStringSubmatch(item); m != nil {
			keywords = append(keywords, MissingKeyword{
				Keyword:    strings.TrimSpace(m[1]),
				Suggestion: strings.TrimSpace(m[2]),
			})
			continue
		}
		keywords = append(keywords, MissingKeyword{Keyword: item})
	}
	return keywords
}

// ScoreColor maps a score to the display color used by clients.
func ScoreColor(score int) string {
	switch {
	case score >= 80:
		return "green"
	case score >= 60:
		return "orange"
	default:
		return "red"
	}
}

// ScoreEmoji maps a score to the indicator shown next to it.
func ScoreEmoji(score int) string {
	switch {
	case score >= 80:
		return "✅"
	case score >= 60:
		return "⚠️"
	default:
		return "❌"
	}
}
