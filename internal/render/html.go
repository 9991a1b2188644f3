// Package render turns generated CV text into a styled HTML document and
// prints it to PDF through a headless browser.
//
// The input is the lightly-marked text a generation provider produces:
// a contact header block, "**SECTION**" headings, bold subheadings, date
// lines and bullet lists. Classification is per line.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mvarela/cv-alchemist/internal/templates"
)

var (
	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	boldRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// monthMarkers flag a line as secondary text (dates, locations).
var monthMarkers = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	"Actualidad", "Present",
}

// BuildHTML renders CV text into a self-contained HTML document styled by
// the given template.
func BuildHTML(content string, tpl templates.CVTemplate, title string) string {
	lines := strings.Split(content, "\n")
	headerLines, bodyStart := splitHeader(lines)

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + escapeHTML(title) + "</title>\n")
	sb.WriteString("<style>\n" + stylesheet(tpl) + "</style>\n</head>\n<body>\n")

	writeHeader(&sb, headerLines, tpl)

	for _, raw := range lines[bodyStart:] {
		line := strings.TrimSpace(raw)
		if line == "" {
			sb.WriteString("<div class=\"gap\"></div>\n")
			continue
		}

		switch {
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
			heading := strings.TrimSpace(strings.Trim(line, "*"))
			sb.WriteString("<h2 class=\"section\">" + escapeHTML(heading) + "</h2>\n")

		case strings.Contains(line, "**") && !strings.HasPrefix(line, "▶"):
			sb.WriteString("<p class=\"subheading\">" + inlineBold(line) + "</p>\n")

		case isSecondary(line):
			sb.WriteString("<p class=\"secondary\">" + escapeHTML(line) + "</p>\n")

		case strings.HasPrefix(line, "▶"):
			text := strings.Replace(line, "▶", "•", 1)
			sb.WriteString("<p class=\"subheading\">" + inlineBold(text) + "</p>\n")

		case strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-"):
			text := strings.TrimSpace(strings.TrimLeft(line, "•-"))
			sb.WriteString("<p class=\"bullet\"><span class=\"dot\">•</span> " + inlineBold(text) + "</p>\n")

		default:
			sb.WriteString("<p class=\"body\">" + inlineBold(line) + "</p>\n")
		}
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

// splitHeader collects the leading contact block: lines up to the first
// blank line that carry contact markers, plus up to three leading lines
// without them.
func splitHeader(lines []string) ([]string, int) {
	var header []string
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			return header, i + 1
		}
		if isContactLine(line) || i < 3 {
			header = append(header, line)
			continue
		}
		return header, i
	}
	return header, len(lines)
}

func isContactLine(line string) bool {
	if strings.Contains(line, "|") || strings.Contains(line, "@") {
		return true
	}
	lower := strings.ToLower(line)
	return strings.Contains(lower, "linkedin") ||
		strings.Contains(lower, "github") ||
		strings.Contains(lower, "portfolio")
}

func writeHeader(sb *strings.Builder, headerLines []string, tpl templates.CVTemplate) {
	if len(headerLines) == 0 {
		return
	}

	// first line is the name, truncated at the first pipe
	name, _, _ := strings.Cut(headerLines[0], "|")
	sb.WriteString("<h1 class=\"name\">" + escapeHTML(strings.TrimSpace(name)) + "</h1>\n")

	contactStart := 1
	if len(headerLines) > 1 && !strings.Contains(headerLines[1], "|") {
		sb.WriteString("<p class=\"headline\">" + escapeHTML(headerLines[1]) + "</p>\n")
		contactStart = 2
	}

	var contactParts []string
	seen := map[string]bool{}
	for _, line := range headerLines[contactStart:] {
		for _, part := range strings.Split(line, "|") {
			part = strings.TrimSpace(part)
			if part != "" && !seen[part] {
				seen[part] = true
				contactParts = append(contactParts, part)
			}
		}
	}
	if len(contactParts) > 0 {
		sb.WriteString("<p class=\"contact\">" + escapeHTML(strings.Join(contactParts, " • ")) + "</p>\n")
	}

	if tpl.UseDividers {
		sb.WriteString("<hr class=\"header-rule\">\n")
	}
}

func isSecondary(line string) bool {
	if strings.Contains(line, "·") || strings.Contains(line, "–") {
		return true
	}
	for _, marker := range monthMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// inlineBold converts "**run**" spans to <b> elements and escapes everything
// else.
func inlineBold(text string) string {
	var sb strings.Builder
	last := 0
	for _, m := range boldRe.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(escapeHTML(text[last:m[0]]))
		sb.WriteString("<b>" + escapeHTML(text[m[2]:m[3]]) + "</b>")
		last = m[1]
	}
	sb.WriteString(escapeHTML(text[last:]))
	return sb.String()
}

// stylesheet maps a visual template onto CSS for the classified elements.
func stylesheet(tpl templates.CVTemplate) string {
	accent := tpl.AccentColor()
	sectionRule := "none"
	if tpl.UseDividers {
		sectionRule = fmt.Sprintf("%s solid %s", dividerWidth(tpl.DividerStyle), dividerColor(tpl, accent))
	}

	return fmt.Sprintf(`body {
  font-family: %s;
  color: %s;
  font-size: %dpt;
  margin: 0;
  line-height: 1.4;
}
.name { font-size: %dpt; color: %s; text-align: center; margin: 0 0 4pt; }
.headline { font-size: %dpt; color: %s; text-align: center; margin: 0 0 12pt; }
.contact { font-size: %dpt; color: %s; text-align: center; margin: 0 0 8pt; }
.header-rule { border: none; border-top: 1px solid %s; margin: 4pt 0 12pt; }
.section { font-size: %dpt; color: %s; border-bottom: %s; margin: %.2fin 0 6pt; padding-bottom: 3pt; }
.subheading { font-size: %dpt; color: %s; font-weight: bold; margin: %.2fin 0 3pt; }
.secondary { font-size: %dpt; color: %s; margin: 0 0 4pt; }
.body { font-size: %dpt; margin: 0 0 %.2fin; text-align: justify; }
.bullet { font-size: %dpt; margin: 0 0 4pt 12pt; }
.dot { color: %s; }
.gap { height: 0.08in; }
`,
		fontFamily(tpl.Fonts.Main),
		tpl.Colors.Text,
		tpl.FontSizes.Body,
		tpl.FontSizes.Name, tpl.Colors.Primary,
		tpl.FontSizes.Title, accent,
		tpl.FontSizes.Contact, tpl.Colors.Secondary,
		tpl.Colors.Divider,
		tpl.FontSizes.Section, accent, sectionRule, tpl.Spacing.Section,
		tpl.FontSizes.Subheading, tpl.Colors.Primary, tpl.Spacing.Subsection,
		tpl.FontSizes.Secondary, tpl.Colors.Secondary,
		tpl.FontSizes.Body, tpl.Spacing.Paragraph,
		tpl.FontSizes.Body,
		accent,
	)
}

func fontFamily(main string) string {
	if strings.HasPrefix(main, "Times") {
		return `"Times New Roman", Times, serif`
	}
	return "Helvetica, Arial, sans-serif"
}

func dividerWidth(style string) string {
	switch style {
	case "bold":
		return "3px"
	case "colored":
		return "2px"
	default:
		return "1px"
	}
}

func dividerColor(tpl templates.CVTemplate, accent string) string {
	if tpl.DividerStyle == "thin" {
		return tpl.Colors.Divider
	}
	return accent
}
