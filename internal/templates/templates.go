// Package templates defines the visual styles available for rendered CV
// documents: palette, type scale and spacing for each named template.
package templates

import "strings"

// DefaultName is used when a requested template does not exist.
const DefaultName = "modern"

// Palette holds the hex colors of a template. Accent falls back to Primary
// when empty.
type Palette struct {
	Primary   string `json:"primary"`
	Accent    string `json:"accent,omitempty"`
	Text      string `json:"text"`
	Secondary string `json:"secondary"`
	Divider   string `json:"divider"`
}

// FontSet names the main, bold and italic faces of a template.
type FontSet struct {
	Main   string `json:"main"`
	Bold   string `json:"bold"`
	Italic string `json:"italic"`
}

// FontSizes is the point size per text role.
type FontSizes struct {
	Name       int `json:"name"`
	Title      int `json:"title"`
	Contact    int `json:"contact"`
	Section    int `json:"section"`
	Subheading int `json:"subheading"`
	Body       int `json:"body"`
	Secondary  int `json:"secondary"`
}

// Spacing is the vertical rhythm in inches.
type Spacing struct {
	Section    float64 `json:"section"`
	Subsection float64 `json:"subsection"`
	Paragraph  float64 `json:"paragraph"`
}

// CVTemplate is a complete visual style for a rendered CV.
type CVTemplate struct {
	Name         string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	Description  string    `json:"description"`
	Colors       Palette   `json:"colors"`
	Fonts        FontSet   `json:"fonts"`
	Layout       string    `json:"layout"`
	FontSizes    FontSizes `json:"font_sizes"`
	Spacing      Spacing   `json:"spacing"`
	UseDividers  bool      `json:"use_dividers"`
	DividerStyle string    `json:"divider_style"`
}

// AccentColor returns the accent color, or the primary when no accent is set.
func (t CVTemplate) AccentColor() string {
	if t.Colors.Accent != "" {
		return t.Colors.Accent
	}
	return t.Colors.Primary
}

var classic = CVTemplate{
	Name:        "classic",
	DisplayName: "Clásico",
	Description: "Formal y tradicional. Ideal para sectores conservadores (legal, finanzas, gobierno).",
	Colors: Palette{
		Primary:   "#000000",
		Text:      "#000000",
		Secondary: "#666666",
		Divider:   "#000000",
	},
	Fonts: FontSet{
		Main:   "Times-Roman",
		Bold:   "Times-Bold",
		Italic: "Times-Italic",
	},
	Layout: "single_column",
	FontSizes: FontSizes{
		Name:       16,
		Title:      10,
		Contact:    8,
		Section:    11,
		Subheading: 9,
		Body:       9,
		Secondary:  8,
	},
	Spacing:      Spacing{Section: 0.1, Subsection: 0.06, Paragraph: 0.04},
	UseDividers:  true,
	DividerStyle: "thin",
}

var modern = CVTemplate{
	Name:        "modern",
	DisplayName: "Moderno",
	Description: "Profesional y actual. Ideal para tech, startups y empresas innovadoras.",
	Colors: Palette{
		Primary:   "#2C3E50",
		Accent:    "#3498DB",
		Text:      "#2C3E50",
		Secondary: "#7F8C8D",
		Divider:   "#BDC3C7",
	},
	Fonts: FontSet{
		Main:   "Helvetica",
		Bold:   "Helvetica-Bold",
		Italic: "Helvetica-Oblique",
	},
	Layout: "single_column_emphasis",
	FontSizes: FontSizes{
		Name:       18,
		Title:      11,
		Contact:    8,
		Section:    12,
		Subheading: 10,
		Body:       9,
		Secondary:  8,
	},
	Spacing:      Spacing{Section: 0.08, Subsection: 0.05, Paragraph: 0.03},
	UseDividers:  true,
	DividerStyle: "colored",
}

var minimal = CVTemplate{
	Name:        "minimal",
	DisplayName: "Minimalista",
	Description: "Limpio y elegante. Ideal para diseño, UX/UI y portfolios creativos.",
	Colors: Palette{
		Primary:   "#000000",
		Accent:    "#000000",
		Text:      "#000000",
		Secondary: "#666666",
		Divider:   "#E0E0E0",
	},
	Fonts: FontSet{
		Main:   "Helvetica",
		Bold:   "Helvetica-Bold",
		Italic: "Helvetica-Oblique",
	},
	Layout: "single_column_spacious",
	FontSizes: FontSizes{
		Name:       20,
		Title:      10,
		Contact:    8,
		Section:    10,
		Subheading: 9,
		Body:       9,
		Secondary:  8,
	},
	Spacing:      Spacing{Section: 0.12, Subsection: 0.08, Paragraph: 0.05},
	UseDividers:  false,
	DividerStyle: "none",
}

var creative = CVTemplate{
	Name:        "creative",
	DisplayName: "Creativo",
	Description: "Vibrante y llamativo. Ideal para marketing, publicidad y roles creativos.",
	Colors: Palette{
		Primary:   "#2C3E50",
		Accent:    "#E74C3C",
		Text:      "#2C3E50",
		Secondary: "#95A5A6",
		Divider:   "#E74C3C",
	},
	Fonts: FontSet{
		Main:   "Helvetica",
		Bold:   "Helvetica-Bold",
		Italic: "Helvetica-Oblique",
	},
	Layout: "single_column_bold",
	FontSizes: FontSizes{
		Name:       22,
		Title:      12,
		Contact:    9,
		Section:    13,
		Subheading: 10,
		Body:       9,
		Secondary:  8,
	},
	Spacing:      Spacing{Section: 0.1, Subsection: 0.06, Paragraph: 0.04},
	UseDividers:  true,
	DividerStyle: "bold",
}

// ordered keeps the presentation order stable.
var ordered = []CVTemplate{classic, modern, minimal, creative}

// Get returns the template with the given name, case-insensitively. Unknown
// names fall back to the modern template.
func Get(name string) CVTemplate {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range ordered {
		if t.Name == name {
			return t
		}
	}
	return modern
}

// GetByDisplayName resolves a template from its user-visible name, falling
// back to the modern template.
func GetByDisplayName(displayName string) CVTemplate {
	for _, t := range ordered {
		if t.DisplayName == displayName {
			return t
		}
	}
	return modern
}

// All returns every template in presentation order.
func All() []CVTemplate {
	out := make([]CVTemplate, len(ordered))
	copy(out, ordered)
	return out
}

// Names returns the user-visible names in presentation order.
func Names() []string {
	names := make([]string, len(ordered))
	for i, t := range ordered {
		names[i] = t.DisplayName
	}
	return names
}
