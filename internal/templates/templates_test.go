package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "classic", input: "classic", expected: "classic"},
		{name: "modern", input: "modern", expected: "modern"},
		{name: "minimal", input: "minimal", expected: "minimal"},
		{name: "creative", input: "creative", expected: "creative"},
		{name: "case insensitive", input: "CLASSIC", expected: "classic"},
		{name: "unknown falls back", input: "retro", expected: "modern"},
		{name: "empty falls back", input: "", expected: "modern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Get(tt.input).Name)
		})
	}
}

func TestGetByDisplayName(t *testing.T) {
	assert.Equal(t, "classic", GetByDisplayName("Clásico").Name)
	assert.Equal(t, "creative", GetByDisplayName("Creativo").Name)
	assert.Equal(t, "modern", GetByDisplayName("Inexistente").Name)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Clásico", "Moderno", "Minimalista", "Creativo"}, Names())
}

func TestTemplateDefinitions(t *testing.T) {
	classic := Get("classic")
	assert.Equal(t, "Times-Roman", classic.Fonts.Main)
	assert.True(t, classic.UseDividers)
	assert.Equal(t, "thin", classic.DividerStyle)
	// classic has no accent, so it falls back to primary
	assert.Equal(t, "#000000", classic.AccentColor())

	modern := Get("modern")
	assert.Equal(t, "#3498DB", modern.AccentColor())
	assert.Equal(t, 18, modern.FontSizes.Name)
	assert.Equal(t, 0.08, modern.Spacing.Section)

	minimal := Get("minimal")
	assert.False(t, minimal.UseDividers)
	assert.Equal(t, "none", minimal.DividerStyle)
	assert.Equal(t, 20, minimal.FontSizes.Name)

	creative := Get("creative")
	assert.Equal(t, "#E74C3C", creative.Colors.Divider)
	assert.Equal(t, 22, creative.FontSizes.Name)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	assert.Len(t, all, 4)
	all[0].Name = "mutated"
	assert.Equal(t, "classic", All()[0].Name)
}
