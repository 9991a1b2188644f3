package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullForm() CVForm {
	return CVForm{
		FullName: "María Pérez",
		Email:    "maria@correo.com",
		Phone:    "+54 11 5555 1234",
		Location: "Buenos Aires, Argentina",
		Headline: "Desarrolladora Backend",
		Summary:  "Cinco años construyendo servicios en Go.",
		Jobs: []Job{
			{
				Title:            "Desarrolladora Sr.",
				Company:          "Acme",
				Location:         "Buenos Aires",
				From:             "01/2020",
				Current:          true,
				Responsibilities: "• Lideré la migración a microservicios.",
			},
		},
		Education: []Education{
			{Degree: "Licenciatura en Sistemas", Institution: "UBA", From: "03/2012", To: "12/2017"},
		},
		Projects: []Project{
			{Name: "Olist Marketplace", Description: "Análisis de ventas.", Link: "https://github.com/u/olist"},
		},
		Skills: "Go, SQL, Docker",
	}
}

func TestBuildCVText_FullForm(t *testing.T) {
	f := fullForm()
	text := f.BuildCVText()

	assert.True(t, strings.HasPrefix(text,
		"María Pérez | maria@correo.com | +54 11 5555 1234 | Buenos Aires, Argentina"))
	assert.Contains(t, text, "Desarrolladora Backend")
	assert.Contains(t, text, "**Resumen Profesional**")
	assert.Contains(t, text, "**Experiencia Profesional**")
	assert.Contains(t, text, "Desarrolladora Sr. / Acme / Buenos Aires")
	assert.Contains(t, text, "01/2020 – Actualidad")
	assert.Contains(t, text, "**Educación**")
	assert.Contains(t, text, "Licenciatura en Sistemas | UBA")
	assert.Contains(t, text, "03/2012 – 12/2017")
	assert.Contains(t, text, "**Proyectos Relevantes**")
	assert.Contains(t, text, "▶ Olist Marketplace")
	assert.Contains(t, text, "Enlace: https://github.com/u/olist")
	assert.Contains(t, text, "**Habilidades**")
	assert.Contains(t, text, "Go, SQL, Docker")
}

func TestBuildCVText_OmitsEmptySections(t *testing.T) {
	f := CVForm{FullName: "Ana Gómez", Email: "ana@correo.com"}
	text := f.BuildCVText()

	assert.Equal(t, "Ana Gómez | ana@correo.com", text)
	assert.NotContains(t, text, "**")
}

func TestBuildCVText_SkipsBlankEntries(t *testing.T) {
	f := CVForm{
		FullName: "Ana Gómez",
		Email:    "ana@correo.com",
		Jobs:     []Job{{}, {Title: "Dev"}},
		Projects: []Project{{Description: "sin nombre"}},
	}
	text := f.BuildCVText()

	assert.Contains(t, text, "**Experiencia Profesional**")
	assert.Contains(t, text, "Dev")
	// a project without a name is dropped along with its section
	assert.NotContains(t, text, "**Proyectos Relevantes**")
	assert.NotContains(t, text, "sin nombre")
}

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		current  bool
		expected string
	}{
		{name: "both", from: "01/2020", to: "06/2022", expected: "01/2020 – 06/2022"},
		{name: "current overrides to", from: "01/2020", to: "06/2022", current: true, expected: "01/2020 – Actualidad"},
		{name: "only from", from: "01/2020", expected: "01/2020"},
		{name: "only to", to: "06/2022", expected: "06/2022"},
		{name: "none", expected: ""},
		{name: "current only", current: true, expected: "Actualidad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPeriod(tt.from, tt.to, tt.current))
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	f := CVForm{
		FullName: "",
		Email:    "no-es-email",
		Phone:    "abc",
		Projects: []Project{{Name: "X", Link: "sin-esquema.com"}},
	}

	errs := f.Validate()

	assert.Len(t, errs, 4)
}

func TestValidate_ValidForm(t *testing.T) {
	f := fullForm()
	assert.Empty(t, f.Validate())
}
