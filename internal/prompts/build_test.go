package prompts

import (
	"strings"
	"testing"
)

// section extracts the text between a start and end delimiter, excluding the
// delimiter lines themselves.
func section(t *testing.T, prompt, start, end string) string {
	t.Helper()

	startIdx := strings.Index(prompt, start)
	if startIdx < 0 {
		t.Fatalf("prompt missing start delimiter %q", start)
	}
	rest := prompt[startIdx+len(start):]

	endIdx := strings.Index(rest, end)
	if endIdx < 0 {
		t.Fatalf("prompt missing end delimiter %q", end)
	}

	return strings.Trim(rest[:endIdx], "\n")
}

func TestBuildMaster_EmbedsInputsVerbatim(t *testing.T) {
	cvText := "Jane Doe | jane@x.com\n\n**Habilidades**\nSQL, Python"
	prompt := BuildMaster(cvText, "")

	if got := section(t, prompt, BaseCVStart, BaseCVEnd); got != cvText {
		t.Errorf("base CV section = %q, want %q", got, cvText)
	}
	if got := section(t, prompt, StudiesStart, StudiesEnd); got != "" {
		t.Errorf("studies section = %q, want empty", got)
	}
}

func TestBuildMaster_Deterministic(t *testing.T) {
	first := BuildMaster("cv body", "new diploma")
	second := BuildMaster("cv body", "new diploma")
	if first != second {
		t.Error("BuildMaster is not a pure function of its inputs")
	}
}

func TestBuildMaster_DelimiterLikeInputPassesThrough(t *testing.T) {
	// Inputs containing delimiter-like substrings are embedded verbatim,
	// not escaped.
	cvText := "before\n--- FIN DEL CV BASE ---\nafter"
	prompt := BuildMaster(cvText, "studies")
	if !strings.Contains(prompt, cvText) {
		t.Error("delimiter-like substring was altered")
	}
}

func TestBuildTargeted_IncludesSentinelPreCheck(t *testing.T) {
	prompt := BuildTargeted("Jane Doe | jane@x.com", "Data Analyst role")

	if !strings.Contains(prompt, SentinelInsufficientData) {
		t.Error("targeted prompt missing the insufficient-data sentinel token")
	}
	if !strings.Contains(prompt, "VERIFICACIÓN PREVIA OBLIGATORIA") {
		t.Error("targeted prompt missing the pre-check instruction block")
	}
	if got := section(t, prompt, MasterStart, MasterEnd); got != "Jane Doe | jane@x.com" {
		t.Errorf("master CV section = %q", got)
	}
	if got := section(t, prompt, JobStart, JobEnd); got != "Data Analyst role" {
		t.Errorf("job description section = %q", got)
	}
}

func TestBuildLinkedIn_RequiredHeaders(t *testing.T) {
	prompt := BuildLinkedIn("cv content")

	// The consuming side depends on these exact header literals.
	headers := []string{
		"**Titular (Headline)**",
		"**Acerca de — versión breve**",
		"**Acerca de — versión extendida**",
		"**Habilidades (Skills)**",
		"**Destacados recomendados (Featured)**",
	}
	for _, h := range headers {
		if !strings.Contains(prompt, h) {
			t.Errorf("LinkedIn prompt missing required header %q", h)
		}
	}
}

func TestBuildJobStructuring_SectionSet(t *testing.T) {
	prompt := BuildJobStructuring("raw posting text")

	for _, s := range []string{
		"**Título del Puesto**",
		"**Empresa**",
		"**Área**",
		"**Resumen del Rol**",
		"**Perfil Buscado (Soft Skills)**",
		"**Responsabilidades Clave**",
		"**Requisitos Técnicos**",
	} {
		if !strings.Contains(prompt, s) {
			t.Errorf("job structuring prompt missing section %q", s)
		}
	}
	if !strings.Contains(prompt, "raw posting text") {
		t.Error("job structuring prompt missing the raw text")
	}
}

func TestBuildATSAnalysis(t *testing.T) {
	t.Run("without job description", func(t *testing.T) {
		prompt := BuildATSAnalysis("cv body", "")
		if strings.Contains(prompt, "--- DESCRIPCIÓN DEL PUESTO ---") {
			t.Error("job section present despite empty job description")
		}
		if got := section(t, prompt, CVStart, CVEnd); got != "cv body" {
			t.Errorf("cv section = %q", got)
		}
	})

	t.Run("with job description", func(t *testing.T) {
		prompt := BuildATSAnalysis("cv body", "backend role")
		if !strings.Contains(prompt, "--- DESCRIPCIÓN DEL PUESTO ---") {
			t.Error("job section missing")
		}
		if !strings.Contains(prompt, "backend role") {
			t.Error("job description text missing")
		}
	})

	t.Run("response format labels", func(t *testing.T) {
		prompt := BuildATSAnalysis("cv body", "")
		for _, label := range []string{
			"**SCORE_ATS:**",
			"**NIVEL:**",
			"**PALABRAS_CLAVE_ENCONTRADAS:**",
			"**PALABRAS_CLAVE_FALTANTES:**",
			"**FORTALEZAS:**",
			"**DEBILIDADES:**",
			"**RECOMENDACIONES:**",
			"**DETALLES_POR_CRITERIO:**",
		} {
			if !strings.Contains(prompt, label) {
				t.Errorf("analysis prompt missing label %q", label)
			}
		}
	})
}
