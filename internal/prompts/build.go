package prompts

import "strings"

// SentinelInsufficientData is the literal token the model is instructed to
// return from a targeted-CV prompt when the master CV carries no usable
// content (only name/contact lines). Callers must inspect raw replies for
// this token before treating them as CV text.
const SentinelInsufficientData = "ERROR_DATOS_INSUFICIENTES"

// Delimiters framing each embedded document. These are load-bearing: the
// model is told where each document starts and ends, and tests pin them.
const (
	BaseCVStart  = "--- INICIO DEL CV BASE ---"
	BaseCVEnd    = "--- FIN DEL CV BASE ---"
	StudiesStart = "--- INICIO DEL PROGRAMA DE ESTUDIOS ---"
	StudiesEnd   = "--- FIN DEL PROGRAMA DE ESTUDIOS ---"
	MasterStart  = "--- INICIO DEL CV MAESTRO ---"
	MasterEnd    = "--- FIN DEL CV MAESTRO ---"
	JobStart     = "--- INICIO DE LA DESCRIPCIÓN DEL PUESTO ---"
	JobEnd       = "--- FIN DE LA DESCRIPCIÓN DEL PUESTO ---"
	CVStart      = "--- INICIO DEL CV ---"
	CVEnd        = "--- FIN DEL CV ---"
)

// BuildMaster produces the prompt that consolidates a base CV and optional
// supplementary studies into a master CV. Empty inputs are legal and simply
// yield a sparser prompt.
func BuildMaster(cvText, newStudies string) string {
	return Format(MustGet("master.txt"), map[string]string{
		"CVText":     cvText,
		"NewStudies": newStudies,
	})
}

// BuildTargeted produces the prompt that tailors a master CV to a job
// description. It includes the insufficient-data pre-check directing the
// model to answer with SentinelInsufficientData instead of a CV when the
// master CV has no experience, education, project or skill content.
func BuildTargeted(masterCV, jobDescription string) string {
	return Format(MustGet("targeted.txt"), map[string]string{
		"Sentinel":       SentinelInsufficientData,
		"MasterCV":       masterCV,
		"JobDescription": jobDescription,
	})
}

// BuildLinkedIn produces the prompt that derives a LinkedIn profile from a
// master CV. The bolded section headers demanded of the model are fixed
// vocabulary consumed downstream; they must not drift.
func BuildLinkedIn(masterCV string) string {
	return Format(MustGet("linkedin.txt"), map[string]string{
		"MasterCV": masterCV,
	})
}

// BuildJobStructuring produces the prompt that cleans a raw job posting
// into a fixed section set, omitting sections with no evidence in the text.
func BuildJobStructuring(rawJobDescription string) string {
	return Format(MustGet("job_structuring.txt"), map[string]string{
		"RawJobDescription": rawJobDescription,
	})
}

// BuildATSAnalysis produces the ATS compatibility analysis prompt. The job
// description is optional; when present it is framed in its own delimited
// block and the keyword criteria reference the posting.
func BuildATSAnalysis(cvContent, jobDescription string) string {
	jobSection := "\n"
	keywordCriteria := "- ¿Contiene palabras clave técnicas y profesionales relevantes?"

	if strings.TrimSpace(jobDescription) != "" {
		jobSection = "\n--- DESCRIPCIÓN DEL PUESTO ---\n" + jobDescription + "\n--- FIN DESCRIPCIÓN ---\n"
		keywordCriteria = "- ¿Contiene palabras clave relevantes de la descripción del puesto?\n" +
			"- ¿Coincide con los requisitos técnicos del puesto?"
	}

	return Format(MustGet("ats_analysis.txt"), map[string]string{
		"JobSection":      jobSection,
		"CVContent":       cvContent,
		"KeywordCriteria": keywordCriteria,
	})
}
