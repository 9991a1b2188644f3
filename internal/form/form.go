// Package form turns a structured CV form payload into the plain CV text
// the master prompt consumes, with the same layout an uploaded CV would
// have: a contact line, bolded section headings and project markers.
package form

import (
	"strings"

	"github.com/mvarela/cv-alchemist/internal/validators"
)

// Job is one employment entry.
type Job struct {
	Title            string `json:"title"`
	Company          string `json:"company"`
	Location         string `json:"location"`
	From             string `json:"from"`
	To               string `json:"to"`
	Current          bool   `json:"current"`
	Responsibilities string `json:"responsibilities"`
}

// Education is one study entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
}

// Project is one portfolio entry.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// CVForm is the manual-entry alternative to uploading a PDF.
type CVForm struct {
	FullName  string      `json:"full_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Location  string      `json:"location"`
	Headline  string      `json:"headline"`
	Summary   string      `json:"summary"`
	Jobs      []Job       `json:"jobs"`
	Education []Education `json:"education"`
	Projects  []Project   `json:"projects"`
	Skills    string      `json:"skills"`
}

// Validate runs the field validators and returns every failure, so the
// client can show them all at once.
func (f *CVForm) Validate() []error {
	var errs []error

	appendErr := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	appendErr(validators.ValidateName(f.FullName))
	appendErr(validators.ValidateEmail(f.Email))
	appendErr(validators.ValidatePhone(f.Phone))
	appendErr(validators.ValidateTextLength(f.Summary, 0, 5000, "Resumen"))
	appendErr(validators.ValidateTextLength(f.Skills, 0, 5000, "Habilidades"))

	for _, job := range f.Jobs {
		appendErr(validators.ValidateJobTitle(job.Title))
		appendErr(validators.ValidateCompanyName(job.Company))
		appendErr(validators.ValidateTextLength(job.Responsibilities, 0, 5000, "Responsabilidades"))
	}
	for _, project := range f.Projects {
		appendErr(validators.ValidateURL(project.Link))
	}

	return errs
}

// BuildCVText assembles the plain CV text from the form fields. Empty
// sections are omitted entirely.
func (f *CVForm) BuildCVText() string {
	var lines []string

	contactParts := make([]string, 0, 4)
	for _, part := range []string{f.FullName, f.Email, f.Phone, f.Location} {
		if p := strings.TrimSpace(part); p != "" {
			contactParts = append(contactParts, p)
		}
	}
	lines = append(lines, strings.Join(contactParts, " | "), "")

	if headline := strings.TrimSpace(f.Headline); headline != "" {
		lines = append(lines, headline, "")
	}

	if summary := strings.TrimSpace(f.Summary); summary != "" {
		lines = append(lines, "**Resumen Profesional**", summary, "")
	}

	if jobLines := buildJobs(f.Jobs); len(jobLines) > 0 {
		lines = append(lines, "**Experiencia Profesional**")
		lines = append(lines, jobLines...)
		lines = append(lines, "")
	}

	if eduLines := buildEducation(f.Education); len(eduLines) > 0 {
		lines = append(lines, "**Educación**")
		lines = append(lines, eduLines...)
		lines = append(lines, "")
	}

	if projLines := buildProjects(f.Projects); len(projLines) > 0 {
		lines = append(lines, "**Proyectos Relevantes**")
		lines = append(lines, projLines...)
		lines = append(lines, "")
	}

	if skills := strings.TrimSpace(f.Skills); skills != "" {
		lines = append(lines, "**Habilidades**", skills, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func buildJobs(jobs []Job) []string {
	var lines []string
	for _, job := range jobs {
		title := strings.TrimSpace(job.Title)
		company := strings.TrimSpace(job.Company)
		if title == "" && company == "" {
			continue
		}

		if header := joinNonEmpty(" / ", title, company, strings.TrimSpace(job.Location)); header != "" {
			lines = append(lines, header)
		}
		if period := formatPeriod(job.From, job.To, job.Current); period != "" {
			lines = append(lines, period)
		}
		if resp := strings.TrimSpace(job.Responsibilities); resp != "" {
			lines = append(lines, resp)
		}
		lines = append(lines, "")
	}
	return lines
}

func buildEducation(entries []Education) []string {
	var lines []string
	for _, edu := range entries {
		degree := strings.TrimSpace(edu.Degree)
		institution := strings.TrimSpace(edu.Institution)
		if degree == "" && institution == "" {
			continue
		}

		if header := joinNonEmpty(" | ", degree, institution); header != "" {
			lines = append(lines, header)
		}
		if period := formatPeriod(edu.From, edu.To, edu.Current); period != "" {
			lines = append(lines, period)
		}
		lines = append(lines, "")
	}
	return lines
}

func buildProjects(projects []Project) []string {
	var lines []string
	for _, project := range projects {
		name := strings.TrimSpace(project.Name)
		if name == "" {
			continue
		}

		lines = append(lines, "▶ "+name)
		if desc := strings.TrimSpace(project.Description); desc != "" {
			lines = append(lines, desc)
		}
		if link := strings.TrimSpace(project.Link); link != "" {
			lines = append(lines, "Enlace: "+link)
		}
		lines = append(lines, "")
	}
	return lines
}

// formatPeriod renders "MM/YYYY – MM/YYYY", with "Actualidad" as the end
// when the entry is current.
func formatPeriod(from, to string, current bool) string {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if current {
		to = "Actualidad"
	}

	switch {
	case from != "" && to != "":
		return from + " – " + to
	case from != "":
		return from
	default:
		return to
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
