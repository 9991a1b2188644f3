// Package validators checks user-entered form fields before they are
// assembled into a CV document. Messages are user-facing and in Spanish.
package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate is safe for concurrent use.
var validate = validator.New()

var (
	phoneRe       = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	nonDigitRe    = regexp.MustCompile(`\D`)
	nameRe        = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s'\-]+$`)
	companyRe     = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑüÜ\s\.\,\&\-\(\)]+$`)
	jobTitleRe    = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑüÜ\s\/\-\.\,\(\)]+$`)
	controlRunRe  = regexp.MustCompile(`[\x00-\x08\x0B-\x0C\x0E-\x1F\x7F]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	urlSchemeRe   = regexp.MustCompile(`^https?://`)
)

// FieldError is a validation failure with a message suitable for display.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail requires a well-formed address at most 254 characters long.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &FieldError{Field: "email", Message: "El email es requerido"}
	}
	if len(email) > 254 {
		return &FieldError{Field: "email", Message: "Email demasiado largo (máx. 254 caracteres)"}
	}
	if err := validate.Var(email, "email"); err != nil {
		return &FieldError{Field: "email", Message: "Formato de email inválido (ej: nombre@correo.com)"}
	}
	return nil
}

// ValidatePhone accepts an empty value; otherwise digits, spaces and the
// symbols + - ( ), with 7 to 15 digits overall.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	if !phoneRe.MatchString(phone) {
		return &FieldError{Field: "phone", Message: "Teléfono solo puede contener números, +, -, ( )"}
	}
	digits := nonDigitRe.ReplaceAllString(phone, "")
	if len(digits) < 7 {
		return &FieldError{Field: "phone", Message: "Teléfono debe tener al menos 7 dígitos"}
	}
	if len(digits) > 15 {
		return &FieldError{Field: "phone", Message: "Teléfono demasiado largo (máx. 15 dígitos)"}
	}
	return nil
}

// ValidateName requires 2 to 100 characters of letters, spaces, accents,
// apostrophes and hyphens.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &FieldError{Field: "name", Message: "El nombre completo es requerido"}
	}
	if len([]rune(name)) < 2 {
		return &FieldError{Field: "name", Message: "Nombre debe tener al menos 2 caracteres"}
	}
	if len([]rune(name)) > 100 {
		return &FieldError{Field: "name", Message: "Nombre demasiado largo (máx. 100 caracteres)"}
	}
	if !nameRe.MatchString(name) {
		return &FieldError{Field: "name", Message: "Nombre solo puede contener letras, espacios, ' y -"}
	}
	return nil
}

// ValidateURL accepts an empty value; otherwise an http(s) URL up to 500
// characters.
func ValidateURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	if len(url) > 500 {
		return &FieldError{Field: "url", Message: "URL demasiado larga (máx. 500 caracteres)"}
	}
	if !urlSchemeRe.MatchString(url) || validate.Var(url, "url") != nil {
		return &FieldError{Field: "url", Message: "URL inválida (debe comenzar con http:// o https://)"}
	}
	return nil
}

// ValidateTextLength checks a free-text field against a length range. A min
// of zero makes the field optional. fieldName appears in the message.
func ValidateTextLength(text string, minLen, maxLen int, fieldName string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		if minLen > 0 {
			return &FieldError{Field: fieldName, Message: fmt.Sprintf("%s es requerido", fieldName)}
		}
		return nil
	}
	length := len([]rune(text))
	if length < minLen {
		return &FieldError{Field: fieldName, Message: fmt.Sprintf("%s debe tener al menos %d caracteres", fieldName, minLen)}
	}
	if length > maxLen {
		return &FieldError{Field: fieldName, Message: fmt.Sprintf("%s demasiado largo (máx. %d caracteres)", fieldName, maxLen)}
	}
	return nil
}

// ValidateCompanyName accepts an empty value; otherwise 2 to 150 characters
// of letters, digits and common punctuation.
func ValidateCompanyName(company string) error {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil
	}
	if len([]rune(company)) < 2 {
		return &FieldError{Field: "company", Message: "Nombre de empresa debe tener al menos 2 caracteres"}
	}
	if len([]rune(company)) > 150 {
		return &FieldError{Field: "company", Message: "Nombre de empresa demasiado largo (máx. 150 caracteres)"}
	}
	if !companyRe.MatchString(company) {
		return &FieldError{Field: "company", Message: "Nombre de empresa contiene caracteres no permitidos"}
	}
	return nil
}

// ValidateJobTitle accepts an empty value; otherwise 2 to 150 characters of
// letters, digits and common punctuation.
func ValidateJobTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	if len([]rune(title)) < 2 {
		return &FieldError{Field: "job_title", Message: "Título debe tener al menos 2 caracteres"}
	}
	if len([]rune(title)) > 150 {
		return &FieldError{Field: "job_title", Message: "Título demasiado largo (máx. 150 caracteres)"}
	}
	if !jobTitleRe.MatchString(title) {
		return &FieldError{Field: "job_title", Message: "Título contiene caracteres no permitidos"}
	}
	return nil
}

// SanitizeText strips control characters (newlines and tabs become plain
// spaces along with every other whitespace run) and trims the result.
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}
	text = controlRunRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
