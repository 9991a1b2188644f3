package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr string
	}{
		{name: "valid", email: "nombre@correo.com"},
		{name: "valid with plus tag", email: "nombre+tag@correo.com.ar"},
		{name: "trims whitespace", email: "  nombre@correo.com  "},
		{name: "empty", email: "", wantErr: "requerido"},
		{name: "whitespace only", email: "   ", wantErr: "requerido"},
		{name: "missing at", email: "nombre.correo.com", wantErr: "inválido"},
		{name: "missing tld", email: "nombre@correo", wantErr: "inválido"},
		{name: "too long", email: strings.Repeat("a", 250) + "@b.com", wantErr: "demasiado largo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr string
	}{
		{name: "optional", phone: ""},
		{name: "plain digits", phone: "1155551234"},
		{name: "formatted", phone: "+54 (11) 5555-1234"},
		{name: "letters", phone: "11-5555-ABCD", wantErr: "solo puede contener"},
		{name: "too short", phone: "123456", wantErr: "al menos 7"},
		{name: "too long", phone: "1234567890123456", wantErr: "demasiado largo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: "María José Pérez"},
		{name: "apostrophe and hyphen", input: "O'Brien-García"},
		{name: "empty", input: "", wantErr: "requerido"},
		{name: "single char", input: "A", wantErr: "al menos 2"},
		{name: "digits", input: "Juan 123", wantErr: "solo puede contener"},
		{name: "too long", input: strings.Repeat("a", 101), wantErr: "demasiado largo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "optional", url: ""},
		{name: "https", url: "https://linkedin.com/in/perfil"},
		{name: "http", url: "http://ejemplo.com"},
		{name: "no scheme", url: "linkedin.com/in/perfil", wantErr: "URL inválida"},
		{name: "ftp scheme", url: "ftp://ejemplo.com", wantErr: "URL inválida"},
		{name: "too long", url: "https://ejemplo.com/" + strings.Repeat("a", 500), wantErr: "demasiado larga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateTextLength(t *testing.T) {
	assert.NoError(t, ValidateTextLength("", 0, 100, "Resumen"))
	assert.ErrorContains(t, ValidateTextLength("", 10, 100, "Resumen"), "Resumen es requerido")
	assert.ErrorContains(t, ValidateTextLength("corto", 10, 100, "Resumen"), "al menos 10")
	assert.ErrorContains(t, ValidateTextLength(strings.Repeat("x", 101), 0, 100, "Resumen"), "demasiado largo")
	assert.NoError(t, ValidateTextLength("suficientemente largo", 10, 100, "Resumen"))
}

func TestValidateCompanyName(t *testing.T) {
	assert.NoError(t, ValidateCompanyName(""))
	assert.NoError(t, ValidateCompanyName("Acme S.A. (Argentina) & Cía."))
	assert.ErrorContains(t, ValidateCompanyName("X"), "al menos 2")
	assert.ErrorContains(t, ValidateCompanyName("Acme <script>"), "caracteres no permitidos")
	assert.ErrorContains(t, ValidateCompanyName(strings.Repeat("a", 151)), "demasiado largo")
}

func TestValidateJobTitle(t *testing.T) {
	assert.NoError(t, ValidateJobTitle(""))
	assert.NoError(t, ValidateJobTitle("Desarrollador Backend Sr. (Python/Go)"))
	assert.ErrorContains(t, ValidateJobTitle("X"), "al menos 2")
	assert.ErrorContains(t, ValidateJobTitle("Dev & Ops"), "caracteres no permitidos")
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "control chars stripped", input: "hola\x00\x07mundo", expected: "holamundo"},
		{name: "whitespace collapsed", input: "hola   \t  mundo", expected: "hola mundo"},
		{name: "newlines collapsed", input: "hola\nmundo", expected: "hola mundo"},
		{name: "trimmed", input: "  hola  ", expected: "hola"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeText(tt.input))
		})
	}
}
