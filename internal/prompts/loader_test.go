package prompts

import (
	"strings"
	"testing"
)

func TestGet_KnownTemplates(t *testing.T) {
	ClearCache()

	for _, name := range []string{
		"master.txt",
		"targeted.txt",
		"linkedin.txt",
		"job_structuring.txt",
		"ats_analysis.txt",
	} {
		tmpl, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q) returned error: %v", name, err)
			continue
		}
		if strings.TrimSpace(tmpl) == "" {
			t.Errorf("Get(%q) returned empty template", name)
		}
	}
}

func TestGet_UnknownTemplate(t *testing.T) {
	if _, err := Get("missing.txt"); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "single placeholder",
			template: "hello {{.Name}}",
			data:     map[string]string{"Name": "world"},
			expected: "hello world",
		},
		{
			name:     "repeated placeholder",
			template: "{{.X}} and {{.X}}",
			data:     map[string]string{"X": "a"},
			expected: "a and a",
		},
		{
			name:     "empty value",
			template: "[{{.V}}]",
			data:     map[string]string{"V": ""},
			expected: "[]",
		},
		{
			name:     "no placeholders",
			template: "static text",
			data:     map[string]string{"Unused": "x"},
			expected: "static text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.template, tt.data); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}
