// Package prompts provides the instruction templates sent to the generation
// providers, one per artifact type. Templates are stored as text files and
// embedded at compile time.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed templates/*.txt
var promptFiles embed.FS

// cache stores loaded templates to avoid repeated filesystem reads
var (
	cache   = make(map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt template by filename (e.g. "master.txt").
// The filename should not include the templates/ prefix.
func Get(filename string) (string, error) {
	cacheMu.RLock()
	if tmpl, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return tmpl, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile("templates/" + filename)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt template %s: %w", filename, err)
	}

	tmpl := string(data)

	cacheMu.Lock()
	cache[filename] = tmpl
	cacheMu.Unlock()

	return tmpl, nil
}

// MustGet retrieves a prompt template, panicking if not found.
// All templates are embedded, so a panic here means a build defect.
func MustGet(filename string) string {
	tmpl, err := Get(filename)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt template: %v", err))
	}
	return tmpl
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. Values are inserted verbatim; no escaping is applied, so
// delimiter-like substrings in the inputs pass through unchanged.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// ClearCache clears the template cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]string)
	cacheMu.Unlock()
}
