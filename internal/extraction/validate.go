// Package extraction turns uploaded PDF byte streams into normalized text,
// with pre-flight validation of the stream itself.
package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// DefaultMaxSizeMB is the upload size cap applied when the caller does
	// not configure one.
	DefaultMaxSizeMB = 10

	// lowTextThreshold is the extracted-character count below which the
	// document is likely a scan. There is no OCR here, so the caller gets a
	// warning instead of silent garbage.
	lowTextThreshold = 50
)

// pdfMagic is the standard PDF file signature.
var pdfMagic = []byte("%PDF-")

// Metadata describes a validated document.
type Metadata struct {
	NumPages   int     `json:"num_pages"`
	TextLength int     `json:"text_length"`
	FileSizeMB float64 `json:"file_size_mb"`
}

// Validation is the structured outcome of pre-flight validation.
// Failures are data, not errors: callers inspect Valid and show Message.
type Validation struct {
	Valid    bool     `json:"valid"`
	Message  string   `json:"message,omitempty"`
	Warning  string   `json:"warning,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Validate checks a PDF byte stream before extraction: size cap, magic
// bytes, encryption, readable structure, and extractable-text yield.
func Validate(data []byte, maxSizeMB int) Validation {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}

	sizeMB := float64(len(data)) / (1024 * 1024)
	if sizeMB > float64(maxSizeMB) {
		return Validation{
			Message: fmt.Sprintf("El archivo es demasiado grande (%.1fMB). Máximo permitido: %dMB", sizeMB, maxSizeMB),
		}
	}

	if !bytes.HasPrefix(data, pdfMagic) {
		return Validation{
			Message: "El archivo no es un PDF válido. Verifica que el archivo no esté corrupto.",
		}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "encrypt") {
			return Validation{
				Message: "El PDF está protegido con contraseña. Por favor, desbloquéalo antes de subirlo.",
			}
		}
		return Validation{
			Message: fmt.Sprintf("El PDF está corrupto o dañado: %v", err),
		}
	}

	text := extractPages(reader)
	textLength := len(strings.TrimSpace(text))

	warning := ""
	if textLength < lowTextThreshold {
		warning = "El PDF parece contener muy poco texto extraíble. " +
			"Puede ser una imagen escaneada. Los resultados pueden no ser óptimos."
	}

	return Validation{
		Valid:   true,
		Warning: warning,
		Metadata: Metadata{
			NumPages:   reader.NumPage(),
			TextLength: textLength,
			FileSizeMB: roundTo(sizeMB, 2),
		},
	}
}

func roundTo(v float64, places int) float64 {
	shift := 1.0
	for i := 0; i < places; i++ {
		shift *= 10
	}
	return float64(int(v*shift+0.5)) / shift
}
