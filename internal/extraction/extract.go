package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// File is an uploaded document: the original filename plus its bytes.
type File struct {
	Name string
	Data []byte
}

// Extract pulls the text of every page and joins pages with newlines.
// An empty yield is an error: the document is likely scanned or protected.
func Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to open PDF", Cause: err}
	}

	text := strings.TrimSpace(extractPages(reader))
	if text == "" {
		return "", &ExtractionError{
			Message: "no extractable text; the PDF may be scanned (images only) or protected",
		}
	}

	return text, nil
}

// extractText is swappable in tests.
var extractText = Extract

// ExtractMultiple extracts each file in submission order and wraps every
// document's text between filename-scoped markers, so a downstream reader
// (human or model) can tell where one source document ends and the next
// begins.
func ExtractMultiple(files []File) (string, error) {
	if len(files) == 0 {
		return "", &ExtractionError{Message: "no files to extract"}
	}

	var sb strings.Builder
	for i, file := range files {
		text, err := extractText(file.Data)
		if err != nil {
			return "", &ExtractionError{
				Message: fmt.Sprintf("failed to extract %s", file.Name),
				Cause:   err,
			}
		}

		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("--- INICIO DEL DOCUMENTO: %s ---\n", file.Name))
		sb.WriteString(text)
		sb.WriteString(fmt.Sprintf("\n--- FIN DEL DOCUMENTO: %s ---", file.Name))
	}

	return sb.String(), nil
}

// CleanText normalizes extracted text: unified newlines, trimmed lines,
// blank lines removed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// extractPages walks the reader page by page. Pages that fail to yield text
// are skipped rather than failing the whole document.
func extractPages(reader *pdf.Reader) string {
	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}
	return sb.String()
}
