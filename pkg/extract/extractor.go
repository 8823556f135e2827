package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// DetectType returns the lowercase extension of a filename without the dot,
// or "unknown" when there is none.
func DetectType(filename string) string {
	ext := filepath.Ext(strings.ToLower(filename))
	if ext == "" {
		return "unknown"
	}
	return ext[1:]
}

// Extract converts an uploaded document into plain text by format.
func Extract(data []byte, fileType string) (string, error) {
	switch fileType {
	case "pdf":
		return extractPdf(data)
	case "docx":
		return extractDocx(data)
	case "csv":
		return extractCsv(data)
	case "txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
}

func extractCsv(data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var sb strings.Builder
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error parsing CSV: %w", err)
		}
		sb.WriteString(strings.Join(row, ", "))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
