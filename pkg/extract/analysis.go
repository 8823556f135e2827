package extract

import (
	"fmt"
	"strings"
)

// Analysis holds derived metadata for an extracted document.
type Analysis struct {
	FileName      string   `json:"file_name"`
	FileType      string   `json:"file_type"`
	ContentLength int      `json:"content_length"`
	Insights      []string `json:"insights"`
}

var programmingKeywords = []string{"python", "javascript", "java", "c++", "programming"}

var professionalKeywords = []string{"experience", "skills", "education", "work"}

// Analyze inspects extracted content and derives insight tags.
func Analyze(content, fileName, fileType string) *Analysis {
	analysis := &Analysis{
		FileName:      fileName,
		FileType:      fileType,
		ContentLength: len(content),
		Insights:      []string{},
	}

	lowerName := strings.ToLower(fileName)
	lowerContent := strings.ToLower(content)

	switch fileType {
	case "pdf":
		analysis.Insights = append(analysis.Insights, "PDF document with text content")
		if strings.Contains(lowerName, "resume") || strings.Contains(lowerName, "cv") {
			analysis.Insights = append(analysis.Insights, "Appears to be a resume/CV document")
		}
	case "docx":
		analysis.Insights = append(analysis.Insights, "Word document with formatted text")
	case "csv":
		analysis.Insights = append(analysis.Insights, "Spreadsheet data")
		lines := strings.Split(content, "\n")
		if len(lines) > 1 {
			analysis.Insights = append(analysis.Insights, fmt.Sprintf("Contains %d rows of data", len(lines)))
		}
	case "txt":
		analysis.Insights = append(analysis.Insights, "Plain text document")
	}

	if strings.Contains(content, "@") {
		analysis.Insights = append(analysis.Insights, "Contains email addresses")
	}
	if strings.Contains(content, "http") || strings.Contains(content, "www.") {
		analysis.Insights = append(analysis.Insights, "Contains web links")
	}

	if len(content) > 1000 {
		analysis.Insights = append(analysis.Insights, "Large document with substantial content")
	}

	if containsAny(lowerContent, programmingKeywords) {
		analysis.Insights = append(analysis.Insights, "Contains programming/technical content")
	}

	if containsAny(lowerContent, professionalKeywords) {
		analysis.Insights = append(analysis.Insights, "Contains professional/educational information")
	}

	return analysis
}

// Summarize returns a concise, line-bounded prefix of the content, at most
// maxLength characters, with a truncation note when content was cut.
func Summarize(content string, maxLength int) string {
	if len(content) <= maxLength {
		return content
	}

	lines := strings.Split(content, "\n")
	summaryLines := make([]string, 0, len(lines))
	currentLength := 0

	for _, line := range lines {
		if currentLength+len(line) > maxLength {
			break
		}
		summaryLines = append(summaryLines, line)
		currentLength += len(line)
	}

	summary := strings.Join(summaryLines, "\n")
	return summary + fmt.Sprintf("\n\n[Content truncated - showing first %d characters of %d total]", len(summary), len(content))
}

func containsAny(content string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}
