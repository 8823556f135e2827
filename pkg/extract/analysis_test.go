package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectType(t *testing.T) {
	assert.Equal(t, "pdf", DetectType("Report.PDF"))
	assert.Equal(t, "docx", DetectType("letter.docx"))
	assert.Equal(t, "txt", DetectType("a.b.txt"))
	assert.Equal(t, "unknown", DetectType("README"))
}

func TestExtractTxtPassthrough(t *testing.T) {
	content, err := Extract([]byte("hello world"), "txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestExtractCsvJoinsRows(t *testing.T) {
	content, err := Extract([]byte("a,b,c\n1,2,3\n"), "csv")
	require.NoError(t, err)
	assert.Equal(t, "a, b, c\n1, 2, 3\n", content)
}

func TestExtractUnsupportedType(t *testing.T) {
	_, err := Extract([]byte("x"), "exe")
	require.Error(t, err)
}

func TestAnalyzeTxtInsights(t *testing.T) {
	content := "Contact: jane@example.com see https://example.com\n" + strings.Repeat("padding ", 150)
	analysis := Analyze(content, "notes.txt", "txt")

	assert.Equal(t, "notes.txt", analysis.FileName)
	assert.Equal(t, len(content), analysis.ContentLength)
	assert.Contains(t, analysis.Insights, "Plain text document")
	assert.Contains(t, analysis.Insights, "Contains email addresses")
	assert.Contains(t, analysis.Insights, "Contains web links")
	assert.Contains(t, analysis.Insights, "Large document with substantial content")
}

func TestAnalyzeResumePdf(t *testing.T) {
	analysis := Analyze("Work experience and skills overview", "jane_resume.pdf", "pdf")

	assert.Contains(t, analysis.Insights, "PDF document with text content")
	assert.Contains(t, analysis.Insights, "Appears to be a resume/CV document")
	assert.Contains(t, analysis.Insights, "Contains professional/educational information")
}

func TestAnalyzeCsvRowCount(t *testing.T) {
	analysis := Analyze("h1, h2\nr1, r2\nr3, r4\n", "data.csv", "csv")

	assert.Contains(t, analysis.Insights, "Spreadsheet data")
	assert.Contains(t, analysis.Insights, "Contains 4 rows of data")
}

func TestAnalyzeProgrammingContent(t *testing.T) {
	analysis := Analyze("An intro to Python programming", "guide.txt", "txt")

	assert.Contains(t, analysis.Insights, "Contains programming/technical content")
}

func TestSummarizeShortContentUntouched(t *testing.T) {
	assert.Equal(t, "short", Summarize("short", 500))
}

func TestSummarizeTruncatesOnLineBoundary(t *testing.T) {
	lines := []string{
		strings.Repeat("a", 200),
		strings.Repeat("b", 200),
		strings.Repeat("c", 200),
	}
	summary := Summarize(strings.Join(lines, "\n"), 500)

	assert.Contains(t, summary, lines[0])
	assert.Contains(t, summary, lines[1])
	assert.NotContains(t, summary, lines[2])
	assert.Contains(t, summary, "[Content truncated - showing first 401 characters of 602 total]")
}
