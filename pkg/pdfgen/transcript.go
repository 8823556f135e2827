package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// TranscriptMessage is one rendered line of a chat transcript.
type TranscriptMessage struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// GenerateTranscript renders a chat session to a PDF document. The rendering
// is always produced fresh from the messages handed in; nothing is cached.
func GenerateTranscript(sessionId, title string, messages []TranscriptMessage) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, title, "", "L", false)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, fmt.Sprintf("Session %s", sessionId), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, msg := range messages {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 11)
		header := msg.Role
		if !msg.Timestamp.IsZero() {
			header = fmt.Sprintf("%s - %s", msg.Role, msg.Timestamp.Format("2006-01-02 15:04"))
		}
		pdf.CellFormat(0, 6, header, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, msg.Content, "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render transcript: %w", err)
	}
	return buf.Bytes(), nil
}
