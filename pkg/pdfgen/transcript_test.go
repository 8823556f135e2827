package pdfgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTranscriptProducesPdf(t *testing.T) {
	messages := []TranscriptMessage{
		{Role: "user", Content: "What is the capital of France?", Timestamp: time.Now()},
		{Role: "assistant", Content: "The capital of France is Paris.", Timestamp: time.Now()},
	}

	document, err := GenerateTranscript("abc12345", "Geography Chat", messages)
	require.NoError(t, err)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestGenerateTranscriptEmptySession(t *testing.T) {
	document, err := GenerateTranscript("empty123", "Empty", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, document)
}
