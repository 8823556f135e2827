package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportFixture(t *testing.T) (IExportService, repoSet) {
	repos := newRepoSet(newTestDB(t))
	svc := NewExportService(repos.sessionRepo, repos.messageRepo, repos.fileRepo, newTestPublisher(), nopLogger{})
	return svc, repos
}

func TestExportUnknownSession(t *testing.T) {
	svc, _ := newExportFixture(t)

	_, err := svc.Export(context.Background(), "missing")
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
}

func TestExportDocumentShape(t *testing.T) {
	svc, repos := newExportFixture(t)
	seedSession(t, repos, "sess-exp-doc", "question", "answer")
	ctx := context.Background()

	require.NoError(t, repos.fileRepo.Create(ctx, &entity.ParsedFile{
		Id:            uuid.New(),
		OriginalName:  "big.txt",
		FileType:      "txt",
		ParsedContent: strings.Repeat("x", 3000),
	}))

	document, err := svc.Export(ctx, "sess-exp-doc")
	require.NoError(t, err)
	assert.Equal(t, "sess-exp-doc", document.SessionId)
	assert.Equal(t, "Seeded", document.Title)
	require.Len(t, document.Messages, 2)
	assert.Equal(t, "question", document.Messages[0].Content)

	_, parseErr := time.Parse(time.RFC3339, document.Messages[0].Timestamp)
	assert.NoError(t, parseErr)

	require.Len(t, document.Files, 1)
	assert.Len(t, document.Files[0].Content, 2000)

	assert.Equal(t, "1.0", document.Metadata["version"])
	assert.Equal(t, 2, document.Metadata["messageCount"])
	assert.Equal(t, 1, document.Metadata["fileCount"])
	assert.Equal(t, "sess-exp-doc", document.Metadata["originalSessionId"])
}

func TestExportTitleFallback(t *testing.T) {
	svc, repos := newExportFixture(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repos.sessionRepo.Create(ctx, &entity.ChatSession{
		Id:        uuid.New(),
		SessionId: "untitled",
		CreatedAt: created,
		UpdatedAt: created,
	}))

	document, err := svc.Export(ctx, "untitled")
	require.NoError(t, err)
	assert.Equal(t, "Chat Session 2026-03-14", document.Title)
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	svc, _ := newExportFixture(t)
	ctx := context.Background()

	for _, document := range []*dto.ExportDocument{
		nil,
		{Title: "no session id", Messages: []dto.ExportMessage{}},
		{SessionId: "no-messages"},
	} {
		_, err := svc.Import(ctx, document)
		var appErr *serverutils.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Invalid session data", appErr.Message)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, repos := newExportFixture(t)
	seedSession(t, repos, "round-trip", "ping", "pong")
	ctx := context.Background()

	document, err := svc.Export(ctx, "round-trip")
	require.NoError(t, err)

	// Import into a fresh store.
	freshRepos := newRepoSet(newTestDB(t))
	freshSvc := NewExportService(freshRepos.sessionRepo, freshRepos.messageRepo, freshRepos.fileRepo, newTestPublisher(), nopLogger{})

	res, err := freshSvc.Import(ctx, document)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "round-trip", res.SessionId)
	assert.Equal(t, 2, res.ImportedMessages)

	session, err := freshRepos.sessionRepo.FindOne(ctx, specification.BySessionToken{SessionToken: "round-trip"})
	require.NoError(t, err)
	require.NotNil(t, session)

	messages, err := freshRepos.messageRepo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "ping", messages[0].Content)
	assert.Equal(t, "pong", messages[1].Content)
}

func TestImportReplacesExistingMessages(t *testing.T) {
	svc, repos := newExportFixture(t)
	session := seedSession(t, repos, "replace-me", "old one", "old two", "old three")
	ctx := context.Background()

	res, err := svc.Import(ctx, &dto.ExportDocument{
		SessionId: "replace-me",
		Title:     "Replaced",
		Messages: []dto.ExportMessage{
			{Role: "user", Content: "new"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ImportedMessages)
	assert.Equal(t, "Replaced", res.Title)

	messages, err := repos.messageRepo.FindAll(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "new", messages[0].Content)
}

func TestImportPreservesOrderWithoutTimestamps(t *testing.T) {
	svc, repos := newExportFixture(t)
	ctx := context.Background()

	contents := []string{"first", "second", "third", "fourth"}
	exportMessages := make([]dto.ExportMessage, len(contents))
	for i, content := range contents {
		exportMessages[i] = dto.ExportMessage{Role: "user", Content: content}
	}

	_, err := svc.Import(ctx, &dto.ExportDocument{SessionId: "ordered", Messages: exportMessages})
	require.NoError(t, err)

	session, err := repos.sessionRepo.FindOne(ctx, specification.BySessionToken{SessionToken: "ordered"})
	require.NoError(t, err)

	messages, err := repos.messageRepo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, messages, len(contents))
	for i, content := range contents {
		assert.Equal(t, content, messages[i].Content)
	}
}

func TestImportFlagsImportedFiles(t *testing.T) {
	svc, repos := newExportFixture(t)
	ctx := context.Background()

	res, err := svc.Import(ctx, &dto.ExportDocument{
		SessionId: "with-files",
		Messages:  []dto.ExportMessage{{Role: "user", Content: "hi"}},
		Files: []dto.ExportFile{
			{Name: "notes.txt", Type: "txt", Content: "remember this", Metadata: map[string]interface{}{"origin": "export"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ImportedFiles)

	files, err := repos.fileRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "notes.txt", files[0].OriginalName)
	assert.Equal(t, true, files[0].Metadata["imported"])
	assert.NotNil(t, files[0].Metadata["original_metadata"])
}

func TestExportInfoCapabilities(t *testing.T) {
	svc, _ := newExportFixture(t)

	info := svc.ExportInfo()
	assert.Equal(t, []string{"json"}, info.SupportedFormats)
	assert.Equal(t, "4MB", info.MaxFileSize)
	assert.True(t, info.CompressionEnabled)
	assert.Contains(t, info.Features, "Real-time compression")
	assert.Contains(t, info.Features, "Session metadata")
}
