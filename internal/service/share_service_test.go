package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-chatbox-be/internal/config"
	"ai-chatbox-be/internal/constant"
	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func newShareFixture(t *testing.T) (IShareService, repoSet) {
	repos := newRepoSet(newTestDB(t))
	appCfg := config.AppConfig{ClientURL: "http://localhost:3000"}
	svc := NewShareService(repos.sessionRepo, repos.messageRepo, repos.shareRepo, repos.accessRepo, appCfg, newTestPublisher(), nopLogger{})
	return svc, repos
}

func seedSession(t *testing.T, repos repoSet, token string, messages ...string) *entity.ChatSession {
	t.Helper()
	ctx := context.Background()
	session := &entity.ChatSession{
		Id:        uuid.New(),
		SessionId: token,
		Title:     "Seeded",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repos.sessionRepo.Create(ctx, session))

	base := time.Now()
	for i, content := range messages {
		role := constant.ChatMessageRoleUser
		if i%2 == 1 {
			role = constant.ChatMessageRoleAssistant
		}
		require.NoError(t, repos.messageRepo.Create(ctx, &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Role:          role,
			Content:       content,
			CreatedAt:     base.Add(time.Duration(i) * time.Millisecond),
		}))
	}
	return session
}

func TestCreateShareUnknownSession(t *testing.T) {
	svc, _ := newShareFixture(t)

	_, err := svc.Create(context.Background(), &dto.CreateShareRequest{SessionId: "missing"})
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Original session not found", appErr.Message)
}

func TestCreateAndResolveShare(t *testing.T) {
	svc, repos := newShareFixture(t)
	seedSession(t, repos, "sess-1", "hi", "hello back")
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-1", Title: "My Share"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Len(t, res.ShareToken, constant.ShareTokenLength)
	assert.Equal(t, "http://localhost:3000/chat/shared/"+res.ShareToken+"/", res.ShareUrl)
	assert.Equal(t, "/api/chat/shared/"+res.ShareToken+"/pdf", res.PdfUrl)
	require.NotNil(t, res.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *res.ExpiresAt, time.Minute)

	shared, err := svc.Resolve(ctx, res.ShareToken, "10.0.0.1", testUserAgent)
	require.NoError(t, err)
	assert.Equal(t, "My Share", shared.Title)
	assert.Equal(t, "sess-1", shared.SessionId)
	assert.Equal(t, 1, shared.AccessCount)
	assert.False(t, shared.IsEditable)
	require.Len(t, shared.Messages, 2)
	assert.Equal(t, "hi", shared.Messages[0].Content)
	assert.Equal(t, "hello back", shared.Messages[1].Content)

	// Second access bumps the counter again.
	shared, err = svc.Resolve(ctx, res.ShareToken, "10.0.0.2", testUserAgent)
	require.NoError(t, err)
	assert.Equal(t, 2, shared.AccessCount)
}

func TestResolveRecordsAccessDetails(t *testing.T) {
	svc, repos := newShareFixture(t)
	seedSession(t, repos, "sess-ua", "hi")
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-ua"})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, res.ShareToken, "192.168.1.9", testUserAgent)
	require.NoError(t, err)

	accesses, err := repos.accessRepo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, accesses, 1)
	assert.Equal(t, "192.168.1.9", accesses[0].IpAddress)
	assert.Equal(t, testUserAgent, accesses[0].UserAgent)
	assert.Equal(t, "Chrome", accesses[0].SessionData["browser"])
}

func TestResolveExpiredShare(t *testing.T) {
	svc, repos := newShareFixture(t)
	session := seedSession(t, repos, "sess-exp", "hi")
	ctx := context.Background()

	expired := time.Now().Add(-time.Hour)
	share := &entity.SharedSession{
		Id:                uuid.New(),
		OriginalSessionId: session.Id,
		ShareToken:        "expired1",
		Title:             "Old",
		IsActive:          true,
		ExpiresAt:         &expired,
		LastSynced:        time.Now(),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	require.NoError(t, repos.shareRepo.Create(ctx, share))

	_, err := svc.Resolve(ctx, "expired1", "10.0.0.1", testUserAgent)
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 410, appErr.Status)
	assert.Equal(t, "Shared session has expired", appErr.Message)

	// No access is recorded against a dead share.
	count, err := repos.accessRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestShareNeverExpiresWithNonPositiveHours(t *testing.T) {
	svc, repos := newShareFixture(t)
	seedSession(t, repos, "sess-forever", "hi")
	ctx := context.Background()

	for _, hours := range []int{0, -1} {
		h := hours
		res, err := svc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-forever", ExpiresHours: &h})
		require.NoError(t, err)
		assert.Nil(t, res.ExpiresAt)

		_, err = svc.Resolve(ctx, res.ShareToken, "10.0.0.1", testUserAgent)
		require.NoError(t, err)
	}
}

func TestAddMessageForbiddenWhenEditingDisabled(t *testing.T) {
	svc, repos := newShareFixture(t)
	session := seedSession(t, repos, "sess-ro", "hi")
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-ro", AllowEditing: false})
	require.NoError(t, err)

	_, err = svc.AddMessage(ctx, res.ShareToken, &dto.AddSharedMessageRequest{Content: "sneaky"})
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 403, appErr.Status)

	count, err := repos.messageRepo.Count(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAddMessageAppendsToOriginalSession(t *testing.T) {
	svc, repos := newShareFixture(t)
	session := seedSession(t, repos, "sess-rw", "hi")
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-rw", AllowEditing: true})
	require.NoError(t, err)

	added, err := svc.AddMessage(ctx, res.ShareToken, &dto.AddSharedMessageRequest{Content: "from a visitor"})
	require.NoError(t, err)
	assert.True(t, added.Success)
	assert.NotEmpty(t, added.MessageId)

	messages, err := repos.messageRepo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "from a visitor", messages[1].Content)
	assert.Equal(t, constant.ChatMessageRoleUser, messages[1].Role)
}

func TestAddMessageRejectsBlankContent(t *testing.T) {
	svc, repos := newShareFixture(t)
	seedSession(t, repos, "sess-blank", "hi")
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-blank", AllowEditing: true})
	require.NoError(t, err)

	_, err = svc.AddMessage(ctx, res.ShareToken, &dto.AddSharedMessageRequest{Content: "   "})
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Status)
}

func TestFetchPdfReturnsDocument(t *testing.T) {
	svc, repos := newShareFixture(t)
	seedSession(t, repos, "sess-pdf", "hi", "hello back")
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-pdf"})
	require.NoError(t, err)

	document, fileName, err := svc.FetchPdf(ctx, res.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, "chat_session_"+res.ShareToken+".pdf", fileName)
	require.NotEmpty(t, document)
	assert.Equal(t, "%PDF", string(document[:4]))
}

func TestInfoDoesNotRecordAccess(t *testing.T) {
	svc, repos := newShareFixture(t)
	seedSession(t, repos, "sess-info", "hi")
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-info", Title: "Info"})
	require.NoError(t, err)

	info, err := svc.Info(ctx, res.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, "Info", info.Title)
	assert.True(t, info.IsActive)
	assert.Zero(t, info.AccessCount)

	count, err := repos.accessRepo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteSessionRemovesSharesButKeepsAccessLog(t *testing.T) {
	shareSvc, repos := newShareFixture(t)
	seedSession(t, repos, "sess-del", "hi")
	ctx := context.Background()

	res, err := shareSvc.Create(ctx, &dto.CreateShareRequest{SessionId: "sess-del"})
	require.NoError(t, err)

	_, err = shareSvc.Resolve(ctx, res.ShareToken, "10.0.0.1", testUserAgent)
	require.NoError(t, err)

	chatSvc := NewChatService(repos.sessionRepo, repos.messageRepo, repos.fileRepo, repos.shareRepo, &stubProvider{}, newTestPublisher(), nopLogger{})
	require.NoError(t, chatSvc.DeleteSession(ctx, "sess-del"))

	share, err := repos.shareRepo.FindOne(ctx, specification.ByShareToken{ShareToken: res.ShareToken})
	require.NoError(t, err)
	assert.Nil(t, share)

	count, err := repos.accessRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
