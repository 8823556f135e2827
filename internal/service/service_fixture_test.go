package service

import (
	"context"
	"testing"

	"ai-chatbox-be/internal/model"
	"ai-chatbox-be/internal/pkg/logger"
	"ai-chatbox-be/internal/repository/contract"
	"ai-chatbox-be/internal/repository/implementation"
	"ai-chatbox-be/pkg/events"
	"ai-chatbox-be/pkg/llm"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = nopLogger{}

// stubProvider replays canned completions instead of calling the real API.
type stubProvider struct {
	reply   string
	chatErr error
	chunks  []llm.StreamChunk
	openErr error

	lastHistory []llm.Message
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.lastHistory = history
	if s.chatErr != nil {
		return "", s.chatErr
	}
	return s.reply, nil
}

func (s *stubProvider) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) (<-chan llm.StreamChunk, error) {
	s.lastHistory = history
	if s.openErr != nil {
		return nil, s.openErr
	}
	ch := make(chan llm.StreamChunk, len(s.chunks))
	for _, chunk := range s.chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Keep one connection so the in-memory database is not recreated per
	// pooled connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.ParsedFile{},
		&model.SharedSession{},
		&model.SharedAccess{},
	))
	return db
}

type repoSet struct {
	sessionRepo contract.ChatSessionRepository
	messageRepo contract.ChatMessageRepository
	fileRepo    contract.ParsedFileRepository
	shareRepo   contract.SharedSessionRepository
	accessRepo  contract.SharedAccessRepository
}

func newRepoSet(db *gorm.DB) repoSet {
	return repoSet{
		sessionRepo: implementation.NewChatSessionRepository(db),
		messageRepo: implementation.NewChatMessageRepository(db),
		fileRepo:    implementation.NewParsedFileRepository(db),
		shareRepo:   implementation.NewSharedSessionRepository(db),
		accessRepo:  implementation.NewSharedAccessRepository(db),
	}
}

func newTestPublisher() *events.Publisher {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	return events.NewPublisher(pubSub, "AUDIT_EVENTS", nopLogger{})
}
