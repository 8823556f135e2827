package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-chatbox-be/internal/constant"
	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/pkg/logger"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/repository/contract"
	"ai-chatbox-be/internal/repository/specification"
	"ai-chatbox-be/pkg/events"
	"ai-chatbox-be/pkg/llm"

	"github.com/google/uuid"
)

// IChatService relays conversations to the completion API and keeps the
// session history in the store.
type IChatService interface {
	Send(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	SendStream(ctx context.Context, request *dto.ChatRequest) (<-chan dto.StreamEvent, error)
	GetSession(ctx context.Context, sessionToken string) (*dto.SessionResponse, error)
	GetAllSessions(ctx context.Context) ([]*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, sessionToken string) error
}

type chatService struct {
	sessionRepo contract.ChatSessionRepository
	messageRepo contract.ChatMessageRepository
	fileRepo    contract.ParsedFileRepository
	shareRepo   contract.SharedSessionRepository
	provider    llm.Provider
	publisher   *events.Publisher
	logger      logger.ILogger
}

func NewChatService(
	sessionRepo contract.ChatSessionRepository,
	messageRepo contract.ChatMessageRepository,
	fileRepo contract.ParsedFileRepository,
	shareRepo contract.SharedSessionRepository,
	provider llm.Provider,
	publisher *events.Publisher,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		fileRepo:    fileRepo,
		shareRepo:   shareRepo,
		provider:    provider,
		publisher:   publisher,
		logger:      sysLogger,
	}
}

// deriveTitle caps the session title at the first 50 characters of the
// opening message.
func deriveTitle(message string) string {
	runes := []rune(message)
	if len(runes) > constant.SessionTitleMaxLength {
		return string(runes[:constant.SessionTitleMaxLength]) + "..."
	}
	return message
}

// resolveSession finds the target session or creates one. An unknown but
// supplied token creates a new session under that token rather than failing.
func (cs *chatService) resolveSession(ctx context.Context, sessionToken, message string) (*entity.ChatSession, error) {
	if sessionToken != "" {
		session, err := cs.sessionRepo.FindOne(ctx, specification.BySessionToken{SessionToken: sessionToken})
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
	} else {
		sessionToken = uuid.NewString()
	}

	session := &entity.ChatSession{
		Id:        uuid.New(),
		SessionId: sessionToken,
		Title:     deriveTitle(message),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := cs.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// buildFileContext renders the synthetic system message describing the most
// recently uploaded files. The lookup is system-wide, not per-session.
func (cs *chatService) buildFileContext(ctx context.Context) (string, error) {
	files, err := cs.fileRepo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: constant.FileContextRecentLimit},
	)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("Here are the uploaded files that the user can ask about:\n\n")
	for _, file := range files {
		sb.WriteString(fmt.Sprintf("📄 File: %s (%s)\n", file.OriginalName, strings.ToUpper(file.FileType)))

		if insights := metadataInsights(file.Metadata); len(insights) > 0 {
			sb.WriteString(fmt.Sprintf("   Insights: %s\n", strings.Join(insights, ", ")))
		}

		preview := truncate(file.ParsedContent, constant.FileContextPreviewLength)
		sb.WriteString(fmt.Sprintf("   Content Preview: %s...\n\n", preview))
	}

	return fmt.Sprintf(constant.FileContextInstruction, sb.String()), nil
}

// metadataInsights pulls insight tags back out of a metadata mapping that
// went through a JSON round trip.
func metadataInsights(metadata map[string]interface{}) []string {
	raw, ok := metadata["insights"]
	if !ok {
		return nil
	}

	switch typed := raw.(type) {
	case []string:
		return typed
	case []interface{}:
		insights := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				insights = append(insights, s)
			}
		}
		return insights
	}
	return nil
}

// prepare persists the incoming user message and assembles the upstream
// request context. The user message is stored before the upstream call so a
// crash mid-call cannot lose it.
func (cs *chatService) prepare(ctx context.Context, request *dto.ChatRequest) (*entity.ChatSession, []llm.Message, []llm.Option, error) {
	session, err := cs.resolveSession(ctx, request.SessionId, request.Message)
	if err != nil {
		return nil, nil, nil, err
	}

	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       request.Message,
		CreatedAt:     time.Now(),
	}
	if err := cs.messageRepo.Create(ctx, userMessage); err != nil {
		return nil, nil, nil, err
	}

	session.UpdatedAt = time.Now()
	if err := cs.sessionRepo.Update(ctx, session); err != nil {
		return nil, nil, nil, err
	}

	stored, err := cs.messageRepo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, nil, nil, err
	}

	history := make([]llm.Message, 0, len(stored)+1)

	fileContext, err := cs.buildFileContext(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if fileContext != "" {
		history = append(history, llm.Message{Role: constant.ChatMessageRoleSystem, Content: fileContext})
	}

	for _, msg := range stored {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	options := []llm.Option{}
	if request.Model != "" {
		options = append(options, llm.WithModel(request.Model))
	}
	temperature := constant.DefaultChatTemperature
	if request.Temperature != nil {
		temperature = *request.Temperature
	}
	options = append(options, llm.WithTemperature(temperature))

	maxTokens := constant.DefaultChatMaxTokens
	if request.MaxTokens != nil {
		maxTokens = *request.MaxTokens
	}
	options = append(options, llm.WithMaxTokens(maxTokens))

	return session, history, options, nil
}

func (cs *chatService) persistAssistantMessage(ctx context.Context, session *entity.ChatSession, content string) (*entity.ChatMessage, error) {
	assistantMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       content,
		CreatedAt:     time.Now(),
	}
	if err := cs.messageRepo.Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now()
	if err := cs.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return assistantMessage, nil
}

func (cs *chatService) Send(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	session, history, options, err := cs.prepare(ctx, request)
	if err != nil {
		return nil, err
	}

	reply, err := cs.provider.Chat(ctx, history, options...)
	if err != nil {
		cs.logger.Error("CHAT", "Upstream completion failed", map[string]interface{}{
			"session_id": session.SessionId,
			"error":      err.Error(),
		})
		return nil, serverutils.NewUpstreamError("Failed to get AI response: %v", err)
	}

	assistantMessage, err := cs.persistAssistantMessage(ctx, session, reply)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{
		Response:  reply,
		SessionId: session.SessionId,
		MessageId: assistantMessage.Id,
	}, nil
}

// SendStream relays the conversation in streaming mode. Fragments are pushed
// on the returned channel as they arrive upstream and accumulated into one
// assistant message persisted after the completion sentinel. On upstream
// failure an error event is emitted and accumulated partial content is
// dropped, never persisted. A cancelled ctx stops event delivery but the
// upstream fetch keeps running so the full reply is still persisted.
func (cs *chatService) SendStream(ctx context.Context, request *dto.ChatRequest) (<-chan dto.StreamEvent, error) {
	session, history, options, err := cs.prepare(ctx, request)
	if err != nil {
		return nil, err
	}

	streamEvents := make(chan dto.StreamEvent)

	go func() {
		defer close(streamEvents)

		// The upstream fetch deliberately ignores the request context: an
		// abandoned client leaves the fetch running to completion.
		chunks, err := cs.provider.ChatStream(context.Background(), history, options...)
		if err != nil {
			cs.logger.Error("CHAT", "Upstream stream failed to open", map[string]interface{}{
				"session_id": session.SessionId,
				"error":      err.Error(),
			})
			select {
			case streamEvents <- dto.StreamEvent{Err: err}:
			case <-ctx.Done():
			}
			return
		}

		var accumulated strings.Builder
		forward := true
		for chunk := range chunks {
			if chunk.Err != nil {
				cs.logger.Error("CHAT", "Upstream stream failed mid-flight", map[string]interface{}{
					"session_id":  session.SessionId,
					"accumulated": accumulated.Len(),
					"error":       chunk.Err.Error(),
				})
				if forward {
					select {
					case streamEvents <- dto.StreamEvent{Err: chunk.Err}:
					case <-ctx.Done():
					}
				}
				return
			}
			accumulated.WriteString(chunk.Content)
			if forward {
				select {
				case streamEvents <- dto.StreamEvent{Content: chunk.Content}:
				case <-ctx.Done():
					// Client gone. Keep draining upstream so the complete
					// reply can still be persisted.
					forward = false
				}
			}
		}

		if accumulated.Len() > 0 {
			if _, err := cs.persistAssistantMessage(context.Background(), session, accumulated.String()); err != nil {
				cs.logger.Error("CHAT", "Failed to persist streamed reply", map[string]interface{}{
					"session_id": session.SessionId,
					"error":      err.Error(),
				})
			}
		}
	}()

	return streamEvents, nil
}

func (cs *chatService) toSessionResponse(ctx context.Context, session *entity.ChatSession) (*dto.SessionResponse, error) {
	messages, err := cs.messageRepo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	messageResponses := make([]dto.MessageResponse, len(messages))
	for i, msg := range messages {
		metadata := msg.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		messageResponses[i] = dto.MessageResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.CreatedAt,
			Metadata:  metadata,
		}
	}

	return &dto.SessionResponse{
		Id:        session.Id,
		SessionId: session.SessionId,
		Title:     session.Title,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		Messages:  messageResponses,
	}, nil
}

func (cs *chatService) GetSession(ctx context.Context, sessionToken string) (*dto.SessionResponse, error) {
	session, err := cs.sessionRepo.FindOne(ctx, specification.BySessionToken{SessionToken: sessionToken})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("Session not found")
	}
	return cs.toSessionResponse(ctx, session)
}

func (cs *chatService) GetAllSessions(ctx context.Context) ([]*dto.SessionResponse, error) {
	sessions, err := cs.sessionRepo.FindAll(ctx, specification.OrderBy{Field: "updated_at", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SessionResponse, len(sessions))
	for i, session := range sessions {
		response, err := cs.toSessionResponse(ctx, session)
		if err != nil {
			return nil, err
		}
		responses[i] = response
	}
	return responses, nil
}

// DeleteSession removes the session, its messages and its shared views.
// Access log entries are append-only and survive share deletion.
func (cs *chatService) DeleteSession(ctx context.Context, sessionToken string) error {
	session, err := cs.sessionRepo.FindOne(ctx, specification.BySessionToken{SessionToken: sessionToken})
	if err != nil {
		return err
	}
	if session == nil {
		return serverutils.NewNotFoundError("Session not found")
	}

	if err := cs.messageRepo.DeleteByChatSessionId(ctx, session.Id); err != nil {
		return err
	}
	if err := cs.shareRepo.DeleteByOriginalSessionId(ctx, session.Id); err != nil {
		return err
	}
	if err := cs.sessionRepo.Delete(ctx, session.Id); err != nil {
		return err
	}

	cs.publisher.PublishSessionDeleted(session.SessionId)
	return nil
}
