package service

import (
	"context"
	"time"

	"ai-chatbox-be/internal/constant"
	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/pkg/logger"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/repository/contract"
	"ai-chatbox-be/internal/repository/specification"
	"ai-chatbox-be/pkg/events"

	"github.com/google/uuid"
)

type IExportService interface {
	Export(ctx context.Context, sessionToken string) (*dto.ExportDocument, error)
	Import(ctx context.Context, document *dto.ExportDocument) (*dto.ImportResponse, error)
	ExportInfo() *dto.ExportInfoResponse
}

type exportService struct {
	sessionRepo contract.ChatSessionRepository
	messageRepo contract.ChatMessageRepository
	fileRepo    contract.ParsedFileRepository
	publisher   *events.Publisher
	logger      logger.ILogger
}

func NewExportService(
	sessionRepo contract.ChatSessionRepository,
	messageRepo contract.ChatMessageRepository,
	fileRepo contract.ParsedFileRepository,
	publisher *events.Publisher,
	sysLogger logger.ILogger,
) IExportService {
	return &exportService{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		fileRepo:    fileRepo,
		publisher:   publisher,
		logger:      sysLogger,
	}
}

func (es *exportService) Export(ctx context.Context, sessionToken string) (*dto.ExportDocument, error) {
	session, err := es.sessionRepo.FindOne(ctx, specification.BySessionToken{SessionToken: sessionToken})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("Session not found")
	}

	messages, err := es.messageRepo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	exportMessages := make([]dto.ExportMessage, len(messages))
	for i, message := range messages {
		metadata := message.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		exportMessages[i] = dto.ExportMessage{
			Id:        message.Id.String(),
			Role:      message.Role,
			Content:   message.Content,
			Timestamp: message.CreatedAt.Format(time.RFC3339),
			Metadata:  metadata,
		}
	}

	files, err := es.fileRepo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: constant.FileContextRecentLimit},
	)
	if err != nil {
		return nil, err
	}

	exportFiles := make([]dto.ExportFile, len(files))
	for i, file := range files {
		metadata := file.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		exportFiles[i] = dto.ExportFile{
			Id:       file.Id.String(),
			Name:     file.OriginalName,
			Type:     file.FileType,
			Content:  truncate(file.ParsedContent, constant.ExportFileContentMaxSize),
			Metadata: metadata,
		}
	}

	title := session.Title
	if title == "" {
		title = "Chat Session " + session.CreatedAt.Format("2006-01-02")
	}

	return &dto.ExportDocument{
		SessionId: session.SessionId,
		Title:     title,
		Messages:  exportMessages,
		Files:     exportFiles,
		Metadata: map[string]interface{}{
			"exportedAt":        time.Now().Format(time.RFC3339),
			"version":           "1.0",
			"originalSessionId": session.SessionId,
			"messageCount":      len(exportMessages),
			"fileCount":         len(exportFiles),
		},
	}, nil
}

// Import recreates a session from an export document. An existing session
// with the same public id has its messages replaced wholesale.
func (es *exportService) Import(ctx context.Context, document *dto.ExportDocument) (*dto.ImportResponse, error) {
	if document == nil || document.SessionId == "" || document.Messages == nil {
		return nil, serverutils.NewValidationError("Invalid session data")
	}

	session, err := es.sessionRepo.FindOne(ctx, specification.BySessionToken{SessionToken: document.SessionId})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if session == nil {
		session = &entity.ChatSession{
			Id:        uuid.New(),
			SessionId: document.SessionId,
			Title:     document.Title,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := es.sessionRepo.Create(ctx, session); err != nil {
			return nil, err
		}
	} else {
		if document.Title != "" {
			session.Title = document.Title
		}
		session.UpdatedAt = now
		if err := es.sessionRepo.Update(ctx, session); err != nil {
			return nil, err
		}
		if err := es.messageRepo.DeleteByChatSessionId(ctx, session.Id); err != nil {
			return nil, err
		}
	}

	// Timestamps are nudged forward so original ordering survives even when
	// the document carries identical or unparseable timestamps.
	cursor := time.Time{}
	importedMessages := 0
	for _, exportMessage := range document.Messages {
		timestamp, parseErr := time.Parse(time.RFC3339, exportMessage.Timestamp)
		if parseErr != nil {
			timestamp = now
		}
		if !timestamp.After(cursor) {
			timestamp = cursor.Add(time.Millisecond)
		}
		cursor = timestamp

		metadata := exportMessage.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		message := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Role:          exportMessage.Role,
			Content:       exportMessage.Content,
			Metadata:      metadata,
			CreatedAt:     timestamp,
		}
		if err := es.messageRepo.Create(ctx, message); err != nil {
			return nil, err
		}
		importedMessages++
	}

	importedFiles := 0
	for _, exportFile := range document.Files {
		file := &entity.ParsedFile{
			Id:            uuid.New(),
			OriginalName:  exportFile.Name,
			FileType:      exportFile.Type,
			FileSize:      int64(len(exportFile.Content)),
			ParsedContent: exportFile.Content,
			Metadata: map[string]interface{}{
				"imported":          true,
				"original_metadata": exportFile.Metadata,
				"imported_at":       now.Format(time.RFC3339),
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := es.fileRepo.Create(ctx, file); err != nil {
			es.logger.Warn("EXPORT", "Failed to import file", map[string]interface{}{
				"name":  exportFile.Name,
				"error": err.Error(),
			})
			continue
		}
		importedFiles++
	}

	es.publisher.PublishSessionImported(session.SessionId, importedMessages, importedFiles)

	return &dto.ImportResponse{
		Success:          true,
		SessionId:        session.SessionId,
		Title:            session.Title,
		ImportedMessages: importedMessages,
		ImportedFiles:    importedFiles,
		Message:          "Session imported successfully",
	}, nil
}

func (es *exportService) ExportInfo() *dto.ExportInfoResponse {
	return &dto.ExportInfoResponse{
		SupportedFormats:   []string{"json"},
		MaxFileSize:        "4MB",
		CompressionEnabled: true,
		Features: []string{
			"Real-time compression",
			"File attachment support",
			"Session metadata",
			"Cross-platform compatibility",
		},
	}
}
