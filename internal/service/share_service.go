package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-chatbox-be/internal/config"
	"ai-chatbox-be/internal/constant"
	"ai-chatbox-be/internal/dto"
	"ai-chatbox-be/internal/entity"
	"ai-chatbox-be/internal/pkg/logger"
	"ai-chatbox-be/internal/pkg/serverutils"
	"ai-chatbox-be/internal/repository/contract"
	"ai-chatbox-be/internal/repository/specification"
	"ai-chatbox-be/pkg/events"
	"ai-chatbox-be/pkg/pdfgen"

	"github.com/google/uuid"
	"github.com/mileusna/useragent"
)

type IShareService interface {
	Create(ctx context.Context, request *dto.CreateShareRequest) (*dto.CreateShareResponse, error)
	Resolve(ctx context.Context, shareToken, ipAddress, userAgent string) (*dto.SharedSessionResponse, error)
	AddMessage(ctx context.Context, shareToken string, request *dto.AddSharedMessageRequest) (*dto.AddSharedMessageResponse, error)
	FetchPdf(ctx context.Context, shareToken string) ([]byte, string, error)
	Info(ctx context.Context, shareToken string) (*dto.SharedSessionInfoResponse, error)
}

type shareService struct {
	sessionRepo contract.ChatSessionRepository
	messageRepo contract.ChatMessageRepository
	shareRepo   contract.SharedSessionRepository
	accessRepo  contract.SharedAccessRepository
	appConfig   config.AppConfig
	publisher   *events.Publisher
	logger      logger.ILogger
}

func NewShareService(
	sessionRepo contract.ChatSessionRepository,
	messageRepo contract.ChatMessageRepository,
	shareRepo contract.SharedSessionRepository,
	accessRepo contract.SharedAccessRepository,
	appConfig config.AppConfig,
	publisher *events.Publisher,
	sysLogger logger.ILogger,
) IShareService {
	return &shareService{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		shareRepo:   shareRepo,
		accessRepo:  accessRepo,
		appConfig:   appConfig,
		publisher:   publisher,
		logger:      sysLogger,
	}
}

func (ss *shareService) Create(ctx context.Context, request *dto.CreateShareRequest) (*dto.CreateShareResponse, error) {
	session, err := ss.sessionRepo.FindOne(ctx, specification.BySessionToken{SessionToken: request.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("Original session not found")
	}

	title := strings.TrimSpace(request.Title)
	if title == "" {
		title = session.Title
	}
	if title == "" {
		title = constant.ShareDefaultTitle
	}

	expiresHours := constant.ShareDefaultExpireHours
	if request.ExpiresHours != nil {
		expiresHours = *request.ExpiresHours
	}
	var expiresAt *time.Time
	if expiresHours > 0 {
		at := time.Now().Add(time.Duration(expiresHours) * time.Hour)
		expiresAt = &at
	}

	now := time.Now()
	share := &entity.SharedSession{
		Id:                uuid.New(),
		OriginalSessionId: session.Id,
		ShareToken:        uuid.NewString()[:constant.ShareTokenLength],
		Title:             title,
		IsActive:          true,
		AllowEditing:      request.AllowEditing,
		ExpiresAt:         expiresAt,
		LastSynced:        now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// The transcript itself is rendered on demand; creation only proves
	// the session renders cleanly and records the download location.
	if _, pdfErr := ss.renderTranscript(ctx, share); pdfErr != nil {
		ss.logger.Warn("SHARE", "PDF generation failed at share creation", map[string]interface{}{
			"share_token": share.ShareToken,
			"error":       pdfErr.Error(),
		})
	} else {
		share.PdfUrl = fmt.Sprintf("/api/chat/shared/%s/pdf", share.ShareToken)
		share.PdfGeneratedAt = &now
	}

	if err := ss.shareRepo.Create(ctx, share); err != nil {
		return nil, err
	}

	ss.publisher.PublishShareCreated(share.ShareToken, request.SessionId)

	return &dto.CreateShareResponse{
		Success:    true,
		ShareToken: share.ShareToken,
		ShareUrl:   fmt.Sprintf("%s/chat/shared/%s/", ss.appConfig.ClientURL, share.ShareToken),
		PdfUrl:     share.PdfUrl,
		ExpiresAt:  share.ExpiresAt,
		Message:    "Share link created successfully",
	}, nil
}

func (ss *shareService) Resolve(ctx context.Context, shareToken, ipAddress, userAgent string) (*dto.SharedSessionResponse, error) {
	share, err := ss.findShare(ctx, shareToken)
	if err != nil {
		return nil, err
	}
	if err := checkShareAlive(share); err != nil {
		return nil, err
	}

	access := &entity.SharedAccess{
		Id:              uuid.New(),
		SharedSessionId: share.Id,
		IpAddress:       ipAddress,
		UserAgent:       userAgent,
		SessionData:     clientDetails(userAgent),
		AccessedAt:      time.Now(),
	}
	if err := ss.accessRepo.Create(ctx, access); err != nil {
		ss.logger.Warn("SHARE", "Failed to record share access", map[string]interface{}{
			"share_token": shareToken,
			"error":       err.Error(),
		})
	}

	share.AccessCount++
	share.LastSynced = time.Now()
	share.UpdatedAt = time.Now()
	if err := ss.shareRepo.Update(ctx, share); err != nil {
		return nil, err
	}

	messages, err := ss.loadMessages(ctx, share.OriginalSessionId)
	if err != nil {
		return nil, err
	}

	session, err := ss.sessionRepo.FindOne(ctx, specification.ByID{ID: share.OriginalSessionId})
	if err != nil {
		return nil, err
	}
	sessionToken := share.ShareToken
	if session != nil {
		sessionToken = session.SessionId
	}

	ss.publisher.PublishShareAccessed(share.ShareToken, ipAddress, share.AccessCount)

	return &dto.SharedSessionResponse{
		SessionId:   sessionToken,
		Title:       share.Title,
		Messages:    messages,
		IsEditable:  share.AllowEditing,
		LastSynced:  share.LastSynced,
		AccessCount: share.AccessCount,
		PdfUrl:      share.PdfUrl,
		ExpiresAt:   share.ExpiresAt,
	}, nil
}

func (ss *shareService) AddMessage(ctx context.Context, shareToken string, request *dto.AddSharedMessageRequest) (*dto.AddSharedMessageResponse, error) {
	share, err := ss.findShare(ctx, shareToken)
	if err != nil {
		return nil, err
	}
	if !share.AllowEditing {
		return nil, serverutils.NewForbiddenError("Editing is not allowed for this shared session")
	}
	if err := checkShareAlive(share); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, serverutils.NewValidationError("Message content cannot be empty")
	}
	role := request.Role
	if role == "" {
		role = constant.ChatMessageRoleUser
	}

	message := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: share.OriginalSessionId,
		Role:          role,
		Content:       content,
		Metadata:      map[string]interface{}{"via_share": share.ShareToken},
		CreatedAt:     time.Now(),
	}
	if err := ss.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	share.LastSynced = time.Now()
	share.UpdatedAt = time.Now()
	if err := ss.shareRepo.Update(ctx, share); err != nil {
		return nil, err
	}

	return &dto.AddSharedMessageResponse{
		Success:   true,
		MessageId: message.Id.String(),
		Timestamp: message.CreatedAt,
		Message:   "Message added successfully",
	}, nil
}

// FetchPdf renders the transcript from the live messages on every call, so
// the download always reflects the current state of the original session.
func (ss *shareService) FetchPdf(ctx context.Context, shareToken string) ([]byte, string, error) {
	share, err := ss.findShare(ctx, shareToken)
	if err != nil {
		return nil, "", err
	}
	if err := checkShareAlive(share); err != nil {
		return nil, "", err
	}

	document, err := ss.renderTranscript(ctx, share)
	if err != nil {
		return nil, "", serverutils.NewInternalError("Failed to generate PDF: %v", err)
	}

	now := time.Now()
	share.PdfGeneratedAt = &now
	share.UpdatedAt = now
	if err := ss.shareRepo.Update(ctx, share); err != nil {
		ss.logger.Warn("SHARE", "Failed to record PDF generation time", map[string]interface{}{
			"share_token": shareToken,
			"error":       err.Error(),
		})
	}

	fileName := fmt.Sprintf("chat_session_%s.pdf", share.ShareToken)
	return document, fileName, nil
}

func (ss *shareService) Info(ctx context.Context, shareToken string) (*dto.SharedSessionInfoResponse, error) {
	share, err := ss.findShare(ctx, shareToken)
	if err != nil {
		return nil, err
	}
	return &dto.SharedSessionInfoResponse{
		Title:        share.Title,
		IsActive:     share.IsActive,
		AllowEditing: share.AllowEditing,
		AccessCount:  share.AccessCount,
		CreatedAt:    share.CreatedAt,
		LastSynced:   share.LastSynced,
		ExpiresAt:    share.ExpiresAt,
		PdfUrl:       share.PdfUrl,
	}, nil
}

func (ss *shareService) findShare(ctx context.Context, shareToken string) (*entity.SharedSession, error) {
	share, err := ss.shareRepo.FindOne(ctx, specification.ByShareToken{ShareToken: shareToken})
	if err != nil {
		return nil, err
	}
	if share == nil {
		return nil, serverutils.NewNotFoundError("Shared session not found")
	}
	return share, nil
}

func checkShareAlive(share *entity.SharedSession) error {
	if share.Expired(time.Now()) {
		return serverutils.NewGoneError("Shared session has expired")
	}
	if !share.IsActive {
		return serverutils.NewGoneError("Shared session is no longer active")
	}
	return nil
}

func (ss *shareService) loadMessages(ctx context.Context, sessionId uuid.UUID) ([]dto.MessageResponse, error) {
	messages, err := ss.messageRepo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.MessageResponse, len(messages))
	for i, message := range messages {
		metadata := message.Metadata
		if metadata == nil {
			metadata = map[string]interface{}{}
		}
		responses[i] = dto.MessageResponse{
			Id:        message.Id,
			Role:      message.Role,
			Content:   message.Content,
			Timestamp: message.CreatedAt,
			Metadata:  metadata,
		}
	}
	return responses, nil
}

func (ss *shareService) renderTranscript(ctx context.Context, share *entity.SharedSession) ([]byte, error) {
	messages, err := ss.messageRepo.FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: share.OriginalSessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	transcript := make([]pdfgen.TranscriptMessage, len(messages))
	for i, message := range messages {
		transcript[i] = pdfgen.TranscriptMessage{
			Role:      message.Role,
			Content:   message.Content,
			Timestamp: message.CreatedAt,
		}
	}
	return pdfgen.GenerateTranscript(share.ShareToken, share.Title, transcript)
}

func clientDetails(userAgent string) map[string]interface{} {
	ua := useragent.Parse(userAgent)
	return map[string]interface{}{
		"browser":         ua.Name,
		"browser_version": ua.Version,
		"os":              ua.OS,
		"os_version":      ua.OSVersion,
		"device":          ua.Device,
		"is_mobile":       ua.Mobile,
		"is_tablet":       ua.Tablet,
		"is_desktop":      ua.Desktop,
		"is_bot":          ua.Bot,
	}
}
