package bootstrap

import (
	"ai-chatbox-be/internal/config"
	"ai-chatbox-be/internal/controller"
	"ai-chatbox-be/internal/pkg/logger"
	"ai-chatbox-be/internal/repository/implementation"
	"ai-chatbox-be/internal/service"
	"ai-chatbox-be/pkg/events"
	"ai-chatbox-be/pkg/llm/groq"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const auditTopic = "AUDIT_EVENTS"

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	FileController   controller.IFileController
	ShareController  controller.IShareController
	ExportController controller.IExportController

	// Background services (exposed for main.go to run)
	AuditService service.IAuditService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	publisher := events.NewPublisher(pubSub, auditTopic, sysLogger)

	// Repositories
	sessionRepo := implementation.NewChatSessionRepository(db)
	messageRepo := implementation.NewChatMessageRepository(db)
	fileRepo := implementation.NewParsedFileRepository(db)
	shareRepo := implementation.NewSharedSessionRepository(db)
	accessRepo := implementation.NewSharedAccessRepository(db)

	// Upstream LLM
	llmProvider := groq.NewGroqProvider(cfg.Groq.APIURL, cfg.Groq.APIKey, cfg.Groq.Model)

	// Services
	chatService := service.NewChatService(sessionRepo, messageRepo, fileRepo, shareRepo, llmProvider, publisher, sysLogger)
	fileService := service.NewFileService(fileRepo, publisher, sysLogger)
	shareService := service.NewShareService(sessionRepo, messageRepo, shareRepo, accessRepo, cfg.App, publisher, sysLogger)
	exportService := service.NewExportService(sessionRepo, messageRepo, fileRepo, publisher, sysLogger)
	auditService := service.NewAuditService(pubSub, auditTopic, sysLogger)

	return &Container{
		ChatController:   controller.NewChatController(chatService),
		FileController:   controller.NewFileController(fileService),
		ShareController:  controller.NewShareController(shareService),
		ExportController: controller.NewExportController(exportService),
		AuditService:     auditService,
		Logger:           sysLogger,
	}
}
