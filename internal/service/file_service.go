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
	"ai-chatbox-be/pkg/extract"

	"github.com/google/uuid"
)

type IFileService interface {
	Upload(ctx context.Context, fileName string, data []byte, description string) (*dto.ParsedFileResponse, error)
	GetAll(ctx context.Context) ([]*dto.ParsedFileResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ParsedFileResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string) ([]*dto.ParsedFileResponse, error)
	LLMContext(ctx context.Context) (*dto.LLMContextResponse, error)
}

type fileService struct {
	fileRepo  contract.ParsedFileRepository
	publisher *events.Publisher
	logger    logger.ILogger
}

func NewFileService(fileRepo contract.ParsedFileRepository, publisher *events.Publisher, sysLogger logger.ILogger) IFileService {
	return &fileService{
		fileRepo:  fileRepo,
		publisher: publisher,
		logger:    sysLogger,
	}
}

func (fs *fileService) Upload(ctx context.Context, fileName string, data []byte, description string) (*dto.ParsedFileResponse, error) {
	if int64(len(data)) > constant.MaxUploadSize {
		return nil, serverutils.NewValidationError("File size exceeds 10MB limit")
	}

	fileType := extract.DetectType(fileName)
	if !isSupportedType(fileType) {
		return nil, serverutils.NewValidationError(
			fmt.Sprintf("Unsupported file type. Supported types: %s", strings.Join(constant.SupportedFileTypes, ", ")))
	}

	content, err := extract.Extract(data, fileType)
	if err != nil {
		fs.logger.Error("FILE", "Extraction failed", map[string]interface{}{
			"name":  fileName,
			"type":  fileType,
			"error": err.Error(),
		})
		return nil, serverutils.NewInternalError("Failed to parse file: %v", err)
	}

	analysis := extract.Analyze(content, fileName, fileType)
	summary := extract.Summarize(content, constant.FileSummaryMaxLength)

	file := &entity.ParsedFile{
		Id:            uuid.New(),
		OriginalName:  fileName,
		FileType:      fileType,
		FileSize:      int64(len(data)),
		ParsedContent: content,
		Metadata: map[string]interface{}{
			"description": description,
			"upload_size": int64(len(data)),
			"analysis":    analysis,
			"summary":     summary,
			"insights":    analysis.Insights,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := fs.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	fs.publisher.PublishFileUploaded(file.Id.String(), file.OriginalName, file.FileType, file.FileSize)

	return toParsedFileResponse(file), nil
}

func (fs *fileService) GetAll(ctx context.Context) ([]*dto.ParsedFileResponse, error) {
	files, err := fs.fileRepo.FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}
	return toParsedFileResponses(files), nil
}

func (fs *fileService) Get(ctx context.Context, id uuid.UUID) (*dto.ParsedFileResponse, error) {
	file, err := fs.fileRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, serverutils.NewNotFoundError("File not found")
	}
	return toParsedFileResponse(file), nil
}

func (fs *fileService) Delete(ctx context.Context, id uuid.UUID) error {
	file, err := fs.fileRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if file == nil {
		return serverutils.NewNotFoundError("File not found")
	}
	return fs.fileRepo.Delete(ctx, id)
}

func (fs *fileService) Search(ctx context.Context, query string) ([]*dto.ParsedFileResponse, error) {
	files, err := fs.fileRepo.FindAll(ctx,
		specification.ContentContains{Query: query},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toParsedFileResponses(files), nil
}

// LLMContext exposes the recent files in the shape handed to the model:
// summary, insight tags, and the first 1000 characters of content.
func (fs *fileService) LLMContext(ctx context.Context) (*dto.LLMContextResponse, error) {
	files, err := fs.fileRepo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: constant.FileContextRecentLimit},
	)
	if err != nil {
		return nil, err
	}

	contextFiles := make([]dto.LLMContextFile, len(files))
	for i, file := range files {
		summary, ok := file.Metadata["summary"].(string)
		if !ok || summary == "" {
			summary = truncate(file.ParsedContent, constant.FileSummaryMaxLength)
		}

		insights := metadataInsights(file.Metadata)
		if insights == nil {
			insights = []string{}
		}

		contextFiles[i] = dto.LLMContextFile{
			Id:             file.Id,
			Name:           file.OriginalName,
			Type:           file.FileType,
			Summary:        summary,
			Insights:       insights,
			ContentPreview: truncate(file.ParsedContent, constant.LLMContextPreviewLength),
		}
	}

	return &dto.LLMContextResponse{
		Files:      contextFiles,
		TotalFiles: len(contextFiles),
	}, nil
}

func isSupportedType(fileType string) bool {
	for _, supported := range constant.SupportedFileTypes {
		if fileType == supported {
			return true
		}
	}
	return false
}

// truncate caps content at limit characters, never splitting a rune.
func truncate(content string, limit int) string {
	runes := []rune(content)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return content
}

func toParsedFileResponse(file *entity.ParsedFile) *dto.ParsedFileResponse {
	metadata := file.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return &dto.ParsedFileResponse{
		Id:            file.Id,
		OriginalName:  file.OriginalName,
		FileType:      file.FileType,
		FileSize:      file.FileSize,
		ParsedContent: file.ParsedContent,
		Metadata:      metadata,
		CreatedAt:     file.CreatedAt,
	}
}

func toParsedFileResponses(files []*entity.ParsedFile) []*dto.ParsedFileResponse {
	responses := make([]*dto.ParsedFileResponse, len(files))
	for i, file := range files {
		responses[i] = toParsedFileResponse(file)
	}
	return responses
}
