package constant

// Supported upload types
const (
	FileTypePdf  = "pdf"
	FileTypeDocx = "docx"
	FileTypeCsv  = "csv"
	FileTypeTxt  = "txt"
)

var SupportedFileTypes = []string{FileTypePdf, FileTypeDocx, FileTypeCsv, FileTypeTxt}

// Upload and preview limits
const (
	MaxUploadSize            = 10 * 1024 * 1024 // 10MB
	FileSummaryMaxLength     = 500
	LLMContextPreviewLength  = 1000
	ExportFileContentMaxSize = 2000
)
