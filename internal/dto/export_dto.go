package dto

// ExportDocument is the portable interchange format for a session. Field
// names must round-trip unchanged through import.
type ExportDocument struct {
	SessionId string                 `json:"sessionId"`
	Title     string                 `json:"title"`
	Messages  []ExportMessage        `json:"messages"`
	Files     []ExportFile           `json:"files"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type ExportMessage struct {
	Id        string                 `json:"id"`
	Role      string                 `json:"role"`
	Content   string                 `json:"content"`
	Timestamp string                 `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type ExportFile struct {
	Id       string                 `json:"id"`
	Name     string                 `json:"name"`
	Type     string                 `json:"type"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

type ImportResponse struct {
	Success          bool   `json:"success"`
	SessionId        string `json:"sessionId"`
	Title            string `json:"title"`
	ImportedMessages int    `json:"importedMessages"`
	ImportedFiles    int    `json:"importedFiles"`
	Message          string `json:"message"`
}

type ExportInfoResponse struct {
	SupportedFormats   []string `json:"supportedFormats"`
	MaxFileSize        string   `json:"maxFileSize"`
	CompressionEnabled bool     `json:"compressionEnabled"`
	Features           []string `json:"features"`
}
