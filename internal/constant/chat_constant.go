package constant

// Chat message roles
const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

// Relay defaults (used when the request omits decoding parameters)
const (
	DefaultChatModel       = "llama-3.1-8b-instant"
	DefaultChatTemperature = 0.7
	DefaultChatMaxTokens   = 1000
)

// Session title derived from the first message is capped at this length.
const SessionTitleMaxLength = 50

// File context limits for the synthetic system message
const (
	FileContextRecentLimit   = 5
	FileContextPreviewLength = 800
)

const FileContextInstruction = `You are an AI assistant with access to the user's uploaded files.

%s

You can:
- Answer questions about the content of these files
- Summarize any of the files
- Extract specific information from them
- Compare information across files
- Help analyze or interpret the content
- Provide insights based on the file content

When the user asks about files, be specific about which file you're referencing and provide detailed, helpful responses based on the actual content.`
