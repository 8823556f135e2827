package events

import "time"

// Event types emitted by the backend.
const (
	TypeFileUploaded    = "FILE_UPLOADED"
	TypeShareCreated    = "SHARE_CREATED"
	TypeShareAccessed   = "SHARE_ACCESSED"
	TypeSessionDeleted  = "SESSION_DELETED"
	TypeSessionImported = "SESSION_IMPORTED"
)

// Event is the payload published on the audit topic.
type Event struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
