package constant

// Share defaults
const (
	ShareTokenLength        = 8
	ShareDefaultTitle       = "Shared Chat"
	ShareDefaultExpireHours = 24
)
