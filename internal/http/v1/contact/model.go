package contact

// Receipt confirms a stored message.
type Receipt struct {
	Notice    string `json:"notice"    doc:"Message to show the visitor" example:"Thank you for your message! We will get back to you soon."`
	Timestamp string `json:"timestamp" doc:"Time the message was stored" example:"2024-01-15T10:30:00.000Z"`
}
