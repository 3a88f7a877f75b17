package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for the worker.
// Template selects a known rendering; raw Subject/Text/HTML are used when
// Template is empty.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "verify_email"
	Data     map[string]any `json:"data,omitempty"`
}
