package entity

// Header placeholders used when a message lacks the header.
const (
	DefaultSubject = "No Subject"
	DefaultSender  = "Unknown Sender"
	DefaultDate    = "Unknown Date"
)

// EmailSummary is a structured preview of one mail message. It is never persisted.
type EmailSummary struct {
	ID      string `json:"id"`      // Provider message identifier.
	Subject string `json:"subject"` // Subject header.
	From    string `json:"from"`    // Sender display string.
	Date    string `json:"date"`    // Provider native date string, not reparsed.
	Snippet string `json:"snippet"` // Provider truncated body preview.
}

// GmailLabel is a mailbox label.
type GmailLabel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
