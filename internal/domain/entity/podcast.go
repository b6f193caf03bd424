package entity

import (
	"time"

	"github.com/google/uuid"
)

// Podcast is a generated narration and its audio artifact.
type Podcast struct {
	ID             uuid.UUID `json:"id"`              // Equal to the id of the job that produced it.
	UserID         uuid.UUID `json:"user_id"`         // Owner.
	Title          string    `json:"title"`           // Display title.
	ScriptMarkdown string    `json:"script_markdown"` // Narration script.
	AudioURL       string    `json:"audio_url"`       // Public URL of the mp3, or a placeholder.
	Duration       int       `json:"duration"`        // Approximate duration in seconds.
	SourceEmails   int       `json:"source_emails"`   // Number of emails the script was built from.
	CreatedAt      time.Time `json:"created_at"`
}

// ScriptResult is the output of script synthesis.
type ScriptResult struct {
	Script            string `json:"script_markdown"`
	ApproxDurationSec int    `json:"approx_duration_sec"`
	WordCount         int    `json:"word_count"`
}
