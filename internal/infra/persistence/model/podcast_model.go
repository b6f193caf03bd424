package model

import (
	"time"

	"github.com/google/uuid"
)

// PodcastModel is the GORM-specific struct for the 'podcasts' table.
type PodcastModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_podcasts_user_created,priority:1"`
	Title          string    `gorm:"type:varchar(255);not null"`
	ScriptMarkdown string    `gorm:"type:text;not null"`
	AudioURL       string    `gorm:"type:text"`
	Duration       int       `gorm:"not null"`
	SourceEmails   int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"index:idx_podcasts_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (PodcastModel) TableName() string {
	return "podcasts"
}
