package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PodcastJobModel is the GORM-specific struct for the 'podcast_jobs' table.
type PodcastJobModel struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	EmailIDs   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Title      string                      `gorm:"type:varchar(255)"`
	Status     string                      `gorm:"type:varchar(20);not null;check:status IN ('queued','running','succeeded','failed')"`
	Error      string                      `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	StartedAt  *time.Time
	FinishedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (PodcastJobModel) TableName() string {
	return "podcast_jobs"
}
