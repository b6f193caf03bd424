package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GmailConnectionModel is the GORM-specific struct for the 'gmail_connections' table.
// A user has at most one connection, so user_id is the key.
type GmailConnectionModel struct {
	UserID      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Credentials datatypes.JSON `gorm:"type:jsonb;not null"`
	Email       string         `gorm:"type:varchar(320);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GmailConnectionModel) TableName() string {
	return "gmail_connections"
}
