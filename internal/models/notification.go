package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AudienceAll      = "all"
	AudienceStudents = "students"
)

// Notification is created as a side effect of drive creation or a status
// change and is read-only afterwards. Visibility is decided at query time:
// audience "all", audience "students" for candidate accounts, or a direct
// recipient match.
type Notification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	DriveID     *uuid.UUID `gorm:"type:uuid" json:"drive_id,omitempty"`
	Audience    string     `gorm:"type:text;default:'all'" json:"audience"`
	RecipientID *uuid.UUID `gorm:"type:uuid" json:"recipient_id,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	Drive *Drive `gorm:"foreignKey:DriveID" json:"drive,omitempty"`
}

func (n *Notification) TableName() string {
	return "notifications"
}

// VisibleTo is the audience predicate: "all" reaches everyone, "students"
// reaches candidate accounts, and a recipient match reaches that account
// regardless of role. The repository's ListVisibleTo query mirrors this
// in SQL.
func (n *Notification) VisibleTo(accountID uuid.UUID, role Role) bool {
	if n.Audience == AudienceAll {
		return true
	}
	if n.Audience == AudienceStudents && role == RoleCandidate {
		return true
	}
	return n.RecipientID != nil && *n.RecipientID == accountID
}
