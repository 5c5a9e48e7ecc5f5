package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusSelected    ApplicationStatus = "selected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusRejected, StatusSelected:
		return true
	}
	return false
}

type InterviewMode string

const (
	InterviewOnline  InterviewMode = "online"
	InterviewOffline InterviewMode = "offline"
)

func (m InterviewMode) Valid() bool {
	return m == InterviewOnline || m == InterviewOffline || m == ""
}

// Application links one candidate to one drive. The composite unique index is
// the store-level guarantee that two concurrent applies for the same pair
// cannot both succeed.
type Application struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_student_drive" json:"student_id"`
	DriveID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_student_drive" json:"drive_id"`
	Status    ApplicationStatus `gorm:"type:text;not null;default:'applied'" json:"status"`

	// Resume content frozen at apply time. Never updated afterwards.
	ResumeSnapshot string `gorm:"type:text" json:"resume_snapshot"`

	InterviewDate     *time.Time    `json:"interview_date,omitempty"`
	InterviewMode     InterviewMode `gorm:"type:text;default:''" json:"interview_mode"`
	InterviewLocation string        `gorm:"type:text" json:"interview_location"`
	InterviewLink     string        `gorm:"type:text" json:"interview_link"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	Student Account `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Drive   Drive   `gorm:"foreignKey:DriveID" json:"drive,omitempty"`
}

func (a *Application) TableName() string {
	return "applications"
}
