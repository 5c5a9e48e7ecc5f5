package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Resume holds exactly one record per account. Text-section saves replace all
// the free-text fields; file uploads merge only the file metadata and RawText.
type Resume struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`

	Headline   string         `gorm:"type:text" json:"headline"`
	Skills     pq.StringArray `gorm:"type:text[]" json:"skills"`
	Education  string         `gorm:"type:text" json:"education"`
	Projects   string         `gorm:"type:text" json:"projects"`
	Experience string         `gorm:"type:text" json:"experience"`
	Links      string         `gorm:"type:text" json:"links"`

	FileOriginalName string     `gorm:"type:text" json:"file_original_name"`
	FilePath         string     `gorm:"type:text" json:"file_path"`
	FileMimeType     string     `gorm:"type:text" json:"file_mime_type"`
	FileURL          string     `gorm:"type:text" json:"file_url"`
	UploadedAt       *time.Time `json:"uploaded_at,omitempty"`

	// Plain text extracted from the uploaded file, used for ATS analysis.
	RawText string `gorm:"type:text" json:"raw_text"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	Owner Account `gorm:"foreignKey:OwnerID" json:"-"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

// SnapshotText is the content frozen into an application at apply time.
// Extracted file text wins over the free-text sections.
func (r *Resume) SnapshotText() string {
	if r.RawText != "" {
		return r.RawText
	}
	parts := []string{
		r.Headline,
		strings.Join(r.Skills, ", "),
		r.Education,
		r.Projects,
		r.Experience,
	}
	return strings.Join(parts, "\n")
}
