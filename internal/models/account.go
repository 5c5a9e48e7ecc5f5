package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleRecruiter
}

type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Role         Role      `gorm:"type:text;not null" json:"role"`
	FullName     string    `gorm:"type:text;not null" json:"full_name"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`

	Gender   string `gorm:"type:text" json:"gender"`
	Location string `gorm:"type:text" json:"location"`

	// Candidate-only profile fields.
	Branch         string         `gorm:"type:text" json:"branch"`
	GraduationYear *int           `json:"graduation_year,omitempty"`
	CGPA           *float64       `json:"cgpa,omitempty"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (a *Account) TableName() string {
	return "accounts"
}

var allowedGenders = map[string]bool{
	"": true, "male": true, "female": true, "nonbinary": true, "others": true,
}

func ValidGender(g string) bool {
	return allowedGenders[g]
}
