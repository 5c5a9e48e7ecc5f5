package models

import (
	"time"

	"github.com/google/uuid"
)

// Drive is a recruiter-posted hiring event. Immutable once created.
type Drive struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                string     `gorm:"type:text;not null" json:"name"`
	Role                string     `gorm:"type:text;not null" json:"role"`
	Location            string     `gorm:"type:text" json:"location"`
	VisitDate           *time.Time `json:"visit_date,omitempty"`
	CTC                 string     `gorm:"type:text" json:"ctc"`
	EligibilityCriteria string     `gorm:"type:text" json:"eligibility_criteria"`
	Description         string     `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Drive) TableName() string {
	return "drives"
}
