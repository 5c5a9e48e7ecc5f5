package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

type ResumeRepository interface {
	FindByOwner(ownerID uuid.UUID) (*models.Resume, error)
	UpsertSections(ownerID uuid.UUID, headline string, skills []string, education, projects, experience, links string) (*models.Resume, error)
	UpsertFile(ownerID uuid.UUID, originalName, path, mimeType, url, rawText string, uploadedAt time.Time) (*models.Resume, error)
	FindByOwners(ownerIDs []uuid.UUID) ([]models.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// FindByOwner implements ResumeRepository.
func (r *resumeRepository) FindByOwner(ownerID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("owner_id = ?", ownerID).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &resume, nil
}

// UpsertSections replaces every free-text field of the owner's single resume,
// creating the record if it does not exist. File metadata is left untouched.
func (r *resumeRepository) UpsertSections(ownerID uuid.UUID, headline string, skills []string, education, projects, experience, links string) (*models.Resume, error) {
	resume := models.Resume{
		OwnerID:    ownerID,
		Headline:   headline,
		Skills:     pq.StringArray(skills),
		Education:  education,
		Projects:   projects,
		Experience: experience,
		Links:      links,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"headline", "skills", "education", "projects", "experience", "links", "updated_at",
		}),
	}).Create(&resume).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert resume: %w", err)
	}

	return r.FindByOwner(ownerID)
}

// UpsertFile merges uploaded-file metadata and extracted text into the
// owner's resume without touching the free-text sections.
func (r *resumeRepository) UpsertFile(ownerID uuid.UUID, originalName, path, mimeType, url, rawText string, uploadedAt time.Time) (*models.Resume, error) {
	resume := models.Resume{
		OwnerID:          ownerID,
		FileOriginalName: originalName,
		FilePath:         path,
		FileMimeType:     mimeType,
		FileURL:          url,
		RawText:          rawText,
		UploadedAt:       &uploadedAt,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"file_original_name", "file_path", "file_mime_type", "file_url", "raw_text", "uploaded_at", "updated_at",
		}),
	}).Create(&resume).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert resume file: %w", err)
	}

	return r.FindByOwner(ownerID)
}

// FindByOwners implements ResumeRepository.
func (r *resumeRepository) FindByOwners(ownerIDs []uuid.UUID) ([]models.Resume, error) {
	var resumes []models.Resume
	if err := r.db.Where("owner_id IN ?", ownerIDs).Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to find resumes: %w", err)
	}
	return resumes, nil
}
