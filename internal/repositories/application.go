package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id uuid.UUID) (*models.Application, error)
	FindByStudentAndDrive(studentID, driveID uuid.UUID) (*models.Application, error)
	ListByStudent(studentID uuid.UUID, status models.ApplicationStatus, oldestFirst bool) ([]models.Application, error)
	ListByDrive(driveID uuid.UUID) ([]models.Application, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error
	UpdateInterview(id uuid.UUID, date *time.Time, mode models.InterviewMode, location, link string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository. The insert races against the
// composite unique index on (student_id, drive_id); a loser gets ErrDuplicate
// rather than a second row.
func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByID implements ApplicationRepository.
func (r *applicationRepository) FindByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// FindByStudentAndDrive implements ApplicationRepository.
func (r *applicationRepository) FindByStudentAndDrive(studentID, driveID uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("student_id = ? AND drive_id = ?", studentID, driveID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// ListByStudent implements ApplicationRepository.
func (r *applicationRepository) ListByStudent(studentID uuid.UUID, status models.ApplicationStatus, oldestFirst bool) ([]models.Application, error) {
	q := r.db.Preload("Drive").Where("student_id = ?", studentID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	order := "created_at DESC"
	if oldestFirst {
		order = "created_at ASC"
	}

	var apps []models.Application
	if err := q.Order(order).Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// ListByDrive implements ApplicationRepository.
func (r *applicationRepository) ListByDrive(driveID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Student").
		Where("drive_id = ?", driveID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	return apps, nil
}

// UpdateStatus implements ApplicationRepository.
func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateInterview implements ApplicationRepository.
func (r *applicationRepository) UpdateInterview(id uuid.UUID, date *time.Time, mode models.InterviewMode, location, link string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"interview_date":     date,
			"interview_mode":     mode,
			"interview_location": location,
			"interview_link":     link,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update interview details: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
