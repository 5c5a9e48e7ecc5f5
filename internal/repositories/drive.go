package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

// DriveFilter carries the student-home search parameters. Zero values mean
// "no constraint".
type DriveFilter struct {
	Query    string
	Location string
	Upcoming bool
	Limit    int
}

type DriveRepository interface {
	Create(drive *models.Drive) error
	FindByID(id uuid.UUID) (*models.Drive, error)
	FindByIDs(ids []uuid.UUID) ([]models.Drive, error)
	Search(filter DriveFilter) ([]models.Drive, error)
	Count() (int64, error)
}

type driveRepository struct {
	db *gorm.DB
}

func NewDriveRepository(db *gorm.DB) DriveRepository {
	return &driveRepository{db: db}
}

// Create implements DriveRepository.
func (r *driveRepository) Create(drive *models.Drive) error {
	if err := r.db.Create(drive).Error; err != nil {
		return fmt.Errorf("failed to create drive: %w", err)
	}
	return nil
}

// FindByID implements DriveRepository.
func (r *driveRepository) FindByID(id uuid.UUID) (*models.Drive, error) {
	var drive models.Drive
	if err := r.db.Where("id = ?", id).First(&drive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find drive: %w", err)
	}
	return &drive, nil
}

// FindByIDs implements DriveRepository.
func (r *driveRepository) FindByIDs(ids []uuid.UUID) ([]models.Drive, error) {
	var drives []models.Drive
	if err := r.db.Where("id IN ?", ids).Find(&drives).Error; err != nil {
		return nil, fmt.Errorf("failed to find drives: %w", err)
	}
	return drives, nil
}

// Search implements DriveRepository. Role and location match case-insensitive
// substrings; upcoming restricts to visit dates from now on.
func (r *driveRepository) Search(filter DriveFilter) ([]models.Drive, error) {
	q := r.db.Model(&models.Drive{})

	if filter.Query != "" {
		q = q.Where("role ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Upcoming {
		q = q.Where("visit_date >= ?", time.Now())
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var drives []models.Drive
	err := q.Order("visit_date ASC NULLS LAST").
		Order("created_at DESC").
		Limit(limit).
		Find(&drives).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search drives: %w", err)
	}
	return drives, nil
}

// Count implements DriveRepository.
func (r *driveRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Drive{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count drives: %w", err)
	}
	return count, nil
}
