package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

type AccountRepository interface {
	Create(account *models.Account) error
	FindByID(id uuid.UUID) (*models.Account, error)
	FindByEmail(email string) (*models.Account, error)
	UpdateProfile(id uuid.UUID, branch string, graduationYear *int, cgpa *float64, skills []string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create implements AccountRepository. Emails are stored lower-case so the
// unique index doubles as a case-insensitive uniqueness check.
func (r *accountRepository) Create(account *models.Account) error {
	account.Email = strings.ToLower(account.Email)
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// FindByID implements AccountRepository.
func (r *accountRepository) FindByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &account, nil
}

// FindByEmail implements AccountRepository.
func (r *accountRepository) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &account, nil
}

// UpdateProfile implements AccountRepository.
func (r *accountRepository) UpdateProfile(id uuid.UUID, branch string, graduationYear *int, cgpa *float64, skills []string) error {
	result := r.db.Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"branch":          branch,
			"graduation_year": graduationYear,
			"cgpa":            cgpa,
			"skills":          pq.StringArray(skills),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
