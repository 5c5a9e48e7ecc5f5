package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListVisibleTo(accountID uuid.UUID, role models.Role, limit int) ([]models.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create implements NotificationRepository.
func (r *notificationRepository) Create(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListVisibleTo implements NotificationRepository. The WHERE clause is the
// SQL form of models.Notification.VisibleTo: audience "all", audience
// "students" for candidate accounts, or a direct recipient match.
func (r *notificationRepository) ListVisibleTo(accountID uuid.UUID, role models.Role, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 20
	}

	q := r.db.Preload("Drive")
	if role == models.RoleCandidate {
		q = q.Where("audience = ? OR audience = ? OR recipient_id = ?",
			models.AudienceAll, models.AudienceStudents, accountID)
	} else {
		q = q.Where("audience = ? OR recipient_id = ?", models.AudienceAll, accountID)
	}

	var notifications []models.Notification
	err := q.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}
