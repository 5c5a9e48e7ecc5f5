package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/auth"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
)

type NotificationHandler struct {
	notifRepo repositories.NotificationRepository
}

func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifRepo: notifRepo}
}

// HandleList handles GET /notifications. The repository applies the audience
// filter for the caller's role.
func (h *NotificationHandler) HandleList(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	limit, _ := strconv.Atoi(c.Query("limit"))
	notifications, err := h.notifRepo.ListVisibleTo(identity.ID, identity.Role, limit)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}
