package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/auth"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
)

type ProfileHandler struct {
	accountRepo repositories.AccountRepository
}

func NewProfileHandler(accountRepo repositories.AccountRepository) *ProfileHandler {
	return &ProfileHandler{accountRepo: accountRepo}
}

// HandleGet handles GET /student/profile
func (h *ProfileHandler) HandleGet(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	account, err := h.accountRepo.FindByID(identity.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Account not found",
			})
		}
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"profile": account})
}

// HandleUpdate handles PUT /student/profile
func (h *ProfileHandler) HandleUpdate(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	var req models.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if req.CGPA != nil && (*req.CGPA < 0 || *req.CGPA > 10) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "CGPA must be between 0 and 10",
		})
	}

	err := h.accountRepo.UpdateProfile(identity.ID, req.Branch, req.GraduationYear, req.CGPA, splitSkills(req.Skills))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Account not found",
			})
		}
		return fiber.ErrInternalServerError
	}

	account, err := h.accountRepo.FindByID(identity.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"profile": account})
}
