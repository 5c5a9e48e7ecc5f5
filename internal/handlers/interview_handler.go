package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/services"
)

type InterviewHandler struct {
	interview services.InterviewService
	driveRepo repositories.DriveRepository
}

func NewInterviewHandler(interview services.InterviewService, driveRepo repositories.DriveRepository) *InterviewHandler {
	return &InterviewHandler{interview: interview, driveRepo: driveRepo}
}

// HandleGenerate handles POST /student/interview. Question generation always
// succeeds; upstream failures fall back to the canned set.
func (h *InterviewHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.InterviewGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	driveID, err := uuid.Parse(req.DriveID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid drive id",
		})
	}

	drive, err := h.driveRepo.FindByID(driveID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Drive not found",
			})
		}
		return fiber.ErrInternalServerError
	}

	questions := h.interview.GenerateQuestions(c.Context(), drive)
	return c.JSON(fiber.Map{
		"drive":     drive.Name,
		"role":      drive.Role,
		"questions": questions,
	})
}
