package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/auth"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/services"
)

type ApplicationHandler struct {
	lifecycle  services.LifecycleService
	appRepo    repositories.ApplicationRepository
	resumeRepo repositories.ResumeRepository
	driveRepo  repositories.DriveRepository
}

func NewApplicationHandler(
	lifecycle services.LifecycleService,
	appRepo repositories.ApplicationRepository,
	resumeRepo repositories.ResumeRepository,
	driveRepo repositories.DriveRepository,
) *ApplicationHandler {
	return &ApplicationHandler{
		lifecycle:  lifecycle,
		appRepo:    appRepo,
		resumeRepo: resumeRepo,
		driveRepo:  driveRepo,
	}
}

// HandleApply handles POST /student/drives/:id/apply. Applying twice to the
// same drive responds 200 with the existing application instead of an error.
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	driveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid drive id",
		})
	}

	app, created, err := h.lifecycle.Apply(c.Context(), identity.ID, driveID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Drive not found",
			})
		}
		return fiber.ErrInternalServerError
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"application": app,
		"created":     created,
	})
}

// HandleListMine handles GET /student/applications. Query params: status
// (applied|shortlisted|rejected|selected), sort=oldest.
func (h *ApplicationHandler) HandleListMine(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	status := models.ApplicationStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status filter",
		})
	}

	apps, err := h.appRepo.ListByStudent(identity.ID, status, c.Query("sort") == "oldest")
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"applications": apps})
}

// applicantView pairs an application with the current resume file of its
// student, so recruiters can open the uploaded document.
type applicantView struct {
	models.Application
	ResumeFileURL  string `json:"resume_file_url,omitempty"`
	ResumeFileName string `json:"resume_file_name,omitempty"`
}

// HandleListApplicants handles GET /admin/drives/:id/applicants.
func (h *ApplicationHandler) HandleListApplicants(c *fiber.Ctx) error {
	driveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid drive id",
		})
	}
	if _, err := h.driveRepo.FindByID(driveID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Drive not found",
			})
		}
		return fiber.ErrInternalServerError
	}

	apps, err := h.appRepo.ListByDrive(driveID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	studentIDs := make([]uuid.UUID, 0, len(apps))
	for _, app := range apps {
		studentIDs = append(studentIDs, app.StudentID)
	}

	filesByOwner := map[uuid.UUID]models.Resume{}
	if len(studentIDs) > 0 {
		if resumes, err := h.resumeRepo.FindByOwners(studentIDs); err == nil {
			for _, r := range resumes {
				filesByOwner[r.OwnerID] = r
			}
		}
	}

	views := make([]applicantView, 0, len(apps))
	for _, app := range apps {
		view := applicantView{Application: app}
		if r, ok := filesByOwner[app.StudentID]; ok {
			view.ResumeFileURL = r.FileURL
			view.ResumeFileName = r.FileOriginalName
		}
		views = append(views, view)
	}

	return c.JSON(fiber.Map{"applicants": views})
}

// HandleStatusUpdate handles PUT /admin/applications/:id/status.
func (h *ApplicationHandler) HandleStatusUpdate(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application id",
		})
	}

	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	app, err := h.lifecycle.Transition(c.Context(), appID, models.ApplicationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid application status",
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		default:
			return fiber.ErrInternalServerError
		}
	}

	return c.JSON(fiber.Map{"application": app})
}

// HandleInterviewUpdate handles PUT /admin/applications/:id/interview.
func (h *ApplicationHandler) HandleInterviewUpdate(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application id",
		})
	}

	var req models.InterviewUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid interview date",
			})
		}
		date = &parsed
	}

	app, err := h.lifecycle.ScheduleInterview(c.Context(), appID, date, models.InterviewMode(req.Mode), req.Location, req.Link)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"application": app})
}
