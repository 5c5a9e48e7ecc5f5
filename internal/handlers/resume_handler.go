package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/auth"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/services"
)

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
	driveRepo  repositories.DriveRepository
	matcher    services.MatcherService
	storage    services.StorageService
	extractor  services.TextExtractor
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	driveRepo repositories.DriveRepository,
	matcher services.MatcherService,
	storage services.StorageService,
	extractor services.TextExtractor,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo: resumeRepo,
		driveRepo:  driveRepo,
		matcher:    matcher,
		storage:    storage,
		extractor:  extractor,
	}
}

// HandleGet handles GET /student/resume
func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	resume, err := h.resumeRepo.FindByOwner(identity.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(fiber.Map{"resume": nil})
		}
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"resume": resume})
}

// HandleSave handles PUT /student/resume. The text sections are replaced
// wholesale; when ats_drive_id names a drive, the saved resume is scored
// against it and the score block rides along in the response.
func (h *ResumeHandler) HandleSave(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	var req models.ResumeSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resume, err := h.resumeRepo.UpsertSections(
		identity.ID,
		req.Headline,
		splitSkills(req.Skills),
		req.Education,
		req.Projects,
		req.Experience,
		req.Links,
	)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := fiber.Map{"resume": resume}
	if req.ATSDriveID != "" {
		resumeText := strings.Join([]string{
			req.Headline, req.Skills, req.Education, req.Projects, req.Experience,
		}, " ")
		if ats := h.scoreAgainstDrive(c, req.ATSDriveID, resumeText); ats != nil {
			response["ats"] = ats
		}
	}

	return c.JSON(response)
}

// HandleUpload handles POST /student/resume/upload (multipart field
// "resume_file"). The file write is synchronous; text extraction is best
// effort and an extraction failure still keeps the upload.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	file, err := c.FormFile("resume_file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_file is required",
		})
	}

	stored, err := h.storage.SaveResume(file, identity.ID.String())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	rawText, err := h.extractor.ExtractText(stored.Path)
	if err != nil {
		log.Printf("⚠️  Text extraction failed for %s: %v\n", stored.Path, err)
		rawText = ""
	}

	resume, err := h.resumeRepo.UpsertFile(
		identity.ID,
		stored.Original,
		stored.Path,
		stored.MimeType,
		stored.URL,
		rawText,
		stored.SavedAt,
	)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := fiber.Map{"resume": resume}
	if atsDriveID := c.FormValue("ats_drive_id"); atsDriveID != "" && strings.TrimSpace(rawText) != "" {
		if ats := h.scoreAgainstDrive(c, atsDriveID, rawText); ats != nil {
			response["ats"] = ats
		}
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func (h *ResumeHandler) scoreAgainstDrive(c *fiber.Ctx, driveIDStr, resumeText string) *services.MatchResult {
	driveID, err := uuid.Parse(driveIDStr)
	if err != nil {
		return nil
	}
	drive, err := h.driveRepo.FindByID(driveID)
	if err != nil {
		return nil
	}

	jobText := strings.Join([]string{drive.Role, drive.Description, drive.EligibilityCriteria}, " ")
	result := h.matcher.Match(c.Context(), resumeText, jobText)
	return &result
}

func splitSkills(skills string) []string {
	var out []string
	for _, s := range strings.Split(skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
