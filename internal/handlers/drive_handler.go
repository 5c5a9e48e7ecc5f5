package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/auth"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/services"
)

type DriveHandler struct {
	driveRepo   repositories.DriveRepository
	accountRepo repositories.AccountRepository
	appRepo     repositories.ApplicationRepository
	notifRepo   repositories.NotificationRepository
	driveSearch services.DriveSearchService
}

func NewDriveHandler(
	driveRepo repositories.DriveRepository,
	accountRepo repositories.AccountRepository,
	appRepo repositories.ApplicationRepository,
	notifRepo repositories.NotificationRepository,
	driveSearch services.DriveSearchService,
) *DriveHandler {
	return &DriveHandler{
		driveRepo:   driveRepo,
		accountRepo: accountRepo,
		appRepo:     appRepo,
		notifRepo:   notifRepo,
		driveSearch: driveSearch,
	}
}

type driveView struct {
	models.Drive
	Eligibility string `json:"eligibility,omitempty"`
	Applied     bool   `json:"applied"`
}

// HandleList handles GET /drives with q, location and upcoming filters. For
// candidate callers each drive is annotated with their eligibility status
// and whether they already applied.
func (h *DriveHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.DriveFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Upcoming: c.Query("upcoming") == "1",
		Limit:    50,
	}

	drives, err := h.searchDrives(c.Context(), filter)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	identity := auth.FromContext(c)
	views := make([]driveView, 0, len(drives))

	if identity.IsCandidate() {
		var cgpa *float64
		if account, err := h.accountRepo.FindByID(identity.ID); err == nil {
			cgpa = account.CGPA
		}

		applied := h.appliedDriveIDs(identity.ID)
		for _, drive := range drives {
			views = append(views, driveView{
				Drive:       drive,
				Eligibility: string(services.EvaluateEligibility(drive.EligibilityCriteria, cgpa)),
				Applied:     applied[drive.ID],
			})
		}
	} else {
		for _, drive := range drives {
			views = append(views, driveView{Drive: drive})
		}
	}

	return c.JSON(fiber.Map{"drives": views})
}

// HandleGet handles GET /drives/:id
func (h *DriveHandler) HandleGet(c *fiber.Ctx) error {
	driveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid drive ID format",
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

	view := driveView{Drive: *drive}
	identity := auth.FromContext(c)
	if identity.IsCandidate() {
		if account, err := h.accountRepo.FindByID(identity.ID); err == nil {
			view.Eligibility = string(services.EvaluateEligibility(drive.EligibilityCriteria, account.CGPA))
		}
		if _, err := h.appRepo.FindByStudentAndDrive(identity.ID, driveID); err == nil {
			view.Applied = true
		}
	}

	return c.JSON(view)
}

// HandleCreate handles POST /drives (recruiter only). Creation fans out the
// "new company" broadcast notification and, when configured, indexes the
// drive for semantic search.
func (h *DriveHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.DriveCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Name == "" || req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and role are required",
		})
	}

	drive := &models.Drive{
		ID:                  uuid.New(),
		Name:                req.Name,
		Role:                req.Role,
		Location:            req.Location,
		CTC:                 req.CTC,
		EligibilityCriteria: req.EligibilityCriteria,
		Description:         req.Description,
	}
	if req.VisitDate != "" {
		visitDate, err := parseDate(req.VisitDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "visit_date must be RFC 3339 or YYYY-MM-DD",
			})
		}
		drive.VisitDate = &visitDate
	}

	if err := h.driveRepo.Create(drive); err != nil {
		return fiber.ErrInternalServerError
	}

	// Post-commit side effects: broadcast + search index, best effort.
	driveID := drive.ID
	if err := h.notifRepo.Create(&models.Notification{
		ID:       uuid.New(),
		Title:    "New company: " + drive.Name,
		Message:  drive.Name + " is hiring for " + drive.Role + ". Check eligibility and apply!",
		DriveID:  &driveID,
		Audience: models.AudienceAll,
	}); err != nil {
		log.Printf("⚠️  Drive broadcast notification failed: %v\n", err)
	}

	if h.driveSearch != nil {
		if err := h.driveSearch.IndexDrive(c.Context(), drive); err != nil {
			log.Printf("⚠️  Drive search indexing failed: %v\n", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(drive)
}

// searchDrives prefers the semantic index for free-text queries and falls
// back to plain store filters when it is unavailable or empty-handed.
func (h *DriveHandler) searchDrives(ctx context.Context, filter repositories.DriveFilter) ([]models.Drive, error) {
	if h.driveSearch != nil && filter.Query != "" {
		ids, err := h.driveSearch.Search(ctx, filter.Query, filter.Limit)
		if err != nil {
			log.Printf("⚠️  Semantic drive search failed, using store filters: %v\n", err)
		} else if len(ids) > 0 {
			drives, err := h.driveRepo.FindByIDs(ids)
			if err != nil {
				return nil, err
			}
			return orderByIDs(drives, ids), nil
		}
	}
	return h.driveRepo.Search(filter)
}

func (h *DriveHandler) appliedDriveIDs(studentID uuid.UUID) map[uuid.UUID]bool {
	applied := make(map[uuid.UUID]bool)
	apps, err := h.appRepo.ListByStudent(studentID, "", false)
	if err != nil {
		return applied
	}
	for _, app := range apps {
		applied[app.DriveID] = true
	}
	return applied
}

func orderByIDs(drives []models.Drive, ids []uuid.UUID) []models.Drive {
	byID := make(map[uuid.UUID]models.Drive, len(drives))
	for _, drive := range drives {
		byID[drive.ID] = drive
	}
	ordered := make([]models.Drive, 0, len(drives))
	for _, id := range ids {
		if drive, ok := byID[id]; ok {
			ordered = append(ordered, drive)
		}
	}
	return ordered
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
