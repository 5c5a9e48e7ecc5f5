package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
)

// ErrInvalidStatus is returned when a transition names a status outside the
// fixed enum. Rejected before any mutation.
var ErrInvalidStatus = errors.New("invalid application status")

// LifecycleService owns application state: creation (apply) and recruiter
// driven status transitions, including the notification and email side
// effects a transition fans out.
type LifecycleService interface {
	Apply(ctx context.Context, studentID, driveID uuid.UUID) (*models.Application, bool, error)
	Transition(ctx context.Context, appID uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
	ScheduleInterview(ctx context.Context, appID uuid.UUID, date *time.Time, mode models.InterviewMode, location, link string) (*models.Application, error)
}

type lifecycleService struct {
	appRepo     repositories.ApplicationRepository
	driveRepo   repositories.DriveRepository
	resumeRepo  repositories.ResumeRepository
	accountRepo repositories.AccountRepository
	notifRepo   repositories.NotificationRepository
	mailer      Mailer
}

func NewLifecycleService(
	appRepo repositories.ApplicationRepository,
	driveRepo repositories.DriveRepository,
	resumeRepo repositories.ResumeRepository,
	accountRepo repositories.AccountRepository,
	notifRepo repositories.NotificationRepository,
	mailer Mailer,
) LifecycleService {
	return &lifecycleService{
		appRepo:     appRepo,
		driveRepo:   driveRepo,
		resumeRepo:  resumeRepo,
		accountRepo: accountRepo,
		notifRepo:   notifRepo,
		mailer:      mailer,
	}
}

// Apply implements LifecycleService. The second return value reports whether
// a new application was created; a duplicate apply routes to the existing
// record without error. The resume snapshot is captured verbatim here and
// never touched again.
func (s *lifecycleService) Apply(ctx context.Context, studentID, driveID uuid.UUID) (*models.Application, bool, error) {
	if _, err := s.driveRepo.FindByID(driveID); err != nil {
		return nil, false, err
	}

	snapshot := ""
	resume, err := s.resumeRepo.FindByOwner(studentID)
	switch {
	case err == nil:
		snapshot = resume.SnapshotText()
	case !errors.Is(err, repositories.ErrNotFound):
		// A missing resume is fine; any other lookup failure aborts the apply.
		return nil, false, err
	}

	app := &models.Application{
		ID:             uuid.New(),
		StudentID:      studentID,
		DriveID:        driveID,
		Status:         models.StatusApplied,
		ResumeSnapshot: snapshot,
	}

	err = s.appRepo.Create(app)
	if err == nil {
		return app, true, nil
	}
	if !errors.Is(err, repositories.ErrDuplicate) {
		return nil, false, err
	}

	// The unique index already holds a row for this pair; hand that one back.
	existing, err := s.appRepo.FindByStudentAndDrive(studentID, driveID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// Transition implements LifecycleService. The status write commits first;
// notification and email fan-out happens afterwards and is never allowed to
// fail the transition.
func (s *lifecycleService) Transition(ctx context.Context, appID uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	app, err := s.appRepo.FindByID(appID)
	if err != nil {
		return nil, err
	}

	if err := s.appRepo.UpdateStatus(appID, status); err != nil {
		return nil, err
	}
	app.Status = status

	s.dispatchSideEffects(s.transitionEffects(app, status))

	return app, nil
}

// ScheduleInterview implements LifecycleService.
func (s *lifecycleService) ScheduleInterview(ctx context.Context, appID uuid.UUID, date *time.Time, mode models.InterviewMode, location, link string) (*models.Application, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("invalid interview mode: %s", mode)
	}

	if err := s.appRepo.UpdateInterview(appID, date, mode, location, link); err != nil {
		return nil, err
	}
	return s.appRepo.FindByID(appID)
}

// sideEffect is one entry of the post-commit outbox. Effects run after the
// primary mutation has succeeded; a failing effect is logged and the rest
// still run.
type sideEffect struct {
	name string
	run  func() error
}

func (s *lifecycleService) dispatchSideEffects(effects []sideEffect) {
	for _, effect := range effects {
		if err := effect.run(); err != nil {
			log.Printf("⚠️  Side effect %q failed: %v\n", effect.name, err)
		}
	}
}

func (s *lifecycleService) transitionEffects(app *models.Application, status models.ApplicationStatus) []sideEffect {
	drive, err := s.driveRepo.FindByID(app.DriveID)
	if err != nil {
		log.Printf("⚠️  Drive lookup for notification failed: %v\n", err)
		return nil
	}

	title := statusTitle(status)
	message := fmt.Sprintf("Your application for %s - %s is now marked as %q.", drive.Name, drive.Role, status)

	studentID := app.StudentID
	driveID := drive.ID

	effects := []sideEffect{
		{
			name: "notification",
			run: func() error {
				return s.notifRepo.Create(&models.Notification{
					ID:          uuid.New(),
					Title:       title,
					Message:     message,
					DriveID:     &driveID,
					Audience:    models.AudienceStudents,
					RecipientID: &studentID,
				})
			},
		},
	}

	if s.mailer != nil {
		effects = append(effects, sideEffect{
			name: "email",
			run: func() error {
				student, err := s.accountRepo.FindByID(studentID)
				if err != nil {
					return err
				}
				body := StatusUpdateEmail(student.FullName, drive.Name, drive.Role, string(status), message)
				return s.mailer.Send(student.Email, "Update: "+title, body)
			},
		})
	}

	return effects
}

func statusTitle(status models.ApplicationStatus) string {
	switch status {
	case models.StatusSelected:
		return "🎉 You have been selected!"
	case models.StatusShortlisted:
		return "You have been shortlisted"
	case models.StatusRejected:
		return "Application not shortlisted"
	default:
		return "Application update"
	}
}
