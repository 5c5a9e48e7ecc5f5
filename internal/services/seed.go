package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/models"
	"github.com/Prabhatvrma1/G1-BEE-PID-21/internal/repositories"
)

// SeedDrives inserts a demo set of hiring drives when the store is empty so
// a fresh install has something to browse.
func SeedDrives(driveRepo repositories.DriveRepository) error {
	count, err := driveRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to check drive count: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	week := 7 * 24 * time.Hour

	seeds := []models.Drive{
		{
			ID:                  uuid.New(),
			Name:                "Google",
			Role:                "Software Engineer (SWE-I)",
			Location:            "Bangalore / Hyderabad",
			VisitDate:           timePtr(now),
			CTC:                 "18-25 LPA",
			EligibilityCriteria: "CSE/IT, CGPA >= 8.0, no active backlogs",
			Description:         "Backend + distributed systems, strong DS & Algo, coding rounds + interviews.",
		},
		{
			ID:                  uuid.New(),
			Name:                "Microsoft",
			Role:                "Software Engineer",
			Location:            "Hyderabad",
			VisitDate:           timePtr(now.Add(week)),
			CTC:                 "20-28 LPA",
			EligibilityCriteria: "All CS branches, CGPA >= 7.5",
			Description:         "Systems + product engineering role, focuses on problem solving and design.",
		},
		{
			ID:                  uuid.New(),
			Name:                "TCS Digital",
			Role:                "Graduate Trainee",
			Location:            "PAN India",
			VisitDate:           timePtr(now.Add(2 * week)),
			CTC:                 "7 LPA",
			EligibilityCriteria: "All branches, CGPA >= 6.0, no more than 1 backlog",
			Description:         "Entry-level role with training, good for freshers exploring IT careers.",
		},
	}

	for i := range seeds {
		if err := driveRepo.Create(&seeds[i]); err != nil {
			return fmt.Errorf("failed to seed drive %s: %w", seeds[i].Name, err)
		}
	}

	log.Printf("✅ Seeded %d demo drives\n", len(seeds))
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
