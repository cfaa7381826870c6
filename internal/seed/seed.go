// Package seed provides demo-data bootstrap and test data factories.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"campushire/internal/middleware"
	"campushire/internal/models"
	"campushire/internal/repository"

	"gorm.io/gorm"
)

type demoJob struct {
	title       string
	location    string
	jobType     models.JobType
	description string
}

var demoCompanies = []models.Company{
	{Name: "Acme Corp", About: "Building reliable products for everyone."},
	{Name: "Bright Future Labs", About: "Research-driven innovation."},
	{Name: "GreenTech", About: "Sustainable energy solutions."},
}

var demoJobs = []demoJob{
	{
		title:       "Frontend Engineer",
		location:    "Remote",
		jobType:     models.JobTypeFullTime,
		description: "Work on modern React apps and component libraries.",
	},
	{
		title:       "Research Intern",
		location:    "New York",
		jobType:     models.JobTypeInternship,
		description: "Assist with applied research and prototypes.",
	},
	{
		title:       "Sustainability Engineer",
		location:    "San Francisco",
		jobType:     models.JobTypeFullTime,
		description: "Build tools to monitor and optimize energy usage.",
	},
}

// EnsureDemoData populates sample companies and jobs so a fresh install is
// browsable. It keys off emptiness checks, not a marker, and is safe to
// run on every startup.
func EnsureDemoData(db *gorm.DB) error {
	companyCount, err := repository.NewCompanyRepository(db).Count(context.Background())
	if err != nil {
		return fmt.Errorf("failed to count companies: %w", err)
	}

	if companyCount == 0 {
		companies := make([]models.Company, len(demoCompanies))
		copy(companies, demoCompanies)
		if err := db.Create(&companies).Error; err != nil {
			return fmt.Errorf("failed to seed demo companies: %w", err)
		}

		jobs := make([]models.Job, len(demoJobs))
		for i, d := range demoJobs {
			jobs[i] = models.Job{
				CompanyID:   companies[i].ID,
				Title:       d.title,
				Location:    d.location,
				Type:        d.jobType,
				Description: d.description,
				IsActive:    true,
			}
		}
		if err := db.Create(&jobs).Error; err != nil {
			return fmt.Errorf("failed to seed demo jobs: %w", err)
		}

		middleware.Logger.Info("demo companies and jobs seeded",
			slog.Int("companies", len(companies)),
			slog.Int("jobs", len(jobs)),
		)
		return nil
	}

	return backfillDemoJobs(db)
}

// backfillDemoJobs synthesizes up to three demo jobs round-robin across
// existing companies when companies exist but the job board is empty.
func backfillDemoJobs(db *gorm.DB) error {
	jobCount, err := repository.NewJobRepository(db).Count(context.Background())
	if err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if jobCount > 0 {
		return nil
	}

	var companies []models.Company
	if err := db.Limit(3).Find(&companies).Error; err != nil {
		return fmt.Errorf("failed to load companies for job backfill: %w", err)
	}
	if len(companies) == 0 {
		return nil
	}

	jobs := make([]models.Job, len(companies))
	for i, company := range companies {
		d := demoJobs[i%len(demoJobs)]
		jobs[i] = models.Job{
			CompanyID:   company.ID,
			Title:       d.title,
			Location:    d.location,
			Type:        d.jobType,
			Description: "Demo job seeded for an existing company.",
			IsActive:    true,
		}
	}
	if err := db.Create(&jobs).Error; err != nil {
		return fmt.Errorf("failed to backfill demo jobs: %w", err)
	}

	middleware.Logger.Info("demo jobs backfilled for existing companies",
		slog.Int("jobs", len(jobs)),
	)
	return nil
}
