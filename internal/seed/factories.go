package seed

import (
	"campushire/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by development seeding and tests.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// Company persists a company with generated fields, applying overrides
// before the insert.
func (f *Factory) Company(overrides ...func(*models.Company)) (*models.Company, error) {
	company := &models.Company{
		Name:  gofakeit.Company(),
		About: gofakeit.Sentence(8),
	}
	for _, o := range overrides {
		o(company)
	}
	if err := f.db.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// Job persists a job for the given company with generated fields, applying
// overrides before the insert.
func (f *Factory) Job(company *models.Company, overrides ...func(*models.Job)) (*models.Job, error) {
	jobTypes := []models.JobType{
		models.JobTypeFullTime,
		models.JobTypeInternship,
		models.JobTypePartTime,
		models.JobTypeContract,
	}

	job := &models.Job{
		CompanyID:   company.ID,
		Title:       gofakeit.JobTitle(),
		Location:    gofakeit.City(),
		Type:        jobTypes[gofakeit.Number(0, len(jobTypes)-1)],
		Description: gofakeit.Paragraph(1, 3, 8, " "),
		IsActive:    true,
	}
	for _, o := range overrides {
		o(job)
	}
	if err := f.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// StudentID returns a generated opaque student identifier, as issued by
// the external auth provider.
func (f *Factory) StudentID() string {
	return "student_" + gofakeit.LetterN(12)
}
