package seed

import (
	"testing"

	"campushire/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Company{}, &models.Job{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestEnsureDemoData_Idempotent(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)

	if err := EnsureDemoData(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := EnsureDemoData(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var companyCount int64
	if err := db.Model(&models.Company{}).Count(&companyCount).Error; err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if companyCount != int64(len(demoCompanies)) {
		t.Fatalf("expected %d companies, got %d", len(demoCompanies), companyCount)
	}

	var jobCount int64
	if err := db.Model(&models.Job{}).Count(&jobCount).Error; err != nil {
		t.Fatalf("count jobs: %v", err)
	}
	if jobCount != int64(len(demoJobs)) {
		t.Fatalf("expected %d jobs, got %d", len(demoJobs), jobCount)
	}

	// Every seeded job points at a seeded company.
	var jobs []models.Job
	if err := db.Find(&jobs).Error; err != nil {
		t.Fatalf("load jobs: %v", err)
	}
	for _, job := range jobs {
		var company models.Company
		if err := db.First(&company, "id = ?", job.CompanyID).Error; err != nil {
			t.Fatalf("job %s references missing company %s", job.Title, job.CompanyID)
		}
		if !job.IsActive {
			t.Fatalf("seeded job %s must be active", job.Title)
		}
	}
}

func TestEnsureDemoData_SkipsPopulatedBoard(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)

	company := models.Company{Name: "Existing Co", About: "Already here."}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("create company: %v", err)
	}
	job := models.Job{
		CompanyID:   company.ID,
		Title:       "Existing Job",
		Location:    "Remote",
		Type:        models.JobTypeFullTime,
		Description: "Already here.",
		IsActive:    true,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("create job: %v", err)
	}

	if err := EnsureDemoData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var companyCount, jobCount int64
	if err := db.Model(&models.Company{}).Count(&companyCount).Error; err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if err := db.Model(&models.Job{}).Count(&jobCount).Error; err != nil {
		t.Fatalf("count jobs: %v", err)
	}
	if companyCount != 1 || jobCount != 1 {
		t.Fatalf("populated board must be untouched, got %d companies and %d jobs", companyCount, jobCount)
	}
}

func TestEnsureDemoData_BackfillsJobsForExistingCompanies(t *testing.T) {
	t.Parallel()

	db := setupSeedTestDB(t)

	companies := []models.Company{
		{Name: "Alpha", About: "a"},
		{Name: "Beta", About: "b"},
	}
	if err := db.Create(&companies).Error; err != nil {
		t.Fatalf("create companies: %v", err)
	}

	if err := EnsureDemoData(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var companyCount int64
	if err := db.Model(&models.Company{}).Count(&companyCount).Error; err != nil {
		t.Fatalf("count companies: %v", err)
	}
	if companyCount != 2 {
		t.Fatalf("no new companies expected, got %d", companyCount)
	}

	var jobs []models.Job
	if err := db.Find(&jobs).Error; err != nil {
		t.Fatalf("load jobs: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected one backfilled job per company, got %d", len(jobs))
	}
	seen := map[string]bool{}
	for _, job := range jobs {
		seen[job.CompanyID] = true
	}
	if len(seen) != 2 {
		t.Fatalf("jobs must be spread across companies, got %v", seen)
	}
}

func TestFactoryStudentID(t *testing.T) {
	f := NewFactory(nil)
	a, b := f.StudentID(), f.StudentID()
	if a == b {
		t.Fatalf("generated student ids must differ, got %q twice", a)
	}
	if len(a) != len("student_")+12 {
		t.Fatalf("unexpected student id shape: %q", a)
	}
}
