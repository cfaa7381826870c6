package service

import (
	"context"
	"testing"

	"campushire/internal/models"
	"campushire/internal/repository"
)

type jobRepoStub struct {
	createFn  func(context.Context, *models.Job) error
	getByIDFn func(context.Context, string) (*models.Job, error)
	listFn    func(context.Context, repository.JobFilter) ([]models.Job, error)
	updateFn  func(context.Context, string, map[string]interface{}) (*models.Job, error)
	deleteFn  func(context.Context, string) error
	countFn   func(context.Context) (int64, error)
}

func (s *jobRepoStub) Create(ctx context.Context, job *models.Job) error {
	return s.createFn(ctx, job)
}
func (s *jobRepoStub) GetByID(ctx context.Context, id string) (*models.Job, error) {
	return s.getByIDFn(ctx, id)
}
func (s *jobRepoStub) List(ctx context.Context, filter repository.JobFilter) ([]models.Job, error) {
	return s.listFn(ctx, filter)
}
func (s *jobRepoStub) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Job, error) {
	return s.updateFn(ctx, id, updates)
}
func (s *jobRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *jobRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

type companyRepoStub struct {
	createFn    func(context.Context, *models.Company) error
	getByIDFn   func(context.Context, string) (*models.Company, error)
	getByNameFn func(context.Context, string) (*models.Company, error)
	listFn      func(context.Context) ([]models.Company, error)
	updateFn    func(context.Context, string, map[string]interface{}) (*models.Company, error)
	deleteFn    func(context.Context, string) error
	countFn     func(context.Context) (int64, error)
}

func (s *companyRepoStub) Create(ctx context.Context, company *models.Company) error {
	return s.createFn(ctx, company)
}
func (s *companyRepoStub) GetByID(ctx context.Context, id string) (*models.Company, error) {
	return s.getByIDFn(ctx, id)
}
func (s *companyRepoStub) GetByName(ctx context.Context, name string) (*models.Company, error) {
	return s.getByNameFn(ctx, name)
}
func (s *companyRepoStub) List(ctx context.Context) ([]models.Company, error) {
	return s.listFn(ctx)
}
func (s *companyRepoStub) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Company, error) {
	return s.updateFn(ctx, id, updates)
}
func (s *companyRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *companyRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopJobRepo() *jobRepoStub {
	return &jobRepoStub{
		createFn:  func(context.Context, *models.Job) error { return nil },
		getByIDFn: func(context.Context, string) (*models.Job, error) { return &models.Job{}, nil },
		listFn:    func(context.Context, repository.JobFilter) ([]models.Job, error) { return nil, nil },
		updateFn: func(context.Context, string, map[string]interface{}) (*models.Job, error) {
			return &models.Job{}, nil
		},
		deleteFn: func(context.Context, string) error { return nil },
		countFn:  func(context.Context) (int64, error) { return 0, nil },
	}
}

func noopCompanyRepo() *companyRepoStub {
	return &companyRepoStub{
		createFn:    func(context.Context, *models.Company) error { return nil },
		getByIDFn:   func(context.Context, string) (*models.Company, error) { return &models.Company{}, nil },
		getByNameFn: func(context.Context, string) (*models.Company, error) { return nil, nil },
		listFn:      func(context.Context) ([]models.Company, error) { return nil, nil },
		updateFn: func(context.Context, string, map[string]interface{}) (*models.Company, error) {
			return &models.Company{}, nil
		},
		deleteFn: func(context.Context, string) error { return nil },
		countFn:  func(context.Context) (int64, error) { return 0, nil },
	}
}

func validJobInput() CreateJobInput {
	return CreateJobInput{
		CompanyID:   "company-1",
		Title:       "Backend Engineer",
		Location:    "Remote",
		Type:        models.JobTypeFullTime,
		Description: "Build APIs.",
	}
}

func TestJobServiceCreateMissingFields(t *testing.T) {
	svc := NewJobService(noopJobRepo(), noopCompanyRepo())

	in := validJobInput()
	in.Title = ""
	_, err := svc.Create(context.Background(), in)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestJobServiceCreateInvalidType(t *testing.T) {
	svc := NewJobService(noopJobRepo(), noopCompanyRepo())

	in := validJobInput()
	in.Type = "Freelance"
	_, err := svc.Create(context.Background(), in)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestJobServiceCreateNeedsCompanyReference(t *testing.T) {
	svc := NewJobService(noopJobRepo(), noopCompanyRepo())

	in := validJobInput()
	in.CompanyID = ""
	in.CompanyName = ""
	_, err := svc.Create(context.Background(), in)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestJobServiceCreateReusesCompanyByName(t *testing.T) {
	companyRepo := noopCompanyRepo()
	companyRepo.getByNameFn = func(_ context.Context, name string) (*models.Company, error) {
		if name != "Acme Corp" {
			t.Fatalf("unexpected lookup name %q", name)
		}
		return &models.Company{ID: "company-acme", Name: "Acme Corp"}, nil
	}
	companyRepo.createFn = func(context.Context, *models.Company) error {
		t.Fatal("an existing company must not be recreated")
		return nil
	}
	companyRepo.getByIDFn = func(context.Context, string) (*models.Company, error) {
		return &models.Company{ID: "company-acme", Name: "Acme Corp"}, nil
	}

	svc := NewJobService(noopJobRepo(), companyRepo)

	in := validJobInput()
	in.CompanyID = ""
	in.CompanyName = "Acme Corp"
	job, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.CompanyID != "company-acme" {
		t.Fatalf("expected resolved company id, got %s", job.CompanyID)
	}
	if job.CompanyName == nil || *job.CompanyName != "Acme Corp" {
		t.Fatalf("expected joined company name, got %v", job.CompanyName)
	}
}

func TestJobServiceCreateSynthesizesCompany(t *testing.T) {
	var createdCompany *models.Company
	companyRepo := noopCompanyRepo()
	companyRepo.createFn = func(_ context.Context, c *models.Company) error {
		c.ID = "company-new"
		createdCompany = c
		return nil
	}
	companyRepo.getByIDFn = func(context.Context, string) (*models.Company, error) {
		return &models.Company{ID: "company-new", Name: "Fresh Startup"}, nil
	}

	svc := NewJobService(noopJobRepo(), companyRepo)

	in := validJobInput()
	in.CompanyID = ""
	in.CompanyName = "Fresh Startup"
	job, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if createdCompany == nil {
		t.Fatal("expected a company to be created")
	}
	if createdCompany.About == "" {
		t.Fatal("synthesized company needs a placeholder about")
	}
	if job.CompanyID != "company-new" {
		t.Fatalf("expected synthesized company id, got %s", job.CompanyID)
	}
}

func TestJobServiceCreateToleratesDanglingCompany(t *testing.T) {
	companyRepo := noopCompanyRepo()
	companyRepo.getByIDFn = func(_ context.Context, id string) (*models.Company, error) {
		return nil, models.NewNotFoundError("Company", id)
	}

	svc := NewJobService(noopJobRepo(), companyRepo)

	in := validJobInput()
	in.CompanyID = "no-such-company"
	job, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.CompanyID != "no-such-company" {
		t.Fatalf("dangling reference must be stored as-is, got %s", job.CompanyID)
	}
	if job.CompanyName != nil {
		t.Fatalf("expected null companyName for dangling reference, got %v", *job.CompanyName)
	}
}

func TestJobServiceUpdateInvalidType(t *testing.T) {
	jobRepo := noopJobRepo()
	jobRepo.updateFn = func(context.Context, string, map[string]interface{}) (*models.Job, error) {
		t.Fatal("repository must not be reached with an invalid type")
		return nil, nil
	}

	svc := NewJobService(jobRepo, noopCompanyRepo())
	bad := models.JobType("Gig")
	_, err := svc.Update(context.Background(), "job-1", UpdateJobInput{Type: &bad})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
