package service

import (
	"context"

	"campushire/internal/models"
	"campushire/internal/repository"
)

// companyAboutPlaceholder satisfies the Company.about requirement when a
// company is created on the fly from a job posting's name string.
const companyAboutPlaceholder = "Company added via job posting"

// JobService provides job CRUD business logic, including company
// resolution at creation and the read-time company-name join.
type JobService struct {
	jobRepo     repository.JobRepository
	companyRepo repository.CompanyRepository
}

// NewJobService returns a new JobService.
func NewJobService(jobRepo repository.JobRepository, companyRepo repository.CompanyRepository) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

// JobView is a job enriched with the owning company's name, resolved at
// read time. CompanyName is null when the referenced company is missing.
type JobView struct {
	models.Job
	CompanyName *string `json:"companyName"`
}

// CreateJobInput carries the fields accepted when posting a job. Exactly
// one of CompanyID or CompanyName must resolve to a company id.
type CreateJobInput struct {
	CompanyID    string
	CompanyName  string
	RecruiterID  *string
	Title        string
	Location     string
	Type         models.JobType
	Description  string
	SalaryRange  *string
	Requirements *string
}

// UpdateJobInput carries the whitelisted job fields for partial updates.
// Nil fields are left unchanged.
type UpdateJobInput struct {
	Title       *string
	Location    *string
	Type        *models.JobType
	Description *string
}

// List returns jobs matching the filter, newest first, each joined with
// its company name.
func (s *JobService) List(ctx context.Context, filter repository.JobFilter) ([]JobView, error) {
	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		name, err := s.companyName(ctx, job.CompanyID)
		if err != nil {
			return nil, err
		}
		views = append(views, JobView{Job: job, CompanyName: name})
	}
	return views, nil
}

// Get returns one job joined with its company name.
func (s *JobService) Get(ctx context.Context, id string) (*JobView, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, err := s.companyName(ctx, job.CompanyID)
	if err != nil {
		return nil, err
	}
	return &JobView{Job: *job, CompanyName: name}, nil
}

// Create persists a new job. Company resolution: an explicit CompanyID is
// used as-is with no existence check (a dangling reference is tolerated);
// otherwise a CompanyName is resolved via FindOrCreateCompany. Failing
// both is a validation error.
func (s *JobService) Create(ctx context.Context, in CreateJobInput) (*JobView, error) {
	if in.Title == "" || in.Location == "" || in.Type == "" || in.Description == "" {
		return nil, models.NewValidationError("Missing required fields")
	}
	if !in.Type.Valid() {
		return nil, models.NewValidationError("Invalid job type")
	}

	companyID := in.CompanyID
	if companyID == "" && in.CompanyName != "" {
		company, err := s.FindOrCreateCompany(ctx, in.CompanyName)
		if err != nil {
			return nil, err
		}
		companyID = company.ID
	}
	if companyID == "" {
		return nil, models.NewValidationError("companyId or company name is required")
	}

	job := &models.Job{
		CompanyID:    companyID,
		RecruiterID:  in.RecruiterID,
		Title:        in.Title,
		Location:     in.Location,
		Type:         in.Type,
		Description:  in.Description,
		SalaryRange:  in.SalaryRange,
		Requirements: in.Requirements,
		IsActive:     true,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	name, err := s.companyName(ctx, job.CompanyID)
	if err != nil {
		return nil, err
	}
	return &JobView{Job: *job, CompanyName: name}, nil
}

// FindOrCreateCompany resolves a company by exact name match, creating one
// with a placeholder about field when none exists. It is the named side
// effect behind job creation's lenient company-by-name path.
func (s *JobService) FindOrCreateCompany(ctx context.Context, name string) (*models.Company, error) {
	company, err := s.companyRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return company, nil
	}

	company = &models.Company{
		Name:  name,
		About: companyAboutPlaceholder,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update applies a partial update to a job.
func (s *JobService) Update(ctx context.Context, id string, in UpdateJobInput) (*models.Job, error) {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, models.NewValidationError("Invalid job type")
		}
		updates["type"] = *in.Type
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	return s.jobRepo.Update(ctx, id, updates)
}

// Delete removes a job by id. Applications referencing it are left in
// place; there is no referential cleanup.
func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.jobRepo.Delete(ctx, id)
}

// companyName resolves a company name for the read-time join. A missing
// company yields nil, never an error.
func (s *JobService) companyName(ctx context.Context, companyID string) (*string, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return nil, nil
		}
		return nil, err
	}
	return &company.Name, nil
}
