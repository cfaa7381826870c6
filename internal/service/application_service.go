package service

import (
	"context"
	"strings"

	"campushire/internal/models"
	"campushire/internal/repository"
	"campushire/internal/storage"
)

// uploadsURLPrefix is the public path prefix under which stored resume
// files are served by the static file handler.
const uploadsURLPrefix = "/uploads/"

// ApplicationService provides application business logic, including the
// duplicate-prevention policy and resume storage.
type ApplicationService struct {
	applicationRepo repository.ApplicationRepository
	files           *storage.FileStore
}

// NewApplicationService returns a new ApplicationService.
func NewApplicationService(applicationRepo repository.ApplicationRepository, files *storage.FileStore) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		files:           files,
	}
}

// ResumeUpload is an uploaded resume file accompanying an application.
type ResumeUpload struct {
	Filename string
	Content  []byte
}

// CreateApplicationInput carries the fields accepted when applying to a job.
type CreateApplicationInput struct {
	JobID       string
	StudentID   string
	CoverLetter string
	Resume      *ResumeUpload
}

// ListApplicationsInput narrows application listings. JobIDs is a
// comma-separated set translated to a set-membership filter on jobId.
type ListApplicationsInput struct {
	JobID   string
	Student string
	JobIDs  string
}

// List returns applications matching the filter, newest first.
func (s *ApplicationService) List(ctx context.Context, in ListApplicationsInput) ([]models.Application, error) {
	filter := repository.ApplicationFilter{
		JobID:   in.JobID,
		Student: in.Student,
		JobIDs:  splitIDList(in.JobIDs),
	}
	return s.applicationRepo.List(ctx, filter)
}

// Get returns one application by id.
func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	return s.applicationRepo.GetByID(ctx, id)
}

// Create persists a new application with status submitted, regardless of
// client input. The existence pre-check returns a friendly Conflict before
// the insert; under a concurrent race the unique constraint on
// (jobId, student) rejects the losing insert and the repository reports
// the same Conflict.
func (s *ApplicationService) Create(ctx context.Context, in CreateApplicationInput) (*models.Application, error) {
	if in.JobID == "" || in.StudentID == "" {
		return nil, models.NewValidationError("jobId and studentId are required")
	}

	existing, err := s.applicationRepo.GetByJobAndStudent(ctx, in.JobID, in.StudentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Application already exists")
	}

	application := &models.Application{
		JobID:   in.JobID,
		Student: in.StudentID,
		Status:  models.ApplicationStatusSubmitted,
	}
	if in.CoverLetter != "" {
		application.CoverLetter = &in.CoverLetter
	}
	if in.Resume != nil {
		stored, err := s.files.Save(in.Resume.Filename, in.Resume.Content)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		resumeURL := uploadsURLPrefix + stored
		application.ResumeURL = &resumeURL
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// UpdateStatus sets an application's status; the value must be one of the
// enumerated statuses.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Valid status is required")
	}
	return s.applicationRepo.UpdateStatus(ctx, id, status)
}

// Delete removes an application by id.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.applicationRepo.Delete(ctx, id)
}

// splitIDList parses a comma-separated id list, dropping empty entries.
func splitIDList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
