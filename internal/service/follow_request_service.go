package service

import (
	"context"

	"campushire/internal/models"
	"campushire/internal/repository"
)

// FollowRequestService provides follow-request business logic, sharing the
// duplicate-prevention policy with applications, keyed on
// (student, companyId).
type FollowRequestService struct {
	followRepo repository.FollowRequestRepository
}

// NewFollowRequestService returns a new FollowRequestService.
func NewFollowRequestService(followRepo repository.FollowRequestRepository) *FollowRequestService {
	return &FollowRequestService{followRepo: followRepo}
}

// List returns follow requests matching the filter, newest first.
func (s *FollowRequestService) List(ctx context.Context, filter repository.FollowRequestFilter) ([]models.FollowRequest, error) {
	return s.followRepo.List(ctx, filter)
}

// Get returns one follow request by id.
func (s *FollowRequestService) Get(ctx context.Context, id string) (*models.FollowRequest, error) {
	return s.followRepo.GetByID(ctx, id)
}

// Create persists a new follow request with status pending. Duplicate
// handling mirrors application creation: advisory pre-check first, unique
// constraint as the actual guarantee.
func (s *FollowRequestService) Create(ctx context.Context, student, companyID string) (*models.FollowRequest, error) {
	if student == "" || companyID == "" {
		return nil, models.NewValidationError("Student and company ID are required")
	}

	existing, err := s.followRepo.GetByStudentAndCompany(ctx, student, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Follow request already exists")
	}

	request := &models.FollowRequest{
		Student:   student,
		CompanyID: companyID,
		Status:    models.FollowRequestStatusPending,
	}
	if err := s.followRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateStatus sets a follow request's status; the value must be one of
// the enumerated statuses.
func (s *FollowRequestService) UpdateStatus(ctx context.Context, id string, status models.FollowRequestStatus) (*models.FollowRequest, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("Valid status is required")
	}
	return s.followRepo.UpdateStatus(ctx, id, status)
}

// Delete removes a follow request by id.
func (s *FollowRequestService) Delete(ctx context.Context, id string) error {
	return s.followRepo.Delete(ctx, id)
}
