package service

import (
	"context"

	"campushire/internal/models"
	"campushire/internal/repository"
)

// UserService synchronizes user records from the external auth provider.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpsertUserInput carries the identity fields pushed by the auth provider.
type UpsertUserInput struct {
	ExternalID string
	Name       string
	Email      string
	Role       string
}

// Upsert creates or updates the user keyed by externalId. An incoming role
// of "recruiter" is stored as "employer"; any other value must already be
// a stored enum value. The operation is idempotent under repeated
// identical calls.
func (s *UserService) Upsert(ctx context.Context, in UpsertUserInput) (*models.User, error) {
	if in.ExternalID == "" || in.Name == "" || in.Role == "" {
		return nil, models.NewValidationError("externalId, name and role are required")
	}

	role := models.UserRole(in.Role)
	if in.Role == "recruiter" {
		role = models.UserRoleEmployer
	}
	if !role.Valid() {
		return nil, models.NewValidationError("Invalid role")
	}

	var email *string
	if in.Email != "" {
		email = &in.Email
	}

	user, err := s.userRepo.GetByExternalID(ctx, in.ExternalID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.Name = in.Name
		user.Email = email
		user.Role = role
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	externalID := in.ExternalID
	user = &models.User{
		ExternalID: &externalID,
		Name:       in.Name,
		Email:      email,
		Role:       role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
