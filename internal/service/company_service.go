// Package service implements the resource rules on top of the repositories:
// field requirements, enum whitelists, cross-entity lookups, and the
// duplicate-prevention policy.
package service

import (
	"context"

	"campushire/internal/models"
	"campushire/internal/repository"
)

// CompanyService provides company CRUD business logic.
type CompanyService struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyService returns a new CompanyService.
func NewCompanyService(companyRepo repository.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// UpdateCompanyInput carries the whitelisted company fields for partial
// updates. Nil fields are left unchanged.
type UpdateCompanyInput struct {
	Name  *string
	About *string
}

// List returns all companies, newest first.
func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.companyRepo.List(ctx)
}

// Get returns one company by id.
func (s *CompanyService) Get(ctx context.Context, id string) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// Create persists a new company. Both fields are required.
func (s *CompanyService) Create(ctx context.Context, name, about string) (*models.Company, error) {
	if name == "" || about == "" {
		return nil, models.NewValidationError("Name and about are required")
	}

	company := &models.Company{
		Name:  name,
		About: about,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update applies a partial update to a company.
func (s *CompanyService) Update(ctx context.Context, id string, in UpdateCompanyInput) (*models.Company, error) {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.About != nil {
		updates["about"] = *in.About
	}
	return s.companyRepo.Update(ctx, id, updates)
}

// Delete removes a company by id. Dependent jobs and follow requests are
// intentionally left in place; there is no referential cleanup.
func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.companyRepo.Delete(ctx, id)
}
