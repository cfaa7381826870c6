// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"campushire/internal/models"

	"gorm.io/gorm"
)

// CompanyRepository defines the interface for company data operations
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	GetByName(ctx context.Context, name string) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Company, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// companyRepository implements CompanyRepository
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Company", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &company, nil
}

// GetByName looks a company up by exact name match. A missing company is
// not an error here; callers decide whether to create one.
func (r *companyRepository) GetByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &company, nil
}

// List returns all companies, newest first. The result is always a
// non-nil slice so empty listings serialize as a JSON array.
func (r *companyRepository) List(ctx context.Context) ([]models.Company, error) {
	companies := make([]models.Company, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&companies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return companies, nil
}

func (r *companyRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Company, error) {
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	res := r.db.WithContext(ctx).Model(&models.Company{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Company", id)
	}
	return r.GetByID(ctx, id)
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Company{}, "id = ?", id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Company", id)
	}
	return nil
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Company{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
