package repository

import (
	"context"
	"errors"

	"campushire/internal/models"

	"gorm.io/gorm"
)

// FollowRequestFilter narrows follow-request listings. Zero-value fields
// are ignored.
type FollowRequestFilter struct {
	Student   string
	CompanyID string
}

// FollowRequestRepository defines the interface for follow-request data operations
type FollowRequestRepository interface {
	Create(ctx context.Context, request *models.FollowRequest) error
	GetByID(ctx context.Context, id string) (*models.FollowRequest, error)
	GetByStudentAndCompany(ctx context.Context, student, companyID string) (*models.FollowRequest, error)
	List(ctx context.Context, filter FollowRequestFilter) ([]models.FollowRequest, error)
	UpdateStatus(ctx context.Context, id string, status models.FollowRequestStatus) (*models.FollowRequest, error)
	Delete(ctx context.Context, id string) error
}

// followRequestRepository implements FollowRequestRepository
type followRequestRepository struct {
	db *gorm.DB
}

// NewFollowRequestRepository creates a new follow-request repository
func NewFollowRequestRepository(db *gorm.DB) FollowRequestRepository {
	return &followRequestRepository{db: db}
}

// Create inserts a follow request. A unique-constraint violation on
// (student, companyId) is reported as Conflict.
func (r *followRequestRepository) Create(ctx context.Context, request *models.FollowRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Follow request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRequestRepository) GetByID(ctx context.Context, id string) (*models.FollowRequest, error) {
	var request models.FollowRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Follow request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

// GetByStudentAndCompany looks a follow request up by its natural key. A
// missing request is not an error here.
func (r *followRequestRepository) GetByStudentAndCompany(ctx context.Context, student, companyID string) (*models.FollowRequest, error) {
	var request models.FollowRequest
	if err := r.db.WithContext(ctx).
		Where("student = ? AND company_id = ?", student, companyID).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *followRequestRepository) List(ctx context.Context, filter FollowRequestFilter) ([]models.FollowRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.FollowRequest{})
	if filter.Student != "" {
		query = query.Where("student = ?", filter.Student)
	}
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}

	requests := make([]models.FollowRequest, 0)
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *followRequestRepository) UpdateStatus(ctx context.Context, id string, status models.FollowRequestStatus) (*models.FollowRequest, error) {
	res := r.db.WithContext(ctx).
		Model(&models.FollowRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Follow request", id)
	}
	return r.GetByID(ctx, id)
}

func (r *followRequestRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.FollowRequest{}, "id = ?", id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Follow request", id)
	}
	return nil
}
