package repository

import (
	"context"
	"errors"

	"campushire/internal/models"

	"gorm.io/gorm"
)

// ApplicationFilter narrows application listings. Zero-value fields are
// ignored; JobIDs translates to a set-membership filter on jobId.
type ApplicationFilter struct {
	JobID   string
	Student string
	JobIDs  []string
}

// ApplicationRepository defines the interface for application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	GetByJobAndStudent(ctx context.Context, jobID, student string) (*models.Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
	Delete(ctx context.Context, id string) error
}

// applicationRepository implements ApplicationRepository
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts an application. A unique-constraint violation on
// (jobId, student) is reported as Conflict: the constraint, not the
// advisory pre-check in the service, is what holds under concurrent creates.
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Application already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}

// GetByJobAndStudent looks an application up by its natural key. A missing
// application is not an error here.
func (r *applicationRepository) GetByJobAndStudent(ctx context.Context, jobID, student string) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND student = ?", jobID, student).
		First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &application, nil
}

func (r *applicationRepository) List(ctx context.Context, filter ApplicationFilter) ([]models.Application, error) {
	query := r.db.WithContext(ctx).Model(&models.Application{})
	if filter.JobID != "" {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.Student != "" {
		query = query.Where("student = ?", filter.Student)
	}
	if len(filter.JobIDs) > 0 {
		query = query.Where("job_id IN ?", filter.JobIDs)
	}

	applications := make([]models.Application, 0)
	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return applications, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Application", id)
	}
	return r.GetByID(ctx, id)
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Application", id)
	}
	return nil
}
