package models

import (
	"time"

	"gorm.io/gorm"
)

// JobType represents the employment type of a job posting.
type JobType string

const (
	// JobTypeFullTime indicates a full-time position.
	JobTypeFullTime JobType = "Full-time"
	// JobTypeInternship indicates an internship.
	JobTypeInternship JobType = "Internship"
	// JobTypePartTime indicates a part-time position.
	JobTypePartTime JobType = "Part-time"
	// JobTypeContract indicates a contract position.
	JobTypeContract JobType = "Contract"
)

// Valid reports whether the type is one of the enumerated values.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypeInternship, JobTypePartTime, JobTypeContract:
		return true
	}
	return false
}

// Job represents a job posting. CompanyID references a Company but is not
// verified at write time when supplied explicitly; a dangling reference is
// tolerated and surfaces as a null companyName on reads.
type Job struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	CompanyID   string    `gorm:"not null;size:36;index:idx_jobs_company_created,priority:1" json:"companyId"`
	RecruiterID *string   `gorm:"size:36;index" json:"recruiterId"`
	Title       string    `gorm:"not null" json:"title"`
	Location    string    `gorm:"not null" json:"location"`
	Type        JobType   `gorm:"type:varchar(20);not null" json:"type"`
	Description string    `gorm:"not null" json:"description"`
	SalaryRange *string   `json:"salary_range"`
	Requirements *string  `json:"requirements"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"index:idx_jobs_company_created,priority:2,sort:desc" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Job) TableName() string {
	return "jobs"
}

// BeforeCreate assigns a generated identifier when none was supplied.
func (j *Job) BeforeCreate(_ *gorm.DB) error {
	j.ID = ensureID(j.ID)
	return nil
}
