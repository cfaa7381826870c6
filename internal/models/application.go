package models

import (
	"time"

	"gorm.io/gorm"
)

// ApplicationStatus represents the review status of a job application.
type ApplicationStatus string

const (
	// ApplicationStatusSubmitted indicates a newly submitted application.
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	// ApplicationStatusAccepted indicates an accepted application.
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected indicates a rejected application.
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the enumerated values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application represents a student's application to a job. The composite
// unique index on (jobID, student) is the duplicate-prevention guarantee:
// the service-level existence check is advisory only, the constraint is
// what actually holds under concurrent creates.
type Application struct {
	ID          string            `gorm:"primaryKey;size:36" json:"id"`
	JobID       string            `gorm:"not null;size:36;uniqueIndex:idx_applications_job_student" json:"jobId"`
	Student     string            `gorm:"not null;size:191;uniqueIndex:idx_applications_job_student" json:"student"`
	CoverLetter *string           `json:"cover_letter"`
	ResumeURL   *string           `json:"resume_url"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Application) TableName() string {
	return "applications"
}

// BeforeCreate assigns a generated identifier when none was supplied.
func (a *Application) BeforeCreate(_ *gorm.DB) error {
	a.ID = ensureID(a.ID)
	return nil
}
