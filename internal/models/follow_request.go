package models

import (
	"time"

	"gorm.io/gorm"
)

// FollowRequestStatus represents the status of a student's follow request.
type FollowRequestStatus string

const (
	// FollowRequestStatusPending indicates a follow request awaiting review.
	FollowRequestStatusPending FollowRequestStatus = "pending"
	// FollowRequestStatusAccepted indicates an accepted follow request.
	FollowRequestStatusAccepted FollowRequestStatus = "accepted"
	// FollowRequestStatusRejected indicates a rejected follow request.
	FollowRequestStatusRejected FollowRequestStatus = "rejected"
)

// Valid reports whether the status is one of the enumerated values.
func (s FollowRequestStatus) Valid() bool {
	switch s {
	case FollowRequestStatusPending, FollowRequestStatusAccepted, FollowRequestStatusRejected:
		return true
	}
	return false
}

// FollowRequest represents a student's request to follow a company. Like
// Application, the composite unique index on (student, companyID) is the
// duplicate-prevention guarantee.
type FollowRequest struct {
	ID        string              `gorm:"primaryKey;size:36" json:"id"`
	Student   string              `gorm:"not null;size:191;uniqueIndex:idx_follow_requests_student_company" json:"student"`
	CompanyID string              `gorm:"not null;size:36;uniqueIndex:idx_follow_requests_student_company" json:"companyId"`
	Status    FollowRequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (FollowRequest) TableName() string {
	return "follow_requests"
}

// BeforeCreate assigns a generated identifier when none was supplied.
func (f *FollowRequest) BeforeCreate(_ *gorm.DB) error {
	f.ID = ensureID(f.ID)
	return nil
}
