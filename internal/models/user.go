// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole represents the role a user holds on the platform.
type UserRole string

const (
	// UserRoleStudent indicates a student browsing and applying to jobs.
	UserRoleStudent UserRole = "student"
	// UserRoleEmployer indicates an employer posting jobs.
	UserRoleEmployer UserRole = "employer"
)

// Valid reports whether the role is one of the stored enum values.
func (r UserRole) Valid() bool {
	return r == UserRoleStudent || r == UserRoleEmployer
}

// User represents an account synchronized from the external auth provider.
// ExternalID is the provider-side identity and is the upsert key; it is
// unique whenever present.
type User struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ExternalID *string   `gorm:"uniqueIndex:idx_users_external_id;size:191" json:"externalId"`
	Name       string    `gorm:"not null;index:idx_users_name_role" json:"name"`
	Email      *string   `json:"email"`
	Password   *string   `json:"-"`
	Role       UserRole  `gorm:"type:varchar(20);not null;index:idx_users_name_role" json:"role"`
	CompanyID  *string   `gorm:"size:36" json:"companyId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a generated identifier when none was supplied.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	u.ID = ensureID(u.ID)
	return nil
}
