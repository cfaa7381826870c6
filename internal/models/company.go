package models

import (
	"time"

	"gorm.io/gorm"
)

// Company represents an organization that posts jobs and can be followed
// by students.
type Company struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	About     string    `gorm:"not null" json:"about"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// BeforeCreate assigns a generated identifier when none was supplied.
func (c *Company) BeforeCreate(_ *gorm.DB) error {
	c.ID = ensureID(c.ID)
	return nil
}
