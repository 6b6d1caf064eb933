package models

import "time"

// Admin is the single identity allowed to edit the site.
type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex"`
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Admin) TableName() string {
	return "admins"
}
