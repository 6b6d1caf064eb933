package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLink is a platform + URL pair shown on the public page.
type SocialLink struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Platform  string    `gorm:"size:64" json:"platform"`
	URL       string    `gorm:"type:text" json:"url"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (SocialLink) TableName() string {
	return "social_links"
}

func (l *SocialLink) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Storable reports whether both platform and url carry a value.
func (l SocialLink) Storable() bool {
	return strings.TrimSpace(l.Platform) != "" && strings.TrimSpace(l.URL) != ""
}
