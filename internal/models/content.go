package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Known content keys.
const (
	KeySiteName   = "site_name"
	KeyLogoURL    = "logo_url"
	KeyMainText   = "main_text"
	KeyAboutText  = "about_text"
	KeyFooterText = "footer_text"
)

// ContentKeys is the editable vocabulary, in display order.
var ContentKeys = []string{KeySiteName, KeyLogoURL, KeyMainText, KeyAboutText, KeyFooterText}

// IsContentKey reports whether key belongs to the known vocabulary.
func IsContentKey(key string) bool {
	for _, k := range ContentKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ContentEntry is one named piece of website text or URL.
type ContentEntry struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Key       string    `gorm:"size:64;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (ContentEntry) TableName() string {
	return "website_content"
}

func (c *ContentEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
