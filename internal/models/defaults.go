package models

// DefaultContent returns the first-run content set.
func DefaultContent() []ContentEntry {
	return []ContentEntry{
		{Key: KeySiteName, Value: "My Personal Website"},
		{Key: KeyLogoURL, Value: "/logo.svg"},
		{Key: KeyMainText, Value: "Welcome to my personal website!"},
		{Key: KeyAboutText, Value: "This is where I share my thoughts, projects, and connect with amazing people like you."},
		{Key: KeyFooterText, Value: "© 2024 My Personal Website. All rights reserved."},
	}
}

// DefaultLinks returns the placeholder links created on first run.
func DefaultLinks() []SocialLink {
	return []SocialLink{
		{ID: "1", Platform: "Instagram", URL: "https://instagram.com/yourusername", IsActive: true},
		{ID: "2", Platform: "TikTok", URL: "https://tiktok.com/@yourusername", IsActive: true},
	}
}
