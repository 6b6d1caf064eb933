// Package store holds the content and link persistence contract and its
// backends.
package store

import (
	"context"
	"errors"

	"github.com/zaqqye/linkbio/internal/models"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("not found")

// Snapshot is the full public state of the site.
type Snapshot struct {
	Content []models.ContentEntry `json:"content"`
	Links   []models.SocialLink   `json:"socialLinks"`
}

// ContentInput is a key/value pair submitted by the admin.
type ContentInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Store is implemented by every persistence backend.
type Store interface {
	// Init prepares the schema.
	Init(ctx context.Context) error
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error

	// GetAll never fails for missing keys; absent entries are simply omitted.
	GetAll(ctx context.Context) (Snapshot, error)
	UpsertContent(ctx context.Context, key, value string) error
	UpsertLink(ctx context.Context, link models.SocialLink) (models.SocialLink, error)
	// RemoveLink is a no-op when id is unknown.
	RemoveLink(ctx context.Context, id string) error
	// ReplaceAllLinks makes links the complete link set: records missing
	// from links are deleted and every submitted link is upserted.
	ReplaceAllLinks(ctx context.Context, links []models.SocialLink) error
	// ApplyUpdate upserts content and replaces links atomically.
	ApplyUpdate(ctx context.Context, content []ContentInput, links []models.SocialLink) error

	FindAdmin(ctx context.Context, username string) (models.Admin, error)
	// Ensure* create the record only when it is absent.
	EnsureAdmin(ctx context.Context, admin models.Admin) error
	EnsureContent(ctx context.Context, key, value string) error
	EnsureLink(ctx context.Context, link models.SocialLink) error

	Close() error
}

// StorableLinks drops links with an empty platform or url.
func StorableLinks(links []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(links))
	for _, l := range links {
		if l.Storable() {
			out = append(out, l)
		}
	}
	return out
}
