package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/zaqqye/linkbio/internal/models"
)

// Memory keeps everything in process memory. Slices preserve insertion
// order, which stands in for creation order.
type Memory struct {
	mu      sync.RWMutex
	content []models.ContentEntry
	links   []models.SocialLink
	admins  map[string]models.Admin
	nextID  uint
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{admins: map[string]models.Admin{}}
}

func (m *Memory) Init(ctx context.Context) error { return nil }

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

func (m *Memory) GetAll(ctx context.Context) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := Snapshot{
		Content: make([]models.ContentEntry, len(m.content)),
		Links:   make([]models.SocialLink, len(m.links)),
	}
	copy(snap.Content, m.content)
	copy(snap.Links, m.links)
	return snap, nil
}

func (m *Memory) UpsertContent(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertContent(key, value)
	return nil
}

func (m *Memory) UpsertLink(ctx context.Context, link models.SocialLink) (models.SocialLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertLink(link), nil
}

func (m *Memory) RemoveLink(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.links {
		if l.ID == id {
			m.links = append(m.links[:i], m.links[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) ReplaceAllLinks(ctx context.Context, links []models.SocialLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaceAllLinks(links)
	return nil
}

func (m *Memory) ApplyUpdate(ctx context.Context, content []ContentInput, links []models.SocialLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range content {
		m.upsertContent(c.Key, c.Value)
	}
	m.replaceAllLinks(links)
	return nil
}

func (m *Memory) FindAdmin(ctx context.Context, username string) (models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.admins[username]
	if !ok {
		return models.Admin{}, ErrNotFound
	}
	return a, nil
}

func (m *Memory) EnsureAdmin(ctx context.Context, admin models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.admins[admin.Username]; ok {
		return nil
	}
	m.nextID++
	admin.ID = m.nextID
	m.admins[admin.Username] = admin
	return nil
}

func (m *Memory) EnsureContent(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.contentIndex(key) >= 0 {
		return nil
	}
	m.upsertContent(key, value)
	return nil
}

func (m *Memory) EnsureLink(ctx context.Context, link models.SocialLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if link.ID != "" && m.linkIndex(link.ID) >= 0 {
		return nil
	}
	m.upsertLink(link)
	return nil
}

// The helpers below expect m.mu to be held for writing.

func (m *Memory) contentIndex(key string) int {
	for i, c := range m.content {
		if c.Key == key {
			return i
		}
	}
	return -1
}

func (m *Memory) linkIndex(id string) int {
	for i, l := range m.links {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) upsertContent(key, value string) {
	if i := m.contentIndex(key); i >= 0 {
		m.content[i].Value = value
		return
	}
	m.content = append(m.content, models.ContentEntry{ID: uuid.NewString(), Key: key, Value: value})
}

func (m *Memory) upsertLink(link models.SocialLink) models.SocialLink {
	if link.ID != "" {
		if i := m.linkIndex(link.ID); i >= 0 {
			m.links[i].Platform = link.Platform
			m.links[i].URL = link.URL
			m.links[i].IsActive = link.IsActive
			return m.links[i]
		}
	} else {
		link.ID = uuid.NewString()
	}
	m.links = append(m.links, link)
	return link
}

func (m *Memory) replaceAllLinks(links []models.SocialLink) {
	keep := make(map[string]struct{}, len(links))
	for _, l := range links {
		if l.ID != "" {
			keep[l.ID] = struct{}{}
		}
	}
	kept := m.links[:0]
	for _, l := range m.links {
		if _, ok := keep[l.ID]; ok {
			kept = append(kept, l)
		}
	}
	m.links = kept
	for _, l := range links {
		m.upsertLink(l)
	}
}
