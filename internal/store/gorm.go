package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zaqqye/linkbio/internal/models"
)

// Gorm is the relational backend. Upserts rely on the database's native
// ON CONFLICT handling so concurrent writers never hit duplicate keys.
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// DB exposes the underlying handle.
func (g *Gorm) DB() *gorm.DB {
	return g.db
}

func (g *Gorm) Init(ctx context.Context) error {
	if err := g.db.WithContext(ctx).AutoMigrate(&models.Admin{}, &models.ContentEntry{}, &models.SocialLink{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (g *Gorm) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (g *Gorm) GetAll(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{
		Content: []models.ContentEntry{},
		Links:   []models.SocialLink{},
	}
	db := g.db.WithContext(ctx)
	if err := db.Order("created_at ASC").Order("id ASC").Find(&snap.Content).Error; err != nil {
		return Snapshot{}, fmt.Errorf("load content: %w", err)
	}
	if err := db.Order("created_at ASC").Order("id ASC").Find(&snap.Links).Error; err != nil {
		return Snapshot{}, fmt.Errorf("load links: %w", err)
	}
	return snap, nil
}

func (g *Gorm) UpsertContent(ctx context.Context, key, value string) error {
	return upsertContent(g.db.WithContext(ctx), key, value)
}

func (g *Gorm) UpsertLink(ctx context.Context, link models.SocialLink) (models.SocialLink, error) {
	return upsertLink(g.db.WithContext(ctx), link)
}

func (g *Gorm) RemoveLink(ctx context.Context, id string) error {
	if err := g.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SocialLink{}).Error; err != nil {
		return fmt.Errorf("remove link %s: %w", id, err)
	}
	return nil
}

func (g *Gorm) ReplaceAllLinks(ctx context.Context, links []models.SocialLink) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceAllLinks(tx, links)
	})
}

func (g *Gorm) ApplyUpdate(ctx context.Context, content []ContentInput, links []models.SocialLink) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range content {
			if err := upsertContent(tx, c.Key, c.Value); err != nil {
				return err
			}
		}
		return replaceAllLinks(tx, links)
	})
}

func (g *Gorm) FindAdmin(ctx context.Context, username string) (models.Admin, error) {
	var admin models.Admin
	err := g.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Admin{}, ErrNotFound
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}

func (g *Gorm) EnsureAdmin(ctx context.Context, admin models.Admin) error {
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "username"}}, DoNothing: true}).
		Create(&admin).Error
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}

func (g *Gorm) EnsureContent(ctx context.Context, key, value string) error {
	entry := models.ContentEntry{Key: key, Value: value}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, DoNothing: true}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("ensure content %s: %w", key, err)
	}
	return nil
}

func (g *Gorm) EnsureLink(ctx context.Context, link models.SocialLink) error {
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&link).Error
	if err != nil {
		return fmt.Errorf("ensure link: %w", err)
	}
	return nil
}

func upsertContent(db *gorm.DB, key, value string) error {
	entry := models.ContentEntry{Key: key, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("upsert content %s: %w", key, err)
	}
	return nil
}

func upsertLink(db *gorm.DB, link models.SocialLink) (models.SocialLink, error) {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "url", "is_active", "updated_at"}),
	}).Create(&link).Error
	if err != nil {
		return models.SocialLink{}, fmt.Errorf("upsert link: %w", err)
	}
	return link, nil
}

func replaceAllLinks(tx *gorm.DB, links []models.SocialLink) error {
	ids := make([]string, 0, len(links))
	for _, l := range links {
		if l.ID != "" {
			ids = append(ids, l.ID)
		}
	}
	del := tx.Where("1 = 1")
	if len(ids) > 0 {
		del = tx.Where("id NOT IN ?", ids)
	}
	if err := del.Delete(&models.SocialLink{}).Error; err != nil {
		return fmt.Errorf("prune links: %w", err)
	}
	for _, l := range links {
		if _, err := upsertLink(tx, l); err != nil {
			return err
		}
	}
	return nil
}
