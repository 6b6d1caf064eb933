package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/linkbio/internal/apperrors"
	"github.com/zaqqye/linkbio/internal/metrics"
	"github.com/zaqqye/linkbio/internal/models"
	"github.com/zaqqye/linkbio/internal/store"
	"github.com/zaqqye/linkbio/internal/ws"
)

type AdminController struct {
	Store store.Store
	Hub   *ws.Hub
	// Seed restores missing default records.
	Seed func(ctx context.Context) error
}

type contentInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type linkInput struct {
	ID       LinkID `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IsActive *bool  `json:"isActive"`
}

func (in linkInput) toModel() models.SocialLink {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return models.SocialLink{
		ID:       in.ID.String(),
		Platform: strings.TrimSpace(in.Platform),
		URL:      strings.TrimSpace(in.URL),
		IsActive: active,
	}
}

type updateRequest struct {
	Content     []contentInput `json:"content" binding:"required"`
	SocialLinks []linkInput    `json:"socialLinks" binding:"required"`
}

// Update replaces the site content and link list in one transaction. Links
// without a platform or url are dropped, which also removes them if they
// were stored before.
func (a *AdminController) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation("content and socialLinks are required"))
		return
	}

	content := make([]store.ContentInput, 0, len(req.Content))
	for _, in := range req.Content {
		if !models.IsContentKey(in.Key) {
			_ = c.Error(apperrors.Validation(fmt.Sprintf("unknown content key %q", in.Key)))
			return
		}
		content = append(content, store.ContentInput{Key: in.Key, Value: in.Value})
	}
	links := make([]models.SocialLink, 0, len(req.SocialLinks))
	for _, in := range req.SocialLinks {
		links = append(links, in.toModel())
	}
	links = store.StorableLinks(links)

	err := a.Store.ApplyUpdate(c.Request.Context(), content, links)
	metrics.SiteUpdates.WithLabelValues("update", metrics.Result(err)).Inc()
	if err != nil {
		_ = c.Error(apperrors.Storage("Failed to update website data", err))
		return
	}
	a.Hub.Notify(ws.EventSiteUpdated)
	c.JSON(http.StatusOK, gin.H{"message": "Website data updated successfully"})
}

// SaveLink creates or updates a single link.
func (a *AdminController) SaveLink(c *gin.Context) {
	var in linkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(apperrors.Validation("Invalid request body"))
		return
	}
	link := in.toModel()
	if !link.Storable() {
		_ = c.Error(apperrors.Validation("platform and url are required"))
		return
	}

	saved, err := a.Store.UpsertLink(c.Request.Context(), link)
	metrics.SiteUpdates.WithLabelValues("save_link", metrics.Result(err)).Inc()
	if err != nil {
		_ = c.Error(apperrors.Storage("Failed to save social link", err))
		return
	}
	a.Hub.Notify(ws.EventSiteUpdated)
	c.JSON(http.StatusOK, saved)
}

// DeleteLink succeeds whether or not the link exists.
func (a *AdminController) DeleteLink(c *gin.Context) {
	err := a.Store.RemoveLink(c.Request.Context(), c.Param("id"))
	metrics.SiteUpdates.WithLabelValues("delete_link", metrics.Result(err)).Inc()
	if err != nil {
		_ = c.Error(apperrors.Storage("Failed to remove social link", err))
		return
	}
	a.Hub.Notify(ws.EventSiteUpdated)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (a *AdminController) InitDB(c *gin.Context) {
	if err := a.Seed(c.Request.Context()); err != nil {
		_ = c.Error(apperrors.Storage("Failed to initialize database", err))
		return
	}
	a.Hub.Notify(ws.EventSiteUpdated)
	c.JSON(http.StatusOK, gin.H{"message": "Database initialized successfully"})
}
