package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/linkbio/internal/apperrors"
	"github.com/zaqqye/linkbio/internal/store"
)

type WebsiteController struct {
	Store store.Store
}

// Get returns every content entry and link. Inactive links are included so
// the admin panel can round-trip them; the page hides them itself.
func (w *WebsiteController) Get(c *gin.Context) {
	snap, err := w.Store.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.Storage("Failed to fetch website data", err))
		return
	}
	c.JSON(http.StatusOK, snap)
}
