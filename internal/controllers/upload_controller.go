package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaqqye/linkbio/internal/apperrors"
	"github.com/zaqqye/linkbio/internal/logger"
	"github.com/zaqqye/linkbio/internal/metrics"
	"github.com/zaqqye/linkbio/internal/models"
	"github.com/zaqqye/linkbio/internal/storage"
	"github.com/zaqqye/linkbio/internal/store"
	"github.com/zaqqye/linkbio/internal/ws"
)

type UploadController struct {
	Store    store.Store
	Uploader *storage.Uploader
	Hub      *ws.Hub
}

// Upload stores an image and points logo_url at it.
func (u *UploadController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		_ = c.Error(apperrors.Validation("No file uploaded"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		_ = c.Error(apperrors.Validation("Unreadable file"))
		return
	}
	defer f.Close()

	up, err := u.Uploader.Save(fh.Filename, f)
	if err != nil {
		metrics.Uploads.WithLabelValues("rejected").Inc()
		if errors.Is(err, storage.ErrTooLarge) || errors.Is(err, storage.ErrNotImage) || errors.Is(err, storage.ErrEmptyFile) {
			_ = c.Error(apperrors.Validation(err.Error()))
			return
		}
		_ = c.Error(apperrors.Storage("Failed to upload file", err))
		return
	}

	if err := u.Store.UpsertContent(c.Request.Context(), models.KeyLogoURL, up.URL); err != nil {
		metrics.Uploads.WithLabelValues("error").Inc()
		if derr := u.Uploader.Discard(up.Name); derr != nil {
			logger.Warn("discard orphaned upload", zap.String("name", up.Name), zap.Error(derr))
		}
		_ = c.Error(apperrors.Storage("Failed to upload file", err))
		return
	}
	metrics.Uploads.WithLabelValues("ok").Inc()
	u.Hub.Notify(ws.EventSiteUpdated)
	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     up.URL,
	})
}
