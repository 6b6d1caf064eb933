package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaqqye/linkbio/internal/apperrors"
	"github.com/zaqqye/linkbio/internal/auth"
	"github.com/zaqqye/linkbio/internal/logger"
	"github.com/zaqqye/linkbio/internal/metrics"
	"github.com/zaqqye/linkbio/internal/middleware"
)

type AuthController struct {
	Auth *auth.Authenticator
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation("Invalid request body"))
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		_ = c.Error(apperrors.Validation("Username and password are required"))
		return
	}

	admin, ok := a.Auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if !ok {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		logger.Info("admin login rejected", zap.String("username", req.Username))
		_ = c.Error(apperrors.Auth("Invalid credentials"))
		return
	}

	token, expiresAt, err := a.Auth.IssueToken(admin)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		_ = c.Error(err)
		return
	}
	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"token":     token,
		"expiresAt": expiresAt,
	})
}

func (a *AuthController) Me(c *gin.Context) {
	name, _ := middleware.CurrentAdmin(c)
	c.JSON(http.StatusOK, gin.H{"username": name})
}
