package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zaqqye/linkbio/internal/apperrors"
	"github.com/zaqqye/linkbio/internal/logger"
)

// ErrorHandler renders the last error a handler attached with c.Error as
// {"error": message}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		if appErr, ok := apperrors.As(err); ok {
			if appErr.Kind == apperrors.KindStorage {
				logger.Error("storage failure",
					zap.String("path", c.FullPath()),
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.Error(appErr.Err))
			}
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}

		logger.Error("unhandled request error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred"})
	}
}
