package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "meansassess/internal/errors"
	"meansassess/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into the standard failure envelope. AppErrors are returned with
// their code and messages; unexpected errors are logged and return a generic
// internal error to avoid leaking details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		log := logger.ForRequest(RequestID(c), c.Request.Method, c.Request.URL.Path)

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				log.Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
				)
			}
			c.JSON(appErr.StatusCode, failure(appErr))
			return
		}

		// Unexpected error: log full details, return generic message
		log.Errorw("unexpected error", "error", err.Error())
		c.JSON(apperrors.ErrInternalServer.StatusCode, failure(apperrors.ErrInternalServer))
	}
}

// Recovery turns a panic in a handler into an internal error for ErrorHandler
// to report. It must be registered after ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}

// NoRoute answers requests for unknown paths with the failure envelope.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(apperrors.ErrNotFound.StatusCode, failure(apperrors.ErrNotFound))
	}
}

func failure(appErr *apperrors.AppError) gin.H {
	return gin.H{
		"success": false,
		"errors":  appErr.Messages(),
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	}
}
