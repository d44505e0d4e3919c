// internal/middleware/error_handler.go
package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/utils"
)

// ErrorHandler renders the last error attached with c.Error when the
// handler chain finished without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperr.From(c.Errors.Last().Err, i18n.KeyInternalError)
		utils.LogError(c, appErr)
		utils.WriteError(c, appErr)
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(utils.ContextKeyRequestID),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprint(recovered),
		}).Error("Recovered from panic")

		if !c.Writer.Written() {
			utils.WriteError(c, apperr.Internal(i18n.KeyInternalError, fmt.Errorf("panic: %v", recovered)))
		}
		c.Abort()
	})
}

func NoRoute(c *gin.Context) {
	utils.WriteError(c, apperr.NotFound(i18n.KeyRouteNotFound))
}

func NoMethod(c *gin.Context) {
	utils.WriteError(c, apperr.New(apperr.KindNotAllowed, i18n.KeyMethodNotAllowed))
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
