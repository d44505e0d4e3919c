// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	ContextKeyLang      = "lang"
	ContextKeyRequestID = "request_id"
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Results *int        `json:"results,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status: StatusSuccess,
		Data:   data,
	})
}

func MessageResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func ListResponse(c *gin.Context, data interface{}, results int) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  StatusSuccess,
		Results: &results,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// NoContentResponse answers 204 without a body.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func PaginatedResponse(c *gin.Context, result PaginationResult, results int) {
	SetPaginationHeaders(c, result)
	c.JSON(http.StatusOK, APIResponse{
		Status:  StatusSuccess,
		Results: &results,
		Data:    result.Data,
		Meta: gin.H{
			"pagination": gin.H{
				"page":        result.Page,
				"limit":       result.Limit,
				"total":       result.Total,
				"total_pages": result.TotalPages,
			},
		},
	})
}

// RespondError renders err as an error envelope. Anything that is not an
// *apperr.Error is reported as an internal failure under failKey, and the
// underlying cause is only written to the log.
func RespondError(c *gin.Context, err error, failKey string) {
	appErr := apperr.From(err, failKey)
	LogError(c, appErr)
	WriteError(c, appErr)
}

// WriteError writes the envelope for appErr without logging.
func WriteError(c *gin.Context, appErr *apperr.Error) {
	lang := GetLangFromContext(c)
	c.JSON(appErr.Status(), APIResponse{
		Status:  StatusError,
		Message: appErr.Message(lang),
		Error: &APIError{
			Code:    appErr.Code(),
			Details: appErr.Details,
		},
	})
}

func LogError(c *gin.Context, appErr *apperr.Error) {
	entry := logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(ContextKeyRequestID),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"kind":       appErr.Kind,
		"key":        appErr.Key,
	})
	if appErr.Err != nil {
		entry = entry.WithError(appErr.Err)
	}

	if appErr.Kind == apperr.KindInternal {
		entry.Error("Request failed")
		return
	}
	entry.Debug("Request rejected")
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get(ContextKeyLang); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLanguage()
}

func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	if userID, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := userID.(uint); ok {
			return id, true
		}
	}
	return 0, false
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get(ContextKeyUserRole); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}
