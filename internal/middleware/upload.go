// internal/middleware/upload.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
	"github.com/javajoker/retail-backend/internal/utils"
)

const multipartMemory = 8 << 20

// ImageUpload parses a multipart body and checks every file before the
// handler runs: only image1..image5 are accepted, one file each, JPG or PNG,
// at most maxFileSize bytes. Nothing is stored here.
func ImageUpload(maxBodySize, maxFileSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBodySize > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
		}

		err := c.Request.ParseMultipartForm(multipartMemory)
		switch {
		case err == nil:
		case errors.Is(err, http.ErrNotMultipart):
			// Plain forms carry no files; the handler reports what is missing.
			c.Next()
			return
		default:
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				abortWithError(c, apperr.TooLarge(i18n.KeyFileTooLarge, "request body", maxBodySize))
				return
			}
			abortWithError(c, &apperr.Error{Kind: apperr.KindValidation, Key: i18n.KeyFileMalformed, Err: err})
			return
		}

		for field, headers := range c.Request.MultipartForm.File {
			if !isImageField(field) || len(headers) > 1 {
				abortWithError(c, apperr.Validation(i18n.KeyValidationUnknown).WithDetails([]utils.ValidationError{{
					Field:   field,
					Tag:     "unexpected_file",
					Message: fmt.Sprintf("%s accepts no more than one file (fields: image1 to image5)", field),
				}}))
				return
			}

			if err := utils.ValidateImageFile(field, headers[0], maxFileSize); err != nil {
				abortWithError(c, err)
				return
			}
		}

		c.Next()
	}
}

func isImageField(field string) bool {
	for _, f := range utils.ImageFields {
		if f == field {
			return true
		}
	}
	return false
}
