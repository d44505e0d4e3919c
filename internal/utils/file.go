// internal/utils/file.go
package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
)

// ImageFields are the multipart fields a product accepts images under.
var ImageFields = []string{"image1", "image2", "image3", "image4", "image5"}

var allowedImageTypes = regexp.MustCompile(`jpeg|jpg|png`)

// ValidateImageFile checks the extension and the declared MIME type of an
// uploaded image against the jpeg/jpg/png allow-list, plus the size limit.
func ValidateImageFile(field string, header *multipart.FileHeader, maxSize int64) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	mimeType := strings.ToLower(header.Header.Get("Content-Type"))

	if ext == "" || !allowedImageTypes.MatchString(ext) || !allowedImageTypes.MatchString(mimeType) {
		return apperr.Validation(i18n.KeyFileInvalidType).WithDetails([]ValidationError{{
			Field:   field,
			Tag:     "file_type",
			Message: fmt.Sprintf("%s (%s) is not a JPG or PNG image", header.Filename, mimeType),
		}})
	}

	if maxSize > 0 && header.Size > maxSize {
		return apperr.TooLarge(i18n.KeyFileTooLarge, header.Filename, maxSize)
	}

	return nil
}

// UploadFileName builds the stored name <field>-<unix millis><ext>. Two
// uploads under the same field within one millisecond get the same name.
func UploadFileName(field, originalName string, now time.Time) string {
	return fmt.Sprintf("%s-%d%s", field, now.UnixMilli(), filepath.Ext(originalName))
}

// ImageFiles picks the first file of every image field present in form.
func ImageFiles(form *multipart.Form) map[string]*multipart.FileHeader {
	files := make(map[string]*multipart.FileHeader)
	if form == nil {
		return files
	}
	for _, field := range ImageFields {
		if headers := form.File[field]; len(headers) > 0 {
			files[field] = headers[0]
		}
	}
	return files
}
