// internal/utils/validator.go
package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/javajoker/retail-backend/internal/apperr"
	"github.com/javajoker/retail-backend/internal/i18n"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("notblank", validateNotBlank)

	// Report JSON names so details line up with what clients sent.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Validate runs struct validation and converts failures into a validation
// error carrying per-field details.
func Validate(s interface{}) error {
	if err := ValidateStruct(s); err != nil {
		if details := GetValidationErrors(err); len(details) > 0 {
			return apperr.Validation(i18n.KeyValidationInvalid, "input").WithDetails(details)
		}
		return apperr.Validation(i18n.KeyValidationInvalid, "input")
	}
	return nil
}

// BindJSON decodes the request body into dst, rejecting unknown keys and type
// mismatches, then validates it.
func BindJSON(c *gin.Context, dst interface{}) error {
	if c.Request.Body == nil {
		return apperr.Validation(i18n.KeyInvalidBody)
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return apperr.Validation(i18n.KeyInvalidBody)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return apperr.Validation(i18n.KeyInvalidBody)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return apperr.Validation(i18n.KeyValidationInvalid, typeErr.Field).WithDetails([]ValidationError{{
				Field:   typeErr.Field,
				Tag:     "type",
				Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
			}})
		}
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			field, _ := strconv.Unquote(strings.TrimPrefix(err.Error(), "json: unknown field "))
			return apperr.Validation(i18n.KeyValidationUnknown).WithDetails([]ValidationError{{
				Field:   field,
				Tag:     "unknown",
				Message: field + " is not an accepted field",
			}})
		}
		return apperr.Validation(i18n.KeyInvalidBody)
	}
	// One JSON value per body.
	if _, err := decoder.Token(); err != io.EOF {
		return apperr.Validation(i18n.KeyInvalidBody)
	}

	return Validate(dst)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "notblank":
		return e.Field() + " cannot be blank"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "hexcolor":
		return e.Field() + " must be a hex colour such as #1a2b3c"
	default:
		return e.Field() + " is invalid"
	}
}
