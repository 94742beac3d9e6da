package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/devfolio/backend/pkg/response"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	slugRe   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func init() {
	validate = validator.New()

	// Report violations under the json field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// slugfmt: lowercase words separated by single hyphens.
	_ = validate.RegisterValidation("slugfmt", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
}

// Struct validates a full record against its schema tags and returns the
// field-level violations, or nil if the record is valid. Partial updates must
// validate the merged record through this, never just the delta.
func Struct(v interface{}) []response.FieldViolation {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []response.FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]response.FieldViolation, 0, len(valErrs))
	for _, fe := range valErrs {
		violations = append(violations, response.FieldViolation{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return violations
}

// describe turns a validator tag failure into a human-readable message.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "slugfmt":
		return "must contain only lowercase letters, digits and hyphens"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}

// IsValidSlug reports whether s satisfies the slug format.
func IsValidSlug(s string) bool {
	return slugRe.MatchString(s)
}

// Slugify derives a slug from free text: lowercased, non-alphanumerics
// collapsed into single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastHyphen := true // avoid a leading hyphen
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
