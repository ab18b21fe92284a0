package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// US ZIP: exactly five digits
	zipRegex = regexp.MustCompile(`^\d{5}$`)

	// Loose phone: digits with optional +, separators allowed, 7-20 chars total
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,18}[0-9]$`)
)

// RegisterValidators registers custom validators to the validator instance
// and maps struct fields to their JSON names so error payloads use the
// field names the client sent.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("us_zip", USZip)
	_ = v.RegisterValidation("valid_phone", ValidPhone)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// USZip validates a five-digit US postal code
func USZip(fl validator.FieldLevel) bool {
	return zipRegex.MatchString(fl.Field().String())
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(strings.TrimSpace(val))
}
