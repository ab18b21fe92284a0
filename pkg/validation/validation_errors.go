package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps JSON field names to user-friendly labels
var FieldLabels = map[string]string{
	"fullName": "Full Name",
	"email":    "Email",
	"phone":    "Phone",
	"zip":      "ZIP Code",
	"workType": "Service",
	"message":  "Message",
	"consent":  "Consent",
}

// FormatFieldErrors converts validator.ValidationErrors into per-field
// message lists keyed by JSON field name, so the client can highlight every
// violated field at once.
func FormatFieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error; report it unkeyed
		fields["_"] = []string{err.Error()}
		return fields
	}

	for _, e := range validationErrors {
		field := e.Field()
		fields[field] = append(fields[field], formatSingleError(field, e))
	}

	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(field string, e validator.FieldError) string {
	label := getFieldLabel(field)

	switch e.Tag() {
	case "required":
		if field == "consent" {
			return "Consent is required"
		}
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Enter a valid email"
	case "us_zip":
		return "Enter a 5-digit ZIP"
	case "valid_phone":
		return "Enter a valid phone number"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s is too small", label)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s is too large", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, formatOneOfOptions(e.Param()))
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}

// formatOneOfOptions formats oneof options for display. Quoted options
// (values containing spaces) are unwrapped.
func formatOneOfOptions(param string) string {
	var options []string
	if strings.Contains(param, "'") {
		for _, p := range strings.Split(param, "'") {
			if p = strings.TrimSpace(p); p != "" {
				options = append(options, p)
			}
		}
	} else {
		options = strings.Split(param, " ")
	}
	return strings.Join(options, ", ")
}
