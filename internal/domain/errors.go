package domain

// ErrorResponse is the standard error body: a human message plus optional
// per-field validation detail.
type ErrorResponse struct {
	Message string                 `json:"message"`
	Errors  []ValidationFieldError `json:"errors,omitempty"`
}

// ValidationFieldError maps a field name to its validation error message
type ValidationFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationMessages provides human-readable fallbacks for validator tags
// not covered by the handler's formatter
var ValidationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"max":      "Exceeds maximum length",
	"min":      "Below minimum length",
	"url":      "Must be a valid URL",
	"uuid":     "Must be a valid UUID",
	"oneof":    "Must be one of the allowed values",
}

// GetValidationMessage returns a human-readable message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := ValidationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}
