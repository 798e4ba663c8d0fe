package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
)

var validate = newValidator()

// newValidator registers the enum tags used by the request DTOs. The catalog
// values contain spaces and commas, so they cannot be expressed with oneof.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("project_type", func(fl validator.FieldLevel) bool {
		return domain.ProjectType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("budget_range", func(fl validator.FieldLevel) bool {
		return domain.BudgetRange(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("timeline", func(fl validator.FieldLevel) bool {
		return domain.Timeline(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("lead_status", func(fl validator.FieldLevel) bool {
		return domain.LeadStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("feature", func(fl validator.FieldLevel) bool {
		return domain.IsValidFeature(fl.Field().String())
	})

	return v
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.ErrorResponse{Message: message})
}

// respondValidationError sends a 400 with per-field messages
func respondValidationError(w http.ResponseWriter, err error) {
	var fieldErrors []domain.ValidationFieldError
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			fieldErrors = append(fieldErrors, domain.ValidationFieldError{
				Field:   toJSONFieldName(fe.Field()),
				Message: formatValidationError(fe),
			})
		}
	}

	respondJSON(w, http.StatusBadRequest, domain.ErrorResponse{
		Message: "One or more fields failed validation",
		Errors:  fieldErrors,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "url":
		return "Must be a valid URL"
	case "project_type":
		return "Must be one of: " + joinProjectTypes()
	case "budget_range":
		return "Must be a recognized budget range"
	case "timeline":
		return "Must be a recognized timeline"
	case "lead_status":
		return "Must be one of: New, Contacted, In Progress, Converted, Archived"
	case "feature":
		return fmt.Sprintf("Must be one of: %s", strings.Join(domain.FeatureOptions, ", "))
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

func joinProjectTypes() string {
	return "E-commerce, Portfolio, Blog, Corporate, Landing Page, Web Application, Other"
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// decodeJSON parses the request body into the target. Unknown fields are
// ignored; malformed bodies surface as a uniform error.
func decodeJSON(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
