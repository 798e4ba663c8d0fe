package domain

import (
	"github.com/google/uuid"
)

// LeadDTO is the API representation of a Lead
type LeadDTO struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	Company      string      `json:"company,omitempty"`
	ProjectType  ProjectType `json:"projectType"`
	BudgetRange  BudgetRange `json:"budgetRange"`
	Timeline     Timeline    `json:"timeline"`
	Features     []string    `json:"features"`
	Requirements string      `json:"requirements,omitempty"`
	Status       LeadStatus  `json:"status"`
	CreatedAt    string      `json:"createdAt"` // ISO 8601
}

// PortfolioProjectDTO is the API representation of a PortfolioProject
type PortfolioProjectDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	ProjectURL   string    `json:"projectUrl,omitempty"`
	Category     string    `json:"category,omitempty"`
	IsVisible    bool      `json:"isVisible"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    string    `json:"createdAt"` // ISO 8601
}

// VideoDTO is the API representation of a showcase Video
type VideoDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	PublishedAt  string `json:"publishedAt"` // ISO 8601
	IsVisible    bool   `json:"isVisible"`
}

// CreateLeadRequest is the payload for the project-intake form.
// Enum fields use custom validator tags registered in the handler package.
type CreateLeadRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=200"`
	Email        string   `json:"email" validate:"required,email,max=255"`
	Phone        string   `json:"phone,omitempty" validate:"max=50"`
	Company      string   `json:"company,omitempty" validate:"max=200"`
	ProjectType  string   `json:"projectType" validate:"required,project_type"`
	BudgetRange  string   `json:"budgetRange" validate:"required,budget_range"`
	Timeline     string   `json:"timeline" validate:"required,timeline"`
	Features     []string `json:"features" validate:"required,min=1,dive,feature"`
	Requirements string   `json:"requirements,omitempty" validate:"max=5000"`
	Status       string   `json:"status,omitempty" validate:"omitempty,lead_status"`
}

// UpdateLeadRequest is a partial patch; only non-nil fields are applied
type UpdateLeadRequest struct {
	Name         *string   `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Email        *string   `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone        *string   `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company      *string   `json:"company,omitempty" validate:"omitempty,max=200"`
	ProjectType  *string   `json:"projectType,omitempty" validate:"omitempty,project_type"`
	BudgetRange  *string   `json:"budgetRange,omitempty" validate:"omitempty,budget_range"`
	Timeline     *string   `json:"timeline,omitempty" validate:"omitempty,timeline"`
	Features     *[]string `json:"features,omitempty" validate:"omitempty,min=1,dive,feature"`
	Requirements *string   `json:"requirements,omitempty" validate:"omitempty,max=5000"`
	Status       *string   `json:"status,omitempty" validate:"omitempty,lead_status"`
}

// CreatePortfolioProjectRequest is the payload for adding a portfolio entry
type CreatePortfolioProjectRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description,omitempty" validate:"max=5000"`
	ImageURL     string `json:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	ProjectURL   string `json:"projectUrl,omitempty" validate:"omitempty,url,max=500"`
	Category     string `json:"category,omitempty" validate:"max=100"`
	IsVisible    *bool  `json:"isVisible,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

// UpdatePortfolioProjectRequest is a partial patch; only non-nil fields are applied
type UpdatePortfolioProjectRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	ImageURL     *string `json:"imageUrl,omitempty" validate:"omitempty,url,max=500"`
	ProjectURL   *string `json:"projectUrl,omitempty" validate:"omitempty,url,max=500"`
	Category     *string `json:"category,omitempty" validate:"omitempty,max=100"`
	IsVisible    *bool   `json:"isVisible,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
}

// UpdateVideoRequest toggles showcase video visibility
type UpdateVideoRequest struct {
	IsVisible *bool `json:"isVisible" validate:"required"`
}

// ImportVideoEntry is one video from a channel feed sync
type ImportVideoEntry struct {
	ID           string `json:"id" validate:"required,max=20"`
	Title        string `json:"title" validate:"required,max=300"`
	Description  string `json:"description,omitempty" validate:"max=10000"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty" validate:"omitempty,url,max=500"`
	PublishedAt  string `json:"publishedAt" validate:"required"` // RFC 3339
}

// ImportVideosRequest is the payload for a channel feed sync
type ImportVideosRequest struct {
	Videos []ImportVideoEntry `json:"videos" validate:"required,min=1,dive"`
}

// LeadNotificationRequest is the payload for the notify-only intake endpoint.
// Only name and email are required; everything else is included in the
// notification body when present.
type LeadNotificationRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=200"`
	Email        string   `json:"email" validate:"required,email,max=255"`
	Phone        string   `json:"phone,omitempty" validate:"max=50"`
	Company      string   `json:"company,omitempty" validate:"max=200"`
	ProjectType  string   `json:"projectType,omitempty" validate:"omitempty,project_type"`
	BudgetRange  string   `json:"budgetRange,omitempty" validate:"omitempty,budget_range"`
	Timeline     string   `json:"timeline,omitempty" validate:"omitempty,timeline"`
	Features     []string `json:"features,omitempty" validate:"omitempty,dive,feature"`
	Requirements string   `json:"requirements,omitempty" validate:"max=5000"`
}

// ContactRequest is the payload for the general contact form
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone,omitempty" validate:"max=50"`
	Subject string `json:"subject,omitempty" validate:"max=200"`
	Message string `json:"message" validate:"required,max=10000"`
}

// LoginRequest carries admin credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// LoginResponse returns the issued bearer token
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// NotificationResultDTO reports which provider delivered a notification
type NotificationResultDTO struct {
	Message  string `json:"message"`
	Provider string `json:"provider"`
}
