package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectType classifies what kind of site or application a lead wants built
type ProjectType string

const (
	ProjectTypeEcommerce   ProjectType = "E-commerce"
	ProjectTypePortfolio   ProjectType = "Portfolio"
	ProjectTypeBlog        ProjectType = "Blog"
	ProjectTypeCorporate   ProjectType = "Corporate"
	ProjectTypeLandingPage ProjectType = "Landing Page"
	ProjectTypeWebApp      ProjectType = "Web Application"
	ProjectTypeOther       ProjectType = "Other"
)

// IsValid checks if the ProjectType is a valid enum value
func (pt ProjectType) IsValid() bool {
	switch pt {
	case ProjectTypeEcommerce, ProjectTypePortfolio, ProjectTypeBlog, ProjectTypeCorporate,
		ProjectTypeLandingPage, ProjectTypeWebApp, ProjectTypeOther:
		return true
	}
	return false
}

// BudgetRange is the lead's stated budget bracket
type BudgetRange string

const (
	BudgetUnder1K  BudgetRange = "Under $1,000"
	Budget1KTo5K   BudgetRange = "$1,000 - $5,000"
	Budget5KTo10K  BudgetRange = "$5,000 - $10,000"
	Budget10KTo25K BudgetRange = "$10,000 - $25,000"
	BudgetOver25K  BudgetRange = "$25,000+"
)

// IsValid checks if the BudgetRange is a valid enum value
func (br BudgetRange) IsValid() bool {
	switch br {
	case BudgetUnder1K, Budget1KTo5K, Budget5KTo10K, Budget10KTo25K, BudgetOver25K:
		return true
	}
	return false
}

// Timeline is the lead's desired delivery window
type Timeline string

const (
	TimelineASAP     Timeline = "ASAP"
	TimelineTwoWeeks Timeline = "1-2 weeks"
	TimelineOneMonth Timeline = "1 month"
	TimelineQuarter  Timeline = "2-3 months"
	TimelineFlexible Timeline = "Flexible"
)

// IsValid checks if the Timeline is a valid enum value
func (tl Timeline) IsValid() bool {
	switch tl {
	case TimelineASAP, TimelineTwoWeeks, TimelineOneMonth, TimelineQuarter, TimelineFlexible:
		return true
	}
	return false
}

// LeadStatus tracks where a lead sits in the follow-up pipeline.
// Transitions are unconstrained; the status is an enumerated tag, not a state machine.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "New"
	LeadStatusContacted  LeadStatus = "Contacted"
	LeadStatusInProgress LeadStatus = "In Progress"
	LeadStatusConverted  LeadStatus = "Converted"
	LeadStatusArchived   LeadStatus = "Archived"
)

// IsValid checks if the LeadStatus is a valid enum value
func (ls LeadStatus) IsValid() bool {
	switch ls {
	case LeadStatusNew, LeadStatusContacted, LeadStatusInProgress, LeadStatusConverted, LeadStatusArchived:
		return true
	}
	return false
}

// FeatureOptions is the closed catalog of features a lead can request
var FeatureOptions = []string{
	"Responsive Design",
	"E-commerce",
	"CMS",
	"Blog",
	"Contact Forms",
	"SEO Optimization",
	"Social Media Integration",
	"Analytics",
	"Custom Animations",
	"User Authentication",
	"Payment Processing",
	"API Integration",
}

// IsValidFeature checks feature catalog membership
func IsValidFeature(feature string) bool {
	for _, f := range FeatureOptions {
		if f == feature {
			return true
		}
	}
	return false
}

// Lead represents a prospective client's project-intake submission
type Lead struct {
	ID           uuid.UUID                      `gorm:"type:uuid;primary_key"`
	Name         string                         `gorm:"type:varchar(200);not null"`
	Email        string                         `gorm:"type:varchar(255);not null"`
	Phone        string                         `gorm:"type:varchar(50)"`
	Company      string                         `gorm:"type:varchar(200)"`
	ProjectType  ProjectType                    `gorm:"type:varchar(50);not null;column:project_type"`
	BudgetRange  BudgetRange                    `gorm:"type:varchar(50);not null;column:budget_range"`
	Timeline     Timeline                       `gorm:"type:varchar(50);not null"`
	Features     datatypes.JSONSlice[string]    `gorm:"not null"`
	Requirements string                         `gorm:"type:text"`
	Status       LeadStatus                     `gorm:"type:varchar(50);not null;default:'New';index"`
	CreatedAt    time.Time                      `gorm:"not null;index"`
}

// BeforeCreate assigns the ID server-side so it works on any backing store
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
	return nil
}

// PortfolioProject represents a displayable case-study entry
type PortfolioProject struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"type:varchar(500);column:image_url"`
	ProjectURL   string    `gorm:"type:varchar(500);column:project_url"`
	Category     string    `gorm:"type:varchar(100)"`
	// No gorm default tag: a default would make the ORM drop an explicit
	// false on insert. Defaulting happens in the service layer.
	IsVisible    bool `gorm:"not null;column:is_visible;index"`
	DisplayOrder int  `gorm:"not null;default:0;column:display_order"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (p *PortfolioProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Video represents a showcase entry sourced from the agency's YouTube channel.
// The ID is the YouTube video id, so imports are idempotent upserts.
type Video struct {
	ID           string    `gorm:"type:varchar(20);primaryKey"`
	Title        string    `gorm:"type:varchar(300);not null"`
	Description  string    `gorm:"type:text"`
	ThumbnailURL string    `gorm:"type:varchar(500);column:thumbnail_url"`
	PublishedAt  time.Time `gorm:"not null;column:published_at;index"`
	IsVisible    bool      `gorm:"not null;column:is_visible;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

// User represents an admin account for the management dashboard
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null;column:password_hash"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// LeadStats holds the aggregate counters shown on the admin dashboard
type LeadStats struct {
	TotalLeads  int64 `json:"totalLeads"`
	NewThisWeek int64 `json:"newThisWeek"`
	InProgress  int64 `json:"inProgress"`
	Converted   int64 `json:"converted"`
}
