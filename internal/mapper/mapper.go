package mapper

import (
	"time"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
)

const isoFormat = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(isoFormat)
}

// ToLeadDTO converts Lead to LeadDTO
func ToLeadDTO(lead *domain.Lead) domain.LeadDTO {
	return domain.LeadDTO{
		ID:           lead.ID,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Company:      lead.Company,
		ProjectType:  lead.ProjectType,
		BudgetRange:  lead.BudgetRange,
		Timeline:     lead.Timeline,
		Features:     lead.Features,
		Requirements: lead.Requirements,
		Status:       lead.Status,
		CreatedAt:    formatTime(lead.CreatedAt),
	}
}

// ToLeadDTOs converts a slice of Leads to DTOs
func ToLeadDTOs(leads []domain.Lead) []domain.LeadDTO {
	dtos := make([]domain.LeadDTO, len(leads))
	for i := range leads {
		dtos[i] = ToLeadDTO(&leads[i])
	}
	return dtos
}

// ToPortfolioProjectDTO converts PortfolioProject to PortfolioProjectDTO
func ToPortfolioProjectDTO(project *domain.PortfolioProject) domain.PortfolioProjectDTO {
	return domain.PortfolioProjectDTO{
		ID:           project.ID,
		Title:        project.Title,
		Description:  project.Description,
		ImageURL:     project.ImageURL,
		ProjectURL:   project.ProjectURL,
		Category:     project.Category,
		IsVisible:    project.IsVisible,
		DisplayOrder: project.DisplayOrder,
		CreatedAt:    formatTime(project.CreatedAt),
	}
}

// ToPortfolioProjectDTOs converts a slice of PortfolioProjects to DTOs
func ToPortfolioProjectDTOs(projects []domain.PortfolioProject) []domain.PortfolioProjectDTO {
	dtos := make([]domain.PortfolioProjectDTO, len(projects))
	for i := range projects {
		dtos[i] = ToPortfolioProjectDTO(&projects[i])
	}
	return dtos
}

// ToVideoDTO converts Video to VideoDTO
func ToVideoDTO(video *domain.Video) domain.VideoDTO {
	return domain.VideoDTO{
		ID:           video.ID,
		Title:        video.Title,
		Description:  video.Description,
		ThumbnailURL: video.ThumbnailURL,
		PublishedAt:  formatTime(video.PublishedAt),
		IsVisible:    video.IsVisible,
	}
}

// ToVideoDTOs converts a slice of Videos to DTOs
func ToVideoDTOs(videos []domain.Video) []domain.VideoDTO {
	dtos := make([]domain.VideoDTO, len(videos))
	for i := range videos {
		dtos[i] = ToVideoDTO(&videos[i])
	}
	return dtos
}
