package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/mapper"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PortfolioService struct {
	portfolioRepo *repository.PortfolioRepository
	logger        *zap.Logger
}

func NewPortfolioService(portfolioRepo *repository.PortfolioRepository, logger *zap.Logger) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		logger:        logger,
	}
}

func (s *PortfolioService) Create(ctx context.Context, req *domain.CreatePortfolioProjectRequest) (*domain.PortfolioProjectDTO, error) {
	project := &domain.PortfolioProject{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		Category:     req.Category,
		IsVisible:    true,
		DisplayOrder: req.DisplayOrder,
	}
	if req.IsVisible != nil {
		project.IsVisible = *req.IsVisible
	}

	if err := s.portfolioRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create portfolio project: %w", err)
	}

	dto := mapper.ToPortfolioProjectDTO(project)
	return &dto, nil
}

func (s *PortfolioService) GetByID(ctx context.Context, id uuid.UUID) (*domain.PortfolioProjectDTO, error) {
	project, err := s.portfolioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get portfolio project: %w", err)
	}

	dto := mapper.ToPortfolioProjectDTO(project)
	return &dto, nil
}

// List returns every project, including hidden ones, for the admin view
func (s *PortfolioService) List(ctx context.Context) ([]domain.PortfolioProjectDTO, error) {
	projects, err := s.portfolioRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio projects: %w", err)
	}

	return mapper.ToPortfolioProjectDTOs(projects), nil
}

// ListPublic returns only visible projects for the marketing site
func (s *PortfolioService) ListPublic(ctx context.Context) ([]domain.PortfolioProjectDTO, error) {
	projects, err := s.portfolioRepo.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible portfolio projects: %w", err)
	}

	return mapper.ToPortfolioProjectDTOs(projects), nil
}

// Update applies a partial patch; absent fields keep their stored value
func (s *PortfolioService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdatePortfolioProjectRequest) (*domain.PortfolioProjectDTO, error) {
	project, err := s.portfolioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get portfolio project: %w", err)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.ProjectURL != nil {
		project.ProjectURL = *req.ProjectURL
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.IsVisible != nil {
		project.IsVisible = *req.IsVisible
	}
	if req.DisplayOrder != nil {
		project.DisplayOrder = *req.DisplayOrder
	}

	if err := s.portfolioRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update portfolio project: %w", err)
	}

	dto := mapper.ToPortfolioProjectDTO(project)
	return &dto, nil
}

// Delete removes a project. Deleting an unknown id returns ErrNotFound.
func (s *PortfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.portfolioRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio project: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("portfolio project deleted", zap.String("project_id", id.String()))
	return nil
}
