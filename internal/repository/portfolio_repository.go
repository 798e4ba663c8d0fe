package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"gorm.io/gorm"
)

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) Create(ctx context.Context, project *domain.PortfolioProject) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PortfolioProject, error) {
	var project domain.PortfolioProject
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns all projects ordered by display_order ascending, newest first
// within the same order slot
func (r *PortfolioRepository) List(ctx context.Context) ([]domain.PortfolioProject, error) {
	var projects []domain.PortfolioProject
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

// ListVisible returns only publicly visible projects, same ordering as List
func (r *PortfolioRepository) ListVisible(ctx context.Context) ([]domain.PortfolioProject, error) {
	var projects []domain.PortfolioProject
	err := r.db.WithContext(ctx).
		Where("is_visible = ?", true).
		Order("display_order ASC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *PortfolioRepository) Update(ctx context.Context, project *domain.PortfolioProject) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project by id and reports whether a row was removed
func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.PortfolioProject{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
