package repository

import (
	"context"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Upsert inserts or refreshes a video by its YouTube id, preserving the
// operator-controlled visibility flag on conflict
func (r *VideoRepository) Upsert(ctx context.Context, video *domain.Video) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "thumbnail_url", "published_at"}),
	}).Create(video).Error
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	var video domain.Video
	err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// List returns all videos, most recently published first
func (r *VideoRepository) List(ctx context.Context) ([]domain.Video, error) {
	var videos []domain.Video
	err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Find(&videos).Error
	return videos, err
}

// ListVisible returns only publicly visible videos
func (r *VideoRepository) ListVisible(ctx context.Context) ([]domain.Video, error) {
	var videos []domain.Video
	err := r.db.WithContext(ctx).
		Where("is_visible = ?", true).
		Order("published_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *VideoRepository) Update(ctx context.Context, video *domain.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}
