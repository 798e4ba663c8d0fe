package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/mapper"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VideoService struct {
	videoRepo *repository.VideoRepository
	logger    *zap.Logger
}

func NewVideoService(videoRepo *repository.VideoRepository, logger *zap.Logger) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		logger:    logger,
	}
}

// Import upserts a batch of videos fetched from the channel. Visibility set by
// an operator survives re-imports.
func (s *VideoService) Import(ctx context.Context, videos []domain.Video) error {
	for i := range videos {
		if err := s.videoRepo.Upsert(ctx, &videos[i]); err != nil {
			return fmt.Errorf("failed to import video %s: %w", videos[i].ID, err)
		}
	}

	s.logger.Info("videos imported", zap.Int("count", len(videos)))
	return nil
}

// List returns every video, including hidden ones, for the admin view
func (s *VideoService) List(ctx context.Context) ([]domain.VideoDTO, error) {
	videos, err := s.videoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	return mapper.ToVideoDTOs(videos), nil
}

// ListPublic returns only visible videos for the marketing site
func (s *VideoService) ListPublic(ctx context.Context) ([]domain.VideoDTO, error) {
	videos, err := s.videoRepo.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible videos: %w", err)
	}

	return mapper.ToVideoDTOs(videos), nil
}

// SetVisibility toggles whether a video appears on the public site
func (s *VideoService) SetVisibility(ctx context.Context, id string, visible bool) (*domain.VideoDTO, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	video.IsVisible = visible
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	dto := mapper.ToVideoDTO(video)
	return &dto, nil
}
