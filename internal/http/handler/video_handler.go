package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/service"
	"go.uber.org/zap"
)

// VideoHandler handles HTTP requests for showcase videos
type VideoHandler struct {
	videoService *service.VideoService
	logger       *zap.Logger
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(videoService *service.VideoService, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
		logger:       logger,
	}
}

// ListVideos returns every video, hidden ones included
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.videoService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list videos", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list videos")
		return
	}

	respondJSON(w, http.StatusOK, dtos)
}

// ListPublicVideos returns only visible videos for the marketing site
func (h *VideoHandler) ListPublicVideos(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.videoService.ListPublic(r.Context())
	if err != nil {
		h.logger.Error("failed to list public videos", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list videos")
		return
	}

	respondJSON(w, http.StatusOK, dtos)
}

// ImportVideos upserts a batch of videos from a channel feed sync. Videos an
// operator has hidden stay hidden across re-imports.
func (h *VideoHandler) ImportVideos(w http.ResponseWriter, r *http.Request) {
	var req domain.ImportVideosRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	videos := make([]domain.Video, 0, len(req.Videos))
	for _, entry := range req.Videos {
		publishedAt, err := time.Parse(time.RFC3339, entry.PublishedAt)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid publishedAt timestamp for video "+entry.ID)
			return
		}
		videos = append(videos, domain.Video{
			ID:           entry.ID,
			Title:        entry.Title,
			Description:  entry.Description,
			ThumbnailURL: entry.ThumbnailURL,
			PublishedAt:  publishedAt.UTC(),
			IsVisible:    true,
		})
	}

	if err := h.videoService.Import(r.Context(), videos); err != nil {
		h.logger.Error("failed to import videos", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to import videos")
		return
	}

	dtos, err := h.videoService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list videos", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list videos")
		return
	}

	respondJSON(w, http.StatusOK, dtos)
}

// UpdateVideo toggles a video's public visibility
func (h *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Invalid video ID")
		return
	}

	var req domain.UpdateVideoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.videoService.SetVisibility(r.Context(), id, *req.IsVisible)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Video not found")
			return
		}
		h.logger.Error("failed to update video", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update video")
		return
	}

	respondJSON(w, http.StatusOK, dto)
}
