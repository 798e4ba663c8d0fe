package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/service"
	"go.uber.org/zap"
)

// PortfolioHandler handles HTTP requests for portfolio projects
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	logger           *zap.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		logger:           logger,
	}
}

// CreateProject adds a portfolio entry
func (h *PortfolioHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePortfolioProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.portfolioService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create portfolio project", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create portfolio project")
		return
	}

	respondJSON(w, http.StatusCreated, dto)
}

// ListProjects returns every project, hidden ones included
func (h *PortfolioHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.portfolioService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list portfolio projects", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list portfolio projects")
		return
	}

	respondJSON(w, http.StatusOK, dtos)
}

// ListPublicProjects returns only visible projects for the marketing site
func (h *PortfolioHandler) ListPublicProjects(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.portfolioService.ListPublic(r.Context())
	if err != nil {
		h.logger.Error("failed to list public portfolio projects", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list portfolio projects")
		return
	}

	respondJSON(w, http.StatusOK, dtos)
}

// GetProject returns a single project by id
func (h *PortfolioHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	dto, err := h.portfolioService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Portfolio project not found")
			return
		}
		h.logger.Error("failed to get portfolio project", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get portfolio project")
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

// UpdateProject applies a partial patch to a project
func (h *PortfolioHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req domain.UpdatePortfolioProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.portfolioService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Portfolio project not found")
			return
		}
		h.logger.Error("failed to update portfolio project", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update portfolio project")
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

// DeleteProject removes a project
func (h *PortfolioHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.portfolioService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Portfolio project not found")
			return
		}
		h.logger.Error("failed to delete portfolio project", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete portfolio project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
