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

// LeadHandler handles HTTP requests for client leads
type LeadHandler struct {
	leadService *service.LeadService
	logger      *zap.Logger
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(leadService *service.LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// CreateLead stores a project-intake submission and notifies the admin inbox
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.leadService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create lead", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	respondJSON(w, http.StatusCreated, dto)
}

// ListLeads returns all leads, newest first
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.leadService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list leads", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}

	respondJSON(w, http.StatusOK, dtos)
}

// GetLead returns a single lead by id
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	dto, err := h.leadService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Lead not found")
			return
		}
		h.logger.Error("failed to get lead", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get lead")
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

// UpdateLead applies a partial patch to a lead
func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	var req domain.UpdateLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.leadService.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Lead not found")
			return
		}
		h.logger.Error("failed to update lead", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

// DeleteLead removes a lead
func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	if err := h.leadService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Lead not found")
			return
		}
		h.logger.Error("failed to delete lead", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete lead")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
