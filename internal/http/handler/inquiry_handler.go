package handler

import (
	"errors"
	"net/http"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/service"
	"go.uber.org/zap"
)

// InquiryHandler handles the notify-only form endpoints
type InquiryHandler struct {
	inquiryService *service.InquiryService
	logger         *zap.Logger
}

// NewInquiryHandler creates a new InquiryHandler
func NewInquiryHandler(inquiryService *service.InquiryService, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		logger:         logger,
	}
}

// NotifyLead forwards a project-intake submission to the admin inbox without
// storing it
func (h *InquiryHandler) NotifyLead(w http.ResponseWriter, r *http.Request) {
	var req domain.LeadNotificationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.inquiryService.NotifyLead(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotificationFailed) {
			respondWithError(w, http.StatusInternalServerError, "Failed to deliver notification")
			return
		}
		h.logger.Error("failed to process lead notification", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to process submission")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// NotifyContact forwards a contact-form submission to the admin inbox
func (h *InquiryHandler) NotifyContact(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	result, err := h.inquiryService.NotifyContact(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotificationFailed) {
			respondWithError(w, http.StatusInternalServerError, "Failed to deliver notification")
			return
		}
		h.logger.Error("failed to process contact submission", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to process submission")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
