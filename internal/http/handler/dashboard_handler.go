package handler

import (
	"net/http"

	"github.com/mjdigitalmedia/agency-api/internal/service"
	"go.uber.org/zap"
)

// DashboardHandler serves the aggregate counters for the admin dashboard
type DashboardHandler struct {
	leadService *service.LeadService
	logger      *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(leadService *service.LeadService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// GetStats returns lead totals, weekly intake, and pipeline counts
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leadService.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
