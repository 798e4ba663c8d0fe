package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/mapper"
	"github.com/mjdigitalmedia/agency-api/internal/notify"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LeadService struct {
	leadRepo   *repository.LeadRepository
	dispatcher *notify.Dispatcher
	adminEmail string
	logger     *zap.Logger
}

func NewLeadService(
	leadRepo *repository.LeadRepository,
	dispatcher *notify.Dispatcher,
	adminEmail string,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		leadRepo:   leadRepo,
		dispatcher: dispatcher,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// Create stores a new lead and notifies the admin inbox. Notification is
// best-effort: the lead is persisted even when every provider fails.
func (s *LeadService) Create(ctx context.Context, req *domain.CreateLeadRequest) (*domain.LeadDTO, error) {
	lead := &domain.Lead{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		ProjectType:  domain.ProjectType(req.ProjectType),
		BudgetRange:  domain.BudgetRange(req.BudgetRange),
		Timeline:     domain.Timeline(req.Timeline),
		Features:     req.Features,
		Requirements: req.Requirements,
		Status:       domain.LeadStatus(req.Status),
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.notifyAdmin(ctx, req)

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

func (s *LeadService) notifyAdmin(ctx context.Context, req *domain.CreateLeadRequest) {
	if !s.dispatcher.Configured() {
		return
	}
	msg := notify.NewLeadMessage(s.adminEmail, &domain.LeadNotificationRequest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		ProjectType:  req.ProjectType,
		BudgetRange:  req.BudgetRange,
		Timeline:     req.Timeline,
		Features:     req.Features,
		Requirements: req.Requirements,
	})
	if _, err := s.dispatcher.Dispatch(ctx, msg); err != nil {
		s.logger.Warn("lead stored but admin notification failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
	}
}

func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeadDTO, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

func (s *LeadService) List(ctx context.Context) ([]domain.LeadDTO, error) {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return mapper.ToLeadDTOs(leads), nil
}

// Update applies a partial patch; absent fields keep their stored value
func (s *LeadService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateLeadRequest) (*domain.LeadDTO, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	if req.Name != nil {
		lead.Name = *req.Name
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Company != nil {
		lead.Company = *req.Company
	}
	if req.ProjectType != nil {
		lead.ProjectType = domain.ProjectType(*req.ProjectType)
	}
	if req.BudgetRange != nil {
		lead.BudgetRange = domain.BudgetRange(*req.BudgetRange)
	}
	if req.Timeline != nil {
		lead.Timeline = domain.Timeline(*req.Timeline)
	}
	if req.Features != nil {
		lead.Features = *req.Features
	}
	if req.Requirements != nil {
		lead.Requirements = *req.Requirements
	}
	if req.Status != nil {
		lead.Status = domain.LeadStatus(*req.Status)
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

// Delete removes a lead. Deleting an unknown id returns ErrNotFound.
func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.leadRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("lead deleted", zap.String("lead_id", id.String()))
	return nil
}

// Stats returns the dashboard counters as of now
func (s *LeadService) Stats(ctx context.Context) (*domain.LeadStats, error) {
	stats, err := s.leadRepo.Stats(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to compute lead stats: %w", err)
	}
	return stats, nil
}
