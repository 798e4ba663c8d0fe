package service

import (
	"context"

	"github.com/mjdigitalmedia/agency-api/internal/domain"
	"github.com/mjdigitalmedia/agency-api/internal/notify"
	"go.uber.org/zap"
)

// InquiryService handles the notify-only form endpoints. Nothing is
// persisted; a submission either reaches the admin inbox or fails.
type InquiryService struct {
	dispatcher *notify.Dispatcher
	adminEmail string
	logger     *zap.Logger
}

func NewInquiryService(dispatcher *notify.Dispatcher, adminEmail string, logger *zap.Logger) *InquiryService {
	return &InquiryService{
		dispatcher: dispatcher,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// NotifyLead forwards a project-intake submission to the admin inbox
func (s *InquiryService) NotifyLead(ctx context.Context, req *domain.LeadNotificationRequest) (*domain.NotificationResultDTO, error) {
	msg := notify.NewLeadMessage(s.adminEmail, req)

	result, err := s.dispatcher.Dispatch(ctx, msg)
	if err != nil {
		s.logger.Error("lead notification undeliverable",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return nil, ErrNotificationFailed
	}

	return &domain.NotificationResultDTO{
		Message:  "Lead submitted successfully",
		Provider: result.Provider,
	}, nil
}

// NotifyContact forwards a contact-form submission to the admin inbox
func (s *InquiryService) NotifyContact(ctx context.Context, req *domain.ContactRequest) (*domain.NotificationResultDTO, error) {
	msg := notify.NewContactMessage(s.adminEmail, req)

	result, err := s.dispatcher.Dispatch(ctx, msg)
	if err != nil {
		s.logger.Error("contact notification undeliverable",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return nil, ErrNotificationFailed
	}

	return &domain.NotificationResultDTO{
		Message:  "Message sent successfully",
		Provider: result.Provider,
	}, nil
}
