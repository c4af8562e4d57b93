package service

import (
	"context"
	"strings"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/engagement"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/email"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

type engagementService struct {
	email             email.Sender
	contactTemplateID string
}

func NewEngagementService(sender email.Sender, contactTemplateID string) engagement.Service {
	return &engagementService{email: sender, contactTemplateID: contactTemplateID}
}

func (s *engagementService) SubscribeNewsletter(ctx context.Context, req engagement.NewsletterRequest) error {
	params := map[string]string{
		"from_name":         strings.TrimSpace(req.FirstName + " " + req.LastName),
		"from_email":        req.Email,
		"subscription_type": "Newsletter",
	}
	if err := s.email.Send(ctx, s.contactTemplateID, params); err != nil {
		logger.Error("newsletter signup delivery failed", err)
		return engagement.ErrDeliveryFailed
	}
	return nil
}

func (s *engagementService) RequestConsultation(ctx context.Context, req engagement.ConsultationRequest) error {
	params := map[string]string{
		"from_name":      req.Name,
		"from_email":     req.Email,
		"phone":          req.Phone,
		"preferred_date": req.PreferredDate,
		"message":        req.Message,
	}
	if err := s.email.Send(ctx, s.contactTemplateID, params); err != nil {
		logger.Error("consultation request delivery failed", err)
		return engagement.ErrDeliveryFailed
	}
	return nil
}
