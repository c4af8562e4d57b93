package engagement

import "context"

// Service forwards public site forms to the studio inbox. Nothing is
// persisted, delivery is the whole operation.
type Service interface {
	SubscribeNewsletter(ctx context.Context, req NewsletterRequest) error
	RequestConsultation(ctx context.Context, req ConsultationRequest) error
}
