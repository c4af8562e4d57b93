package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/engagement"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, templateID string, params map[string]string) error {
	args := m.Called(ctx, templateID, params)
	return args.Error(0)
}

const contactTemplate = "template_p9yk90t"

func TestSubscribeNewsletter_ComposesFullName(t *testing.T) {
	sender := new(MockSender)
	svc := NewEngagementService(sender, contactTemplate)

	sender.On("Send", mock.Anything, contactTemplate, mock.MatchedBy(func(params map[string]string) bool {
		return params["from_name"] == "Ada Obi" && params["subscription_type"] == "Newsletter"
	})).Return(nil)

	err := svc.SubscribeNewsletter(context.Background(), engagement.NewsletterRequest{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada@example.com",
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestSubscribeNewsletter_MissingLastNameLeavesNoTrailingSpace(t *testing.T) {
	sender := new(MockSender)
	svc := NewEngagementService(sender, contactTemplate)

	sender.On("Send", mock.Anything, contactTemplate, mock.MatchedBy(func(params map[string]string) bool {
		return params["from_name"] == "Ada"
	})).Return(nil)

	err := svc.SubscribeNewsletter(context.Background(), engagement.NewsletterRequest{
		FirstName: "Ada",
		Email:     "ada@example.com",
	})

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestRequestConsultation_DeliveryFailure(t *testing.T) {
	sender := new(MockSender)
	svc := NewEngagementService(sender, contactTemplate)

	sender.On("Send", mock.Anything, contactTemplate, mock.Anything).
		Return(errors.New("email service down"))

	err := svc.RequestConsultation(context.Background(), engagement.ConsultationRequest{
		Name:    "Ada Obi",
		Email:   "ada@example.com",
		Message: "Portrait session inquiry",
	})

	assert.ErrorIs(t, err, engagement.ErrDeliveryFailed)
}
