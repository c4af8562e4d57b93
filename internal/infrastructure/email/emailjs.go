package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/config"
)

// Sender dispatches a templated notification through the email collaborator.
type Sender interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}

// EmailJSClient talks to the EmailJS REST API
// (POST /api/v1.0/email/send), the same service the site frontend used.
type EmailJSClient struct {
	httpClient *http.Client
	baseURL    string
	serviceID  string
	publicKey  string
}

func NewEmailJSClient(cfg config.EmailConfig) *EmailJSClient {
	return &EmailJSClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.BaseURL,
		serviceID:  cfg.ServiceID,
		publicKey:  cfg.PublicKey,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *EmailJSClient) Send(ctx context.Context, templateID string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	url := c.baseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email service returned %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
