package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"marassi/models"
)

const defaultResendBaseURL = "https://api.resend.com"

// ResendMailer sends notification emails through the Resend HTTP API.
type ResendMailer struct {
	APIKey     string
	FromEmail  string
	AdminEmail string
	BaseURL    string
	Client     *http.Client
}

// NewResendMailer builds a ResendMailer with the production base URL and a
// bounded request timeout.
func NewResendMailer(apiKey, fromEmail, adminEmail string) *ResendMailer {
	return &ResendMailer{
		APIKey:     apiKey,
		FromEmail:  fromEmail,
		AdminEmail: adminEmail,
		BaseURL:    defaultResendBaseURL,
		Client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// emailPayload is the Resend /emails request body.
type emailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	ReplyTo string `json:"reply_to,omitempty"`
	HTML    string `json:"html"`
}

// SendContactNotification emails the admin about a new contact message.
func (m *ResendMailer) SendContactNotification(ctx context.Context, msg *models.ContactMessage) error {
	html, err := renderContactEmail(msg)
	if err != nil {
		return fmt.Errorf("ResendMailer: failed to render contact email: %w", err)
	}
	return m.send(ctx, emailPayload{
		From:    m.FromEmail,
		To:      m.AdminEmail,
		Subject: fmt.Sprintf("New Contact Form Message from %s", msg.Name),
		ReplyTo: msg.Email,
		HTML:    html,
	})
}

// SendDriverNotification emails the admin about a new driver registration.
func (m *ResendMailer) SendDriverNotification(ctx context.Context, reg *models.DriverRegistration) error {
	html, err := renderDriverEmail(reg)
	if err != nil {
		return fmt.Errorf("ResendMailer: failed to render driver email: %w", err)
	}
	return m.send(ctx, emailPayload{
		From:    m.FromEmail,
		To:      m.AdminEmail,
		Subject: fmt.Sprintf("New Driver Registration: %s", reg.FullName),
		ReplyTo: reg.Email,
		HTML:    html,
	})
}

func (m *ResendMailer) send(ctx context.Context, payload emailPayload) error {
	if m.APIKey == "" {
		return fmt.Errorf("ResendMailer: API key not configured; notification skipped")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("ResendMailer: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("ResendMailer: API returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
