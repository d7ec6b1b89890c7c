package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SendGridMailer sends transactional mail through the SendGrid REST API.
type SendGridMailer struct {
	APIKey     string
	FromEmail  string
	Endpoint   string
	HTTPClient *http.Client
}

func NewSendGridMailer(apiKey, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		APIKey:    strings.TrimSpace(apiKey),
		FromEmail: strings.TrimSpace(fromEmail),
		Endpoint:  "https://api.sendgrid.com/v3/mail/send",
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type personalization struct {
	To      []emailAddress `json:"to"`
	Subject string         `json:"subject"`
}

type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Content          []mailContent     `json:"content"`
}

// SendPasswordReset emails a reset link to the given address.
func (m *SendGridMailer) SendPasswordReset(ctx context.Context, toEmail, toName, resetLink string) error {
	if m == nil || m.APIKey == "" {
		return fmt.Errorf("sendgrid mailer not configured")
	}
	if m.FromEmail == "" {
		return fmt.Errorf("missing MAIL_FROM_EMAIL")
	}

	plain := fmt.Sprintf(
		"Hi %s,\n\nWe received a request to reset your CampusFound password.\n\nReset it here: %s\n\nIf you didn't request this, you can safely ignore this email. The link expires in one hour.\n",
		strings.TrimSpace(toName),
		resetLink,
	)

	reqBody := mailSendRequest{
		Personalizations: []personalization{
			{
				To:      []emailAddress{{Email: toEmail, Name: toName}},
				Subject: "Reset your CampusFound password",
			},
		},
		From: emailAddress{
			Email: m.FromEmail,
			Name:  "CampusFound",
		},
		Content: []mailContent{
			{Type: "text/plain", Value: plain},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid mail send http %d", resp.StatusCode)
	}

	return nil
}
