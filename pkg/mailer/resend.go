package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wonder-rides/pkg/utils"

	"go.uber.org/zap"
)

const defaultAPI = "https://api.resend.com/emails"

// Mailer sends transactional email. Delivery is best effort everywhere
// it is used; callers log failures and move on.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

type Resend struct {
	apiKey string
	from   string
	api    string
	client *http.Client
	log    *zap.Logger
}

func NewResend(cfg utils.EmailConfig, log *zap.Logger) *Resend {
	return &Resend{
		apiKey: cfg.APIKey,
		from:   cfg.From,
		api:    defaultAPI,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With(zap.String("client", "resend")),
	}
}

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send delivers one email through the Resend HTTP API. When no API key
// is configured (dev/test) the message is logged instead of sent.
func (m *Resend) Send(ctx context.Context, to, subject, html string) error {
	if m.apiKey == "" {
		m.log.Warn("Missing RESEND_API_KEY, skipping email delivery",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	payload := resendEmail{
		From:    m.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.api, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email via Resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend API error: %s", resp.Status)
	}

	m.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
