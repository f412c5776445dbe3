package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/utils"
	"github.com/MKhiriev/go-campus-blog/models"
)

// sendPath is the endpoint of the mail API accepting one message per request.
const sendPath = "/emails"

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

type httpMailer struct {
	client *utils.HTTPClient

	apiKey string
	from   string

	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] posting messages to a JSON mail API.
// It normalises and validates the base URL from cfg.MailAPIAddress.
//
// Returns an error if cfg.MailAPIAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPMailer(cfg config.Adapter, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(cfg.MailAPIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid mail api address: %w", err)
	}

	return &httpMailer{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.MailAPIKey,
		from:   cfg.MailFrom,
		logger: logger,
	}, nil
}

// NewMailer picks the HTTP mailer when a mail API is configured and the
// logging mailer otherwise.
func NewMailer(cfg config.Adapter, logger *logger.Logger) (Mailer, error) {
	if strings.TrimSpace(cfg.MailAPIAddress) == "" {
		logger.Warn().Msg("no mail api configured, emails will only be logged")
		return NewLogMailer(logger), nil
	}
	return NewHTTPMailer(cfg, logger)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (m *httpMailer) SendSignupConfirmation(ctx context.Context, user models.User, confirmURL string) error {
	msg, err := signupTemplate.render(user.Name, confirmURL)
	if err != nil {
		return err
	}
	return m.send(ctx, user.Email, msg)
}

func (m *httpMailer) SendPasswordReset(ctx context.Context, user models.User, resetURL string) error {
	msg, err := resetTemplate.render(user.Name, resetURL)
	if err != nil {
		return err
	}
	return m.send(ctx, user.Email, msg)
}

func (m *httpMailer) send(ctx context.Context, to string, msg email) error {
	log := logger.FromContext(ctx)

	req := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sendRequest{
			From:    m.from,
			To:      []string{to},
			Subject: msg.Subject,
			Text:    msg.Text,
			HTML:    msg.HTML,
		})
	if m.apiKey != "" {
		req.SetAuthToken(m.apiKey)
	}

	resp, err := req.Post(sendPath)
	if err != nil {
		log.Err(err).Str("func", "*httpMailer.send").Msg("mail api request failed")
		return fmt.Errorf("send email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpMailer.send").Int("status", resp.StatusCode()).Msg("mail api returned an error")
		return err
	}

	log.Debug().Str("func", "*httpMailer.send").Str("subject", msg.Subject).Msg("email sent")
	return nil
}
