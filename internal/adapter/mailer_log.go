package adapter

import (
	"context"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/models"
)

// logMailer records that an email would have been sent. Links carry raw
// tokens and are left out of the log.
type logMailer struct {
	logger *logger.Logger
}

func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendSignupConfirmation(ctx context.Context, user models.User, _ string) error {
	m.logger.Info().Str("user_id", user.ID).Str("subject", signupSubject).Msg("email delivery skipped")
	return nil
}

func (m *logMailer) SendPasswordReset(ctx context.Context, user models.User, _ string) error {
	m.logger.Info().Str("user_id", user.ID).Str("subject", resetSubject).Msg("email delivery skipped")
	return nil
}
