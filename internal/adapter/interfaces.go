// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the blog server.
//
// The primary abstraction is [Mailer], which decouples the auth service from
// the email provider. The package ships an HTTP implementation that talks to
// a JSON mail API ([NewHTTPMailer]) and a logging implementation used when no
// provider is configured ([NewLogMailer]).
//
// Non-2xx responses of the mail API are mapped by mapHTTPError to the
// sentinel values in errors.go so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-campus-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers account emails. Every link it receives already contains
// the raw pending token; implementations must not log it.
type Mailer interface {
	// SendSignupConfirmation mails the link that confirms a new account.
	SendSignupConfirmation(ctx context.Context, user models.User, confirmURL string) error

	// SendPasswordReset mails the link that lets the user set a new password.
	SendPasswordReset(ctx context.Context, user models.User, resetURL string) error
}
