package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("mail api rejected the message")
	ErrUnauthorized        = errors.New("mail api unauthorized")
	ErrRateLimited         = errors.New("mail api rate limit exceeded")
	ErrInternalServerError = errors.New("mail api internal error")
	ErrRenderingTemplate   = errors.New("error rendering email template")
)
