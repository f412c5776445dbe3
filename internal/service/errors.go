package service

import "errors"

// Operational errors. Each one maps to a fixed HTTP status and a message
// that is safe to show to clients.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrDuplicateUser         = errors.New("user already exists")
	ErrUserNotFound          = errors.New("there is no user with this email address")
	ErrResourceNotFound      = errors.New("no document found with that id")
	ErrAlreadyVerified       = errors.New("account is already verified")
	ErrNotVerified           = errors.New("account is not verified")
	ErrIncorrectPassword     = errors.New("incorrect password")
	ErrInvalidOrExpiredToken = errors.New("token is invalid or has expired")
	ErrEmailDeliveryFailed   = errors.New("there was an error sending the email")
	ErrUnauthenticated       = errors.New("you are not logged in")
	ErrInvalidToken          = errors.New("invalid session token")
	ErrUserNoLongerExists    = errors.New("the user belonging to this token no longer exists")
	ErrStalePasswordChange   = errors.New("user recently changed password")
	ErrForbidden             = errors.New("you do not have permission to perform this action")
	ErrDuplicateTitle        = errors.New("a blog with this title already exists")
)

// Programming and infrastructure errors.
var (
	ErrTokenCreationFailed   = errors.New("session token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrUnknownResourceKind   = errors.New("unknown resource kind")
)

// ValidationError reports rejected input. It matches both
// ErrInvalidDataProvided and the underlying validator error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidDataProvided, e.Err}
}

func newValidationError(err error) error {
	return &ValidationError{Err: err}
}
