package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-campus-blog/models"
)

// Field name constants accepted by AuthValidator.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
)

const (
	MinPasswordLength = 8
	// MaxPasswordBytes is the longest input bcrypt hashes without truncation.
	MaxPasswordBytes = 72
	MaxNameLength    = 100
)

// AuthValidator checks the request bodies of the account endpoints.
// Emails are compared in lowercase and must belong to the configured
// college domain.
type AuthValidator struct {
	emailPattern *regexp.Regexp
}

func NewAuthValidator(emailDomain string) Validator {
	domain := regexp.QuoteMeta(strings.ToLower(strings.TrimPrefix(emailDomain, "@")))
	return &AuthValidator{
		emailPattern: regexp.MustCompile(`^[a-z0-9_\-.]+@` + domain + `$`),
	}
}

// Validate supports models.SignupRequest, models.LoginRequest,
// models.EmailRequest and models.ResetPasswordRequest, as values or
// pointers.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.EmailRequest:
		return validateEmailPresent(value.Email)
	case *models.EmailRequest:
		return validateEmailPresent(value.Email)

	case models.ResetPasswordRequest:
		return v.validatePasswordPair(value.Password, value.PasswordConfirm)
	case *models.ResetPasswordRequest:
		return v.validatePasswordPair(value.Password, value.PasswordConfirm)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldPasswordConfirm}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(req.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldEmail:
			if err := v.validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		case FieldPasswordConfirm:
			if req.Password != req.PasswordConfirm {
				return ErrPasswordsDoNotMatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only checks presence; a wrong domain simply finds no user.
func (v *AuthValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmailPresent(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmailPresent is used for lookups by address, where an unknown
// or foreign address must surface as a missing user.
func validateEmailPresent(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidEmail
	}
	return nil
}

func (v *AuthValidator) validateEmail(email string) error {
	if !v.emailPattern.MatchString(strings.ToLower(strings.TrimSpace(email))) {
		return ErrInvalidEmail
	}
	return nil
}

func (v *AuthValidator) validatePasswordPair(password, confirm string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return ErrPasswordsDoNotMatch
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}
