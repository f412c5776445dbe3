package service

import (
	"context"

	"github.com/MKhiriev/go-campus-blog/internal/validators"
	"github.com/MKhiriev/go-campus-blog/models"
)

// AuthValidationService rejects malformed account requests before they
// reach the wrapped AuthService. Rejections are [ValidationError]s.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(emailDomain string) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(emailDomain),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, req models.SignupRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}
	return v.inner.Signup(ctx, req)
}

func (v *AuthValidationService) ResendSignupToken(ctx context.Context, req models.EmailRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}
	return v.inner.ResendSignupToken(ctx, req)
}

func (v *AuthValidationService) ConfirmSignup(ctx context.Context, rawToken string) error {
	return v.inner.ConfirmSignup(ctx, rawToken)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, newValidationError(err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) ForgotPassword(ctx context.Context, req models.EmailRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}
	return v.inner.ForgotPassword(ctx, req)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, rawToken string, req models.ResetPasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return newValidationError(err)
	}
	return v.inner.ResetPassword(ctx, rawToken, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
