package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-campus-blog/internal/mock"
	"github.com/MKhiriev/go-campus-blog/internal/validators"
	"github.com/MKhiriev/go-campus-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService_Signup(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SignupRequest
		wantErr error
	}{
		{
			name:    "foreign domain",
			req:     models.SignupRequest{Name: "Bob", Email: "bob@gmail.com", Password: "Secret123", PasswordConfirm: "Secret123"},
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:    "short password",
			req:     models.SignupRequest{Name: "Bob", Email: "bob@nitc.ac.in", Password: "short", PasswordConfirm: "short"},
			wantErr: validators.ErrPasswordTooShort,
		},
		{
			name:    "confirmation mismatch",
			req:     models.SignupRequest{Name: "Bob", Email: "bob@nitc.ac.in", Password: "Secret123", PasswordConfirm: "Secret124"},
			wantErr: validators.ErrPasswordsDoNotMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewAuthValidationService("nitc.ac.in").Wrap(mock.NewMockAuthService(ctrl))

			err := svc.Signup(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantErr.Error(), validationErr.Error())
		})
	}
}

func TestAuthValidationService_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService("nitc.ac.in").Wrap(inner)
	ctx := context.Background()

	signup := models.SignupRequest{Name: "Bob", Email: "bob_b190001cs@nitc.ac.in", Password: "Secret123", PasswordConfirm: "Secret123"}
	inner.EXPECT().Signup(ctx, signup).Return(nil)
	inner.EXPECT().ConfirmSignup(ctx, "raw").Return(ErrInvalidOrExpiredToken)

	require.NoError(t, svc.Signup(ctx, signup))
	assert.ErrorIs(t, svc.ConfirmSignup(ctx, "raw"), ErrInvalidOrExpiredToken)
}

func TestAuthValidationService_ResetPasswordMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewAuthValidationService("nitc.ac.in").Wrap(mock.NewMockAuthService(ctrl))

	err := svc.ResetPassword(context.Background(), "raw", models.ResetPasswordRequest{Password: "Secret123", PasswordConfirm: "Secret12"})
	assert.ErrorIs(t, err, validators.ErrPasswordsDoNotMatch)
}

func TestAuthValidationService_EmailLookupsAcceptForeignAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService("nitc.ac.in").Wrap(inner)
	ctx := context.Background()

	req := models.EmailRequest{Email: "bob@gmail.com"}
	inner.EXPECT().ForgotPassword(ctx, req).Return(ErrUserNotFound)
	inner.EXPECT().ResendSignupToken(ctx, req).Return(ErrUserNotFound)

	assert.ErrorIs(t, svc.ForgotPassword(ctx, req), ErrUserNotFound)
	assert.ErrorIs(t, svc.ResendSignupToken(ctx, req), ErrUserNotFound)

	err := svc.ForgotPassword(ctx, models.EmailRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}
