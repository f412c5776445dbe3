package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-campus-blog/models"
)

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Name:            "Asha Krishnan",
		Email:           "asha_b210001cs@nitc.ac.in",
		Password:        "correct-horse",
		PasswordConfirm: "correct-horse",
	}
}

func TestNewAuthValidator(t *testing.T) {
	require.NotNil(t, NewAuthValidator("nitc.ac.in"))
}

func TestAuthValidator_Signup(t *testing.T) {
	v := NewAuthValidator("nitc.ac.in")

	tests := []struct {
		name    string
		mutate  func(*models.SignupRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.SignupRequest) {}},
		{name: "uppercase email accepted", mutate: func(r *models.SignupRequest) { r.Email = "Asha_B210001CS@NITC.AC.IN" }},
		{name: "empty name", mutate: func(r *models.SignupRequest) { r.Name = "  " }, wantErr: ErrEmptyName},
		{name: "long name", mutate: func(r *models.SignupRequest) { r.Name = strings.Repeat("a", MaxNameLength+1) }, wantErr: ErrNameTooLong},
		{name: "foreign domain", mutate: func(r *models.SignupRequest) { r.Email = "asha@gmail.com" }, wantErr: ErrInvalidEmail},
		{name: "lookalike domain", mutate: func(r *models.SignupRequest) { r.Email = "asha@nitcXac.in" }, wantErr: ErrInvalidEmail},
		{name: "subdomain suffix", mutate: func(r *models.SignupRequest) { r.Email = "asha@nitc.ac.in.evil.com" }, wantErr: ErrInvalidEmail},
		{name: "missing local part", mutate: func(r *models.SignupRequest) { r.Email = "@nitc.ac.in" }, wantErr: ErrInvalidEmail},
		{name: "empty password", mutate: func(r *models.SignupRequest) { r.Password, r.PasswordConfirm = "", "" }, wantErr: ErrEmptyPassword},
		{name: "short password", mutate: func(r *models.SignupRequest) { r.Password, r.PasswordConfirm = "short", "short" }, wantErr: ErrPasswordTooShort},
		{
			name: "password over bcrypt limit",
			mutate: func(r *models.SignupRequest) {
				r.Password = strings.Repeat("p", MaxPasswordBytes+1)
				r.PasswordConfirm = r.Password
			},
			wantErr: ErrPasswordTooLong,
		},
		{name: "confirm mismatch", mutate: func(r *models.SignupRequest) { r.PasswordConfirm = "correct-horsf" }, wantErr: ErrPasswordsDoNotMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(context.Background(), &req), tt.wantErr)
		})
	}
}

func TestAuthValidator_SignupFieldScoping(t *testing.T) {
	v := NewAuthValidator("nitc.ac.in")
	req := validSignup()
	req.Email = "nope"

	assert.NoError(t, v.Validate(context.Background(), req, FieldName, FieldPassword))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldEmail), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "nickname"), ErrUnknownField)
}

func TestAuthValidator_Login(t *testing.T) {
	v := NewAuthValidator("nitc.ac.in")

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@nitc.ac.in", Password: "x"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Password: "x"}), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.LoginRequest{Email: "a@nitc.ac.in"}), ErrEmptyPassword)
}

func TestAuthValidator_EmailRequest(t *testing.T) {
	v := NewAuthValidator("@nitc.ac.in")

	assert.NoError(t, v.Validate(context.Background(), models.EmailRequest{Email: " a.b-c@nitc.ac.in "}))
	assert.NoError(t, v.Validate(context.Background(), &models.EmailRequest{Email: "a@iitm.ac.in"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.EmailRequest{Email: "  "}), ErrInvalidEmail)
}

func TestAuthValidator_ResetPassword(t *testing.T) {
	v := NewAuthValidator("nitc.ac.in")

	assert.NoError(t, v.Validate(context.Background(), models.ResetPasswordRequest{Password: "new-password", PasswordConfirm: "new-password"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.ResetPasswordRequest{Password: "new-password", PasswordConfirm: "other-password"}), ErrPasswordsDoNotMatch)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.ResetPasswordRequest{Password: "tiny", PasswordConfirm: "tiny"}), ErrPasswordTooShort)
}

func TestAuthValidator_UnsupportedType(t *testing.T) {
	v := NewAuthValidator("nitc.ac.in")
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
