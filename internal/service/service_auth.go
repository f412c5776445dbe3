package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-campus-blog/internal/adapter"
	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/MKhiriev/go-campus-blog/internal/crypto"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/store"
	"github.com/MKhiriev/go-campus-blog/internal/utils"
	"github.com/MKhiriev/go-campus-blog/models"
)

// Link paths on the web client. The raw token is appended as the last
// path segment.
const (
	confirmSignupPath = "/auth/confirmSignup/"
	resetPasswordPath = "/auth/resetPassword/"
)

// authService is the concrete implementation of AuthService.
// All state is read-only after construction.
type authService struct {
	userRepository store.UserRepository
	mailer         adapter.Mailer

	passwordHasher crypto.PasswordHasher
	tokenGenerator crypto.TokenGenerator
	idGenerator    IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration  time.Duration
	signupTokenTTL time.Duration
	resetTokenTTL  time.Duration

	clientURL string

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repository and mailer and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, mailer adapter.Mailer, cfg config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		mailer:         mailer,
		passwordHasher: crypto.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		tokenGenerator: crypto.NewTokenGenerator(),
		idGenerator:    utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.Auth.TokenSignKey,
		tokenIssuer:    cfg.Auth.TokenIssuer,
		tokenDuration:  cfg.Auth.TokenDuration,
		signupTokenTTL: cfg.Auth.SignupTokenTTL,
		resetTokenTTL:  cfg.Auth.ResetTokenTTL,
		clientURL:      strings.TrimRight(cfg.App.ClientURL, "/"),
		now:            time.Now,
		logger:         logger,
	}
}

// Signup creates an unverified account and mails its confirmation link.
//
// Returns:
//   - ErrDuplicateUser if the email is already registered.
//   - ErrEmailDeliveryFailed if the email could not be sent. The account
//     stays, without a pending token, so ResendSignupToken can be used.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) error {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrDuplicateUser
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.Signup").Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.idGenerator.Generate(),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return ErrDuplicateUser
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	return a.sendSignupToken(ctx, user)
}

// ResendSignupToken replaces the pending signup token of an unverified
// user and mails the new link.
func (a *authService) ResendSignupToken(ctx context.Context, req models.EmailRequest) error {
	user, err := a.findByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	return a.sendSignupToken(ctx, user)
}

// ConfirmSignup verifies the account whose pending signup token matches
// rawToken. A token works once.
func (a *authService) ConfirmSignup(ctx context.Context, rawToken string) error {
	log := logger.FromContext(ctx)
	if rawToken == "" {
		return ErrInvalidOrExpiredToken
	}

	digest := a.tokenGenerator.Digest(rawToken)
	now := a.now()
	user, err := a.userRepository.FindUserBySignupToken(ctx, digest, now)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ConfirmSignup").Msg("user search by signup token failed")
		return fmt.Errorf("user search by signup token failed: %w", err)
	}

	err = a.userRepository.MarkVerified(ctx, user.ID, digest, now)
	if errors.Is(err, store.ErrPendingTokenMismatch) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ConfirmSignup").Msg("marking user verified failed")
		return fmt.Errorf("marking user verified failed: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user verified")
	return nil
}

// Login checks the credentials of a verified user and issues a session
// token. Verification is checked before the password, so an unverified
// account never reveals whether a password was right.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	user, err := a.findByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	if !user.IsVerified {
		return models.User{}, models.Token{}, ErrNotVerified
	}
	if !a.passwordHasher.Verify(req.Password, user.PasswordHash) {
		return models.User{}, models.Token{}, ErrIncorrectPassword
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ForgotPassword issues a password reset token for a verified user and
// mails the link.
func (a *authService) ForgotPassword(ctx context.Context, req models.EmailRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.findByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if !user.IsVerified {
		return ErrNotVerified
	}

	pending, err := a.tokenGenerator.Issue(a.now(), a.resetTokenTTL)
	if err != nil {
		return fmt.Errorf("reset token generation failed: %w", err)
	}
	if err = a.userRepository.SetPasswordResetToken(ctx, user.ID, pending.Digest, pending.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("storing reset token failed")
		return fmt.Errorf("storing reset token failed: %w", err)
	}

	if err = a.mailer.SendPasswordReset(ctx, user, a.clientURL+resetPasswordPath+pending.Raw); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Str("user_id", user.ID).Msg("reset email delivery failed")
		if clearErr := a.userRepository.ClearPasswordResetToken(ctx, user.ID); clearErr != nil {
			log.Err(clearErr).Str("func", "*authService.ForgotPassword").Msg("clearing reset token failed")
		}
		return fmt.Errorf("%w: %w", ErrEmailDeliveryFailed, err)
	}

	return nil
}

// ResetPassword sets a new password for the user whose pending reset token
// matches rawToken. Every session token issued before the reset stops
// working.
func (a *authService) ResetPassword(ctx context.Context, rawToken string, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)
	if rawToken == "" {
		return ErrInvalidOrExpiredToken
	}

	now := a.now()
	digest := a.tokenGenerator.Digest(rawToken)
	user, err := a.userRepository.FindUserByPasswordResetToken(ctx, digest, now)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("user search by reset token failed")
		return fmt.Errorf("user search by reset token failed: %w", err)
	}

	passwordHash, err := a.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	err = a.userRepository.ResetPassword(ctx, user.ID, digest, passwordHash, now)
	if errors.Is(err, store.ErrPendingTokenMismatch) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("storing new password failed")
		return fmt.Errorf("storing new password failed: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

// CreateToken issues a signed session token for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token.
//
// Any validation failure (expired, wrong issuer, wrong signing method,
// malformed) matches ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}

func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNoLongerExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Authenticate").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	issuedAt, err := token.IssuedAtTime()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if user.PasswordChangedAfter(issuedAt) {
		return models.User{}, ErrStalePasswordChange
	}

	return user, nil
}

// sendSignupToken stores a fresh signup token and mails its link. When
// delivery fails the token is cleared again.
func (a *authService) sendSignupToken(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	pending, err := a.tokenGenerator.Issue(a.now(), a.signupTokenTTL)
	if err != nil {
		return fmt.Errorf("signup token generation failed: %w", err)
	}
	if err = a.userRepository.SetSignupToken(ctx, user.ID, pending.Digest, pending.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*authService.sendSignupToken").Msg("storing signup token failed")
		return fmt.Errorf("storing signup token failed: %w", err)
	}

	if err = a.mailer.SendSignupConfirmation(ctx, user, a.clientURL+confirmSignupPath+pending.Raw); err != nil {
		log.Err(err).Str("func", "*authService.sendSignupToken").Str("user_id", user.ID).Msg("signup email delivery failed")
		if clearErr := a.userRepository.ClearSignupToken(ctx, user.ID); clearErr != nil {
			log.Err(clearErr).Str("func", "*authService.sendSignupToken").Msg("clearing signup token failed")
		}
		return fmt.Errorf("%w: %w", ErrEmailDeliveryFailed, err)
	}

	return nil
}

func (a *authService) findByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.findByEmail").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
