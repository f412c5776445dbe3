package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user and returns the stored row.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Photo == "" {
		user.Photo = models.DefaultUserPhoto
	}

	stmt := r.db.builder.Insert(usersTable).
		Columns("id", "name", "email", "photo", "bio", "password_hash", "is_verified",
			"is_admin", "admin_branch", "admin_semester", "active").
		Values(user.ID, user.Name, user.Email, user.Photo, user.Bio, user.PasswordHash, user.IsVerified,
			user.Role.IsAdmin, user.Role.AdminBranch, user.Role.AdminSemester, true).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	var created models.User
	err := r.db.queryRow(ctx, stmt, func(row rowScanner) (scanErr error) {
		created, scanErr = scanUser(row)
		return scanErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "FindUserByID", sq.Eq{"id": userID})
}

// FindUserByEmail expects email to be lowercased by the caller.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "FindUserByEmail", sq.Eq{"email": email})
}

func (r *userRepository) FindUserBySignupToken(ctx context.Context, digest string, now time.Time) (models.User, error) {
	return r.findOne(ctx, "FindUserBySignupToken", sq.And{
		sq.Eq{"signup_token": digest},
		sq.Gt{"signup_token_expires": now.UTC()},
	})
}

func (r *userRepository) FindUserByPasswordResetToken(ctx context.Context, digest string, now time.Time) (models.User, error) {
	return r.findOne(ctx, "FindUserByPasswordResetToken", sq.And{
		sq.Eq{"password_reset_token": digest},
		sq.Gt{"password_reset_expires": now.UTC()},
	})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, error) {
	stmt := r.db.builder.Select(userColumns...).
		From(usersTable).
		Where(where).
		Where(sq.Eq{"active": true})

	var user models.User
	err := r.db.queryRow(ctx, stmt, func(row rowScanner) (scanErr error) {
		user, scanErr = scanUser(row)
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository."+funcName).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) SetSignupToken(ctx context.Context, userID, digest string, expiresAt time.Time) error {
	return r.updateUser(ctx, "SetSignupToken", r.db.builder.Update(usersTable).
		Set("signup_token", digest).
		Set("signup_token_expires", expiresAt.UTC()).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID, "active": true}))
}

func (r *userRepository) ClearSignupToken(ctx context.Context, userID string) error {
	return r.updateUser(ctx, "ClearSignupToken", r.db.builder.Update(usersTable).
		Set("signup_token", nil).
		Set("signup_token_expires", nil).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID}))
}

func (r *userRepository) SetPasswordResetToken(ctx context.Context, userID, digest string, expiresAt time.Time) error {
	return r.updateUser(ctx, "SetPasswordResetToken", r.db.builder.Update(usersTable).
		Set("password_reset_token", digest).
		Set("password_reset_expires", expiresAt.UTC()).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID, "active": true}))
}

func (r *userRepository) ClearPasswordResetToken(ctx context.Context, userID string) error {
	return r.updateUser(ctx, "ClearPasswordResetToken", r.db.builder.Update(usersTable).
		Set("password_reset_token", nil).
		Set("password_reset_expires", nil).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID}))
}

// MarkVerified returns [ErrPendingTokenMismatch] when the signup token was
// consumed, replaced or expired after it was looked up.
func (r *userRepository) MarkVerified(ctx context.Context, userID, digest string, now time.Time) error {
	err := r.updateUser(ctx, "MarkVerified", r.db.builder.Update(usersTable).
		Set("is_verified", true).
		Set("signup_token", nil).
		Set("signup_token_expires", nil).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID, "signup_token": digest, "active": true}).
		Where(sq.Gt{"signup_token_expires": now.UTC()}))
	if errors.Is(err, ErrNoUserWasFound) {
		return ErrPendingTokenMismatch
	}
	return err
}

// ResetPassword returns [ErrPendingTokenMismatch] when the reset token was
// consumed, replaced or expired after it was looked up.
func (r *userRepository) ResetPassword(ctx context.Context, userID, digest, passwordHash string, changedAt time.Time) error {
	err := r.updateUser(ctx, "ResetPassword", r.db.builder.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("password_changed_at", changedAt.UTC()).
		Set("password_reset_token", nil).
		Set("password_reset_expires", nil).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID, "password_reset_token": digest, "active": true}).
		Where(sq.Gt{"password_reset_expires": changedAt.UTC()}))
	if errors.Is(err, ErrNoUserWasFound) {
		return ErrPendingTokenMismatch
	}
	return err
}

// UpdateProfile writes only name, photo and bio.
func (r *userRepository) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	if update.IsEmpty() {
		return r.FindUserByID(ctx, userID)
	}

	stmt := r.db.builder.Update(usersTable)
	if update.Name != nil {
		stmt = stmt.Set("name", *update.Name)
	}
	if update.Photo != nil {
		stmt = stmt.Set("photo", *update.Photo)
	}
	if update.Bio != nil {
		stmt = stmt.Set("bio", *update.Bio)
	}
	stmt = stmt.Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID, "active": true}).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	var user models.User
	err := r.db.queryRow(ctx, stmt, func(row rowScanner) (scanErr error) {
		user, scanErr = scanUser(row)
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// Deactivate soft-deletes the user. The row stays, but no lookup returns it.
func (r *userRepository) Deactivate(ctx context.Context, userID string) error {
	return r.updateUser(ctx, "Deactivate", r.db.builder.Update(usersTable).
		Set("active", false).
		Set("updated_at", currentTimestamp).
		Where(sq.Eq{"id": userID, "active": true}))
}

func (r *userRepository) PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)
	now = now.UTC()

	signups, err := r.db.exec(ctx, r.db.builder.Update(usersTable).
		Set("signup_token", nil).
		Set("signup_token_expires", nil).
		Where(sq.LtOrEq{"signup_token_expires": now}))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.PurgeExpiredTokens").Msg("error purging signup tokens")
		return 0, err
	}

	resets, err := r.db.exec(ctx, r.db.builder.Update(usersTable).
		Set("password_reset_token", nil).
		Set("password_reset_expires", nil).
		Where(sq.LtOrEq{"password_reset_expires": now}))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.PurgeExpiredTokens").Msg("error purging reset tokens")
		return signups, err
	}

	return signups + resets, nil
}

// updateUser executes stmt and reports [ErrNoUserWasFound] when no row
// matched.
func (r *userRepository) updateUser(ctx context.Context, funcName string, stmt sq.UpdateBuilder) error {
	affected, err := r.db.exec(ctx, stmt)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository."+funcName).Msg("error updating user")
		return err
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}
