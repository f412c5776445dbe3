package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-campus-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their pending tokens.
//
// Every lookup ignores inactive (soft-deleted) users. Token lookups take the
// digest, never the raw token, and only match while the expiry lies after now.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserBySignupToken(ctx context.Context, digest string, now time.Time) (models.User, error)
	FindUserByPasswordResetToken(ctx context.Context, digest string, now time.Time) (models.User, error)

	SetSignupToken(ctx context.Context, userID, digest string, expiresAt time.Time) error
	ClearSignupToken(ctx context.Context, userID string) error
	SetPasswordResetToken(ctx context.Context, userID, digest string, expiresAt time.Time) error
	ClearPasswordResetToken(ctx context.Context, userID string) error

	// MarkVerified flips is_verified and clears the signup token pair in one
	// statement, provided the stored digest still equals digest and has not
	// expired at now.
	MarkVerified(ctx context.Context, userID, digest string, now time.Time) error
	// ResetPassword stores the new hash and password_changed_at and clears
	// the reset token pair in one statement, provided the stored digest
	// still equals digest and has not expired at changedAt.
	ResetPassword(ctx context.Context, userID, digest, passwordHash string, changedAt time.Time) error

	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
	Deactivate(ctx context.Context, userID string) error

	// PurgeExpiredTokens clears every token pair whose expiry is not after now
	// and returns the number of touched users.
	PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

// BlogRepository persists blog posts and likes.
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	FindBlogByID(ctx context.Context, blogID string) (models.Blog, error)
	FindBlogBySlug(ctx context.Context, slug string) (models.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, update models.BlogUpdate) (models.Blog, error)
	DeleteBlog(ctx context.Context, blogID string) error
	SearchBlogs(ctx context.Context, query models.BlogQuery) (models.BlogPage, error)
	RandomBlogs(ctx context.Context, n int) ([]models.Blog, error)
	MarkReviewed(ctx context.Context, blogID string) error

	// FindOwnerID returns the id of the user who owns the blog.
	FindOwnerID(ctx context.Context, blogID string) (string, error)

	// ToggleLike removes the user's like if present and adds it otherwise.
	// It returns the resulting list of user ids.
	ToggleLike(ctx context.Context, blogID, userID string) ([]string, error)
	FindLikes(ctx context.Context, blogID string) ([]string, error)
}
