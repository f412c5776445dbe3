package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-campus-blog/models"
)

const (
	usersTable     = "users"
	blogsTable     = "blogs"
	blogLikesTable = "blog_likes"
)

// userColumns is the column order expected by scanUser.
var userColumns = []string{
	"id", "name", "email", "photo", "bio", "password_hash", "is_verified",
	"is_admin", "admin_branch", "admin_semester", "password_changed_at",
	"signup_token", "signup_token_expires",
	"password_reset_token", "password_reset_expires",
	"active", "created_at", "updated_at",
}

// blogColumns is the column order expected by scanBlog.
var blogColumns = []string{
	"id", "user_id", "title", "slug", "description", "featured_image",
	"branch", "semester", "subject", "tags", "content", "draft", "reviewed",
	"created_at", "updated_at",
}

// currentTimestamp is understood by both PostgreSQL and SQLite.
var currentTimestamp = sq.Expr("CURRENT_TIMESTAMP")

// likesCount is the popularity of a blog, used by the "popular" sort.
const likesCount = "(SELECT COUNT(*) FROM blog_likes WHERE blog_likes.blog_id = blogs.id)"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var changedAt, signupExpires, resetExpires sql.NullTime
	var signupToken, resetToken sql.NullString

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Photo, &user.Bio, &user.PasswordHash, &user.IsVerified,
		&user.Role.IsAdmin, &user.Role.AdminBranch, &user.Role.AdminSemester, &changedAt,
		&signupToken, &signupExpires,
		&resetToken, &resetExpires,
		&user.Active, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.PasswordChangedAt = nullTime(changedAt)
	user.SignupToken = nullString(signupToken)
	user.SignupTokenExpires = nullTime(signupExpires)
	user.PasswordResetToken = nullString(resetToken)
	user.PasswordResetExpires = nullTime(resetExpires)

	return user, nil
}

func scanBlog(row rowScanner) (models.Blog, error) {
	var (
		blog models.Blog
		tags string
	)

	err := row.Scan(
		&blog.ID, &blog.UserID, &blog.Title, &blog.Slug, &blog.Description, &blog.FeaturedImage,
		&blog.Branch, &blog.Semester, &blog.Subject, &tags, &blog.Content, &blog.Draft, &blog.Reviewed,
		&blog.CreatedAt, &blog.UpdatedAt,
	)
	if err != nil {
		return models.Blog{}, err
	}

	if blog.Tags, err = decodeTags(tags); err != nil {
		return models.Blog{}, err
	}

	return blog, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// encodeTags stores tags as a JSON array so both dialects can hold them in
// a TEXT column.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("error encoding tags: %w", err)
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("error decoding tags: %w", err)
	}
	return tags, nil
}
