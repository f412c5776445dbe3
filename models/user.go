package models

import "time"

// User represents an account of the blogging platform.
// Credential and token fields carry the `json:"-"` tag and never leave the
// server.
type User struct {
	// ID is a UUIDv7 string assigned at signup.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is stored lowercase and is unique across all users.
	Email string `json:"email"`

	Photo string `json:"photo"`
	Bio   string `json:"bio"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// IsVerified becomes true once the signup token has been confirmed.
	IsVerified bool `json:"isVerified"`

	Role Role `json:"role"`

	// PasswordChangedAt is set when a password reset completes. Session
	// tokens issued before it are rejected.
	PasswordChangedAt *time.Time `json:"-"`

	SignupToken        *string    `json:"-"`
	SignupTokenExpires *time.Time `json:"-"`

	PasswordResetToken   *string    `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`

	// Active is false for soft-deleted users. Inactive users are not
	// returned by any lookup.
	Active bool `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Role describes moderation rights.
type Role struct {
	IsAdmin bool `json:"isAdmin"`

	// AdminBranch limits moderation to one branch. "all" means no limit.
	AdminBranch   string `json:"adminBranch,omitempty"`
	AdminSemester string `json:"adminSemester,omitempty"`
}

// DefaultUserPhoto is assigned to users who have not uploaded a photo.
const DefaultUserPhoto = "default.jpg"

// AdminBranchAll lets an admin review blogs of every branch and semester.
const AdminBranchAll = "all"

// PasswordChangedAfter reports whether the password changed after the
// session token issued at iat was created. Comparison is done in whole
// seconds, which is the precision of JWT time claims.
func (u User) PasswordChangedAfter(iat time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return iat.Unix() < u.PasswordChangedAt.Unix()
}

// Public returns the projection sent back to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Photo:     u.Photo,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicUser is a User without password, role, verification state or any
// token field.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Photo     string    `json:"photo"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfileUpdate holds the only user fields a user may change on their own.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Photo *string `json:"photo,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Photo == nil && p.Bio == nil
}
