package service

import (
	"context"

	"github.com/MKhiriev/go-campus-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,BlogServiceWrapper,UserServiceWrapper

// AuthService owns the account lifecycle: signup and its confirmation,
// login, password reset and session tokens.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	ResendSignupToken(ctx context.Context, req models.EmailRequest) error
	ConfirmSignup(ctx context.Context, rawToken string) error
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	ForgotPassword(ctx context.Context, req models.EmailRequest) error
	ResetPassword(ctx context.Context, rawToken string, req models.ResetPasswordRequest) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves the user behind a session token. Tokens issued
	// before the user's last password change are rejected.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// AccessService answers authorization questions about an authenticated
// user.
type AccessService interface {
	RequireAdmin(ctx context.Context, user models.User) error
	AuthorizeOwner(ctx context.Context, kind models.ResourceKind, resourceID string, user models.User) error
}

type BlogService interface {
	Create(ctx context.Context, authorID string, input models.BlogInput) (models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (models.Blog, error)
	Update(ctx context.Context, blogID string, update models.BlogUpdate) (models.Blog, error)
	Delete(ctx context.Context, blogID string) error
	Search(ctx context.Context, query models.BlogQuery) (models.BlogPage, error)
	Latest(ctx context.Context) ([]models.Blog, error)
	Random(ctx context.Context) ([]models.Blog, error)
	Likes(ctx context.Context, blogID string) ([]string, error)
	ToggleLike(ctx context.Context, blogID, userID string) ([]string, error)
	Unreviewed(ctx context.Context, admin models.User, page int) (models.BlogPage, error)
	Review(ctx context.Context, blogID string) error
}

type UserService interface {
	Profile(ctx context.Context, userID string, page int) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error)
	Deactivate(ctx context.Context, userID string) error
}

// AppInfoService reports what binary is serving requests.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type BlogServiceWrapper interface {
	Wrap(BlogService) BlogService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
