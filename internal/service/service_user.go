package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/store"
	"github.com/MKhiriev/go-campus-blog/models"
)

// ProfilePageSize is the number of own posts shown per profile page.
const ProfilePageSize = 5

type userService struct {
	userRepository store.UserRepository
	blogRepository store.BlogRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, blogRepository store.BlogRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		blogRepository: blogRepository,
		logger:         logger,
	}
}

// Profile returns the user together with one page of their posts, drafts
// and unreviewed posts included.
func (u *userService) Profile(ctx context.Context, userID string, page int) (models.Profile, error) {
	user, err := u.findUser(ctx, "Profile", userID)
	if err != nil {
		return models.Profile{}, err
	}

	blogs, err := u.blogRepository.SearchBlogs(ctx, models.BlogQuery{
		UserID: userID,
		Sort:   models.SortLatest,
		Page:   page,
		Limit:  ProfilePageSize,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Profile").Msg("own blogs search failed")
		return models.Profile{}, fmt.Errorf("own blogs search failed: %w", err)
	}

	return models.Profile{
		User:  user.Public(),
		Blogs: blogs.Blogs,
		Total: blogs.Total,
		Page:  blogs.Page,
	}, nil
}

// UpdateProfile changes name, photo and bio. Nothing else of the user can
// be changed this way.
func (u *userService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	user, err := u.userRepository.UpdateProfile(ctx, userID, models.ProfileUpdate{
		Name:  update.Name,
		Photo: update.Photo,
		Bio:   update.Bio,
	})
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNoLongerExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateProfile").Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}
	return user, nil
}

// Deactivate soft-deletes the user. Their session tokens stop working
// since inactive users are not found anymore.
func (u *userService) Deactivate(ctx context.Context, userID string) error {
	err := u.userRepository.Deactivate(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNoLongerExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Deactivate").Msg("user deactivation failed")
		return fmt.Errorf("user deactivation failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("user deactivated")
	return nil
}

func (u *userService) findUser(ctx context.Context, funcName, userID string) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNoLongerExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService."+funcName).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}
