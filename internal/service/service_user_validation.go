package service

import (
	"context"

	"github.com/MKhiriev/go-campus-blog/internal/validators"
	"github.com/MKhiriev/go-campus-blog/models"
)

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewContentValidator(),
	}
}

func (v *UserValidationService) Profile(ctx context.Context, userID string, page int) (models.Profile, error) {
	return v.inner.Profile(ctx, userID, page)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, newValidationError(err)
	}
	return v.inner.UpdateProfile(ctx, userID, update)
}

func (v *UserValidationService) Deactivate(ctx context.Context, userID string) error {
	return v.inner.Deactivate(ctx, userID)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
