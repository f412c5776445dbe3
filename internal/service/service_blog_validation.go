package service

import (
	"context"

	"github.com/MKhiriev/go-campus-blog/internal/validators"
	"github.com/MKhiriev/go-campus-blog/models"
)

// BlogValidationService checks post content before it reaches the wrapped
// BlogService.
type BlogValidationService struct {
	inner     BlogService
	validator validators.Validator
}

func NewBlogValidationService() BlogServiceWrapper {
	return &BlogValidationService{
		validator: validators.NewContentValidator(),
	}
}

func (v *BlogValidationService) Create(ctx context.Context, authorID string, input models.BlogInput) (models.Blog, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Blog{}, newValidationError(err)
	}
	return v.inner.Create(ctx, authorID, input)
}

func (v *BlogValidationService) GetBySlug(ctx context.Context, slug string) (models.Blog, error) {
	return v.inner.GetBySlug(ctx, slug)
}

func (v *BlogValidationService) Update(ctx context.Context, blogID string, update models.BlogUpdate) (models.Blog, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Blog{}, newValidationError(err)
	}
	return v.inner.Update(ctx, blogID, update)
}

func (v *BlogValidationService) Delete(ctx context.Context, blogID string) error {
	return v.inner.Delete(ctx, blogID)
}

func (v *BlogValidationService) Search(ctx context.Context, query models.BlogQuery) (models.BlogPage, error) {
	return v.inner.Search(ctx, query)
}

func (v *BlogValidationService) Latest(ctx context.Context) ([]models.Blog, error) {
	return v.inner.Latest(ctx)
}

func (v *BlogValidationService) Random(ctx context.Context) ([]models.Blog, error) {
	return v.inner.Random(ctx)
}

func (v *BlogValidationService) Likes(ctx context.Context, blogID string) ([]string, error) {
	return v.inner.Likes(ctx, blogID)
}

func (v *BlogValidationService) ToggleLike(ctx context.Context, blogID, userID string) ([]string, error) {
	return v.inner.ToggleLike(ctx, blogID, userID)
}

func (v *BlogValidationService) Unreviewed(ctx context.Context, admin models.User, page int) (models.BlogPage, error) {
	return v.inner.Unreviewed(ctx, admin, page)
}

func (v *BlogValidationService) Review(ctx context.Context, blogID string) error {
	return v.inner.Review(ctx, blogID)
}

func (v *BlogValidationService) Wrap(wrapped BlogService) BlogService {
	v.inner = wrapped
	return v
}
