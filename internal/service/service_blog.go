package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/store"
	"github.com/MKhiriev/go-campus-blog/internal/utils"
	"github.com/MKhiriev/go-campus-blog/models"
	"github.com/gosimple/slug"
)

// Page sizes of the blog listings.
const (
	SearchPageSize     = 16
	LatestCount        = 7
	RandomCount        = 4
	UnreviewedPageSize = 20
)

type blogService struct {
	blogRepository store.BlogRepository
	idGenerator    IDGenerator

	logger *logger.Logger
}

func NewBlogService(blogRepository store.BlogRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Create stores a new post owned by authorID. New posts always wait for
// review.
func (b *blogService) Create(ctx context.Context, authorID string, input models.BlogInput) (models.Blog, error) {
	title := strings.TrimSpace(input.Title)

	blog, err := b.blogRepository.CreateBlog(ctx, models.Blog{
		ID:            b.idGenerator.Generate(),
		UserID:        authorID,
		Title:         title,
		Slug:          slug.Make(title),
		Description:   input.Description,
		FeaturedImage: input.FeaturedImage,
		Branch:        input.Branch,
		Semester:      input.Semester,
		Subject:       input.Subject,
		Tags:          input.Tags,
		Content:       input.Content,
		Draft:         input.Draft,
	})
	if err != nil {
		return models.Blog{}, b.mapError(ctx, "Create", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", authorID).Str("blog_id", blog.ID).Msg("blog created")
	return blog, nil
}

func (b *blogService) GetBySlug(ctx context.Context, blogSlug string) (models.Blog, error) {
	blog, err := b.blogRepository.FindBlogBySlug(ctx, blogSlug)
	if err != nil {
		return models.Blog{}, b.mapError(ctx, "GetBySlug", err)
	}
	return blog, nil
}

// Update changes the editable fields of a post. The slug follows the title.
func (b *blogService) Update(ctx context.Context, blogID string, update models.BlogUpdate) (models.Blog, error) {
	update.Slug = nil
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		newSlug := slug.Make(title)
		update.Title = &title
		update.Slug = &newSlug
	}

	blog, err := b.blogRepository.UpdateBlog(ctx, blogID, update)
	if err != nil {
		return models.Blog{}, b.mapError(ctx, "Update", err)
	}
	return blog, nil
}

func (b *blogService) Delete(ctx context.Context, blogID string) error {
	if err := b.blogRepository.DeleteBlog(ctx, blogID); err != nil {
		return b.mapError(ctx, "Delete", err)
	}

	logger.FromContext(ctx).Info().Str("blog_id", blogID).Msg("blog deleted")
	return nil
}

// Search lists published posts. Paging and the published filter are
// enforced here whatever the caller passed.
func (b *blogService) Search(ctx context.Context, query models.BlogQuery) (models.BlogPage, error) {
	query.OnlyPublished = true
	query.OnlyUnreviewed = false
	query.UserID = ""
	query.Limit = SearchPageSize
	query.Search = strings.TrimSpace(query.Search)

	page, err := b.blogRepository.SearchBlogs(ctx, query)
	if err != nil {
		return models.BlogPage{}, b.mapError(ctx, "Search", err)
	}
	return page, nil
}

func (b *blogService) Latest(ctx context.Context) ([]models.Blog, error) {
	page, err := b.blogRepository.SearchBlogs(ctx, models.BlogQuery{
		Sort:          models.SortLatest,
		Page:          1,
		Limit:         LatestCount,
		OnlyPublished: true,
	})
	if err != nil {
		return nil, b.mapError(ctx, "Latest", err)
	}
	return page.Blogs, nil
}

func (b *blogService) Random(ctx context.Context) ([]models.Blog, error) {
	blogs, err := b.blogRepository.RandomBlogs(ctx, RandomCount)
	if err != nil {
		return nil, b.mapError(ctx, "Random", err)
	}
	return blogs, nil
}

func (b *blogService) Likes(ctx context.Context, blogID string) ([]string, error) {
	if _, err := b.blogRepository.FindBlogByID(ctx, blogID); err != nil {
		return nil, b.mapError(ctx, "Likes", err)
	}

	likes, err := b.blogRepository.FindLikes(ctx, blogID)
	if err != nil {
		return nil, b.mapError(ctx, "Likes", err)
	}
	return likes, nil
}

func (b *blogService) ToggleLike(ctx context.Context, blogID, userID string) ([]string, error) {
	likes, err := b.blogRepository.ToggleLike(ctx, blogID, userID)
	if err != nil {
		return nil, b.mapError(ctx, "ToggleLike", err)
	}
	return likes, nil
}

// Unreviewed lists posts waiting for review that fall under the admin's
// branch and semester. An admin of branch "all" sees every post.
func (b *blogService) Unreviewed(ctx context.Context, admin models.User, page int) (models.BlogPage, error) {
	query := models.BlogQuery{
		Sort:           models.SortOldest,
		Page:           page,
		Limit:          UnreviewedPageSize,
		OnlyUnreviewed: true,
	}
	if admin.Role.AdminBranch != models.AdminBranchAll {
		query.Branch = admin.Role.AdminBranch
		query.Semester = admin.Role.AdminSemester
	}

	result, err := b.blogRepository.SearchBlogs(ctx, query)
	if err != nil {
		return models.BlogPage{}, b.mapError(ctx, "Unreviewed", err)
	}
	return result, nil
}

func (b *blogService) Review(ctx context.Context, blogID string) error {
	if err := b.blogRepository.MarkReviewed(ctx, blogID); err != nil {
		return b.mapError(ctx, "Review", err)
	}

	logger.FromContext(ctx).Info().Str("blog_id", blogID).Msg("blog reviewed")
	return nil
}

func (b *blogService) mapError(ctx context.Context, funcName string, err error) error {
	switch {
	case errors.Is(err, store.ErrBlogNotFound):
		return ErrResourceNotFound
	case errors.Is(err, store.ErrTitleAlreadyExists):
		return ErrDuplicateTitle
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*blogService."+funcName).Msg("blog storage failed")
		return fmt.Errorf("blog storage failed: %w", err)
	}
}
