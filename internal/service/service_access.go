package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/store"
	"github.com/MKhiriev/go-campus-blog/models"
)

// OwnerLookup returns the id of the user owning resourceID. It returns
// ErrResourceNotFound when the resource does not exist.
type OwnerLookup func(ctx context.Context, resourceID string) (string, error)

type accessService struct {
	owners map[models.ResourceKind]OwnerLookup

	logger *logger.Logger
}

// NewAccessService registers an owner lookup for every owned resource kind.
func NewAccessService(blogRepository store.BlogRepository, logger *logger.Logger) AccessService {
	return &accessService{
		owners: map[models.ResourceKind]OwnerLookup{
			models.KindBlog: blogOwner(blogRepository),
		},
		logger: logger,
	}
}

func blogOwner(blogRepository store.BlogRepository) OwnerLookup {
	return func(ctx context.Context, blogID string) (string, error) {
		ownerID, err := blogRepository.FindOwnerID(ctx, blogID)
		if errors.Is(err, store.ErrBlogNotFound) {
			return "", ErrResourceNotFound
		}
		return ownerID, err
	}
}

func (s *accessService) RequireAdmin(ctx context.Context, user models.User) error {
	if !user.Role.IsAdmin {
		logger.FromContext(ctx).Warn().Str("user_id", user.ID).Msg("non-admin tried an admin route")
		return ErrForbidden
	}
	return nil
}

// AuthorizeOwner allows only the owner of the resource. Admins get no
// exception.
func (s *accessService) AuthorizeOwner(ctx context.Context, kind models.ResourceKind, resourceID string, user models.User) error {
	lookup, ok := s.owners[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownResourceKind, kind)
	}

	ownerID, err := lookup(ctx, resourceID)
	if err != nil {
		if !errors.Is(err, ErrResourceNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*accessService.AuthorizeOwner").Msg("owner lookup failed")
		}
		return err
	}

	if ownerID != user.ID {
		logger.FromContext(ctx).Warn().
			Str("user_id", user.ID).
			Str("resource_kind", string(kind)).
			Str("resource_id", resourceID).
			Msg("access to a resource of another user denied")
		return ErrForbidden
	}

	return nil
}
