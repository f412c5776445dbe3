package service

import (
	"github.com/MKhiriev/go-campus-blog/internal/adapter"
	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccessService  AccessService
	BlogService    BlogService
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices builds every service with its validation wrapper applied.
func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthValidationService(cfg.App.EmailDomain).
			Wrap(NewAuthService(storages.UserRepository, mailer, cfg, logger)),
		AccessService: NewAccessService(storages.BlogRepository, logger),
		BlogService: NewBlogValidationService().
			Wrap(NewBlogService(storages.BlogRepository, logger)),
		UserService: NewUserValidationService().
			Wrap(NewUserService(storages.UserRepository, storages.BlogRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
