package http

import (
	"time"

	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/service"
)

type Handler struct {
	services *service.Services

	// production hides internal error text and marks the session cookie
	// Secure.
	production     bool
	cookieDuration time.Duration
	requestTimeout time.Duration
	limiter        *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		production:     cfg.App.IsProduction(),
		cookieDuration: cfg.Auth.CookieDuration,
		requestTimeout: cfg.Server.RequestTimeout,
		limiter:        newIPRateLimiter(cfg.Server.RateLimit),
		logger:         logger,
	}
}
