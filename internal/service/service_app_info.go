package service

import (
	"context"

	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/models"
)

const unknownBuildValue = "N/A"

type appInfoService struct {
	build models.BuildInfo
}

// NewAppInfoService captures the build metadata from cfg once at startup.
// Missing date or commit are reported as "N/A"; a missing version is an
// error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	build := models.BuildInfo{
		Version: cfg.Version,
		Date:    orUnknown(cfg.BuildDate),
		Commit:  orUnknown(cfg.BuildCommit),
	}
	logger.Info().
		Str("version", build.Version).
		Str("build_date", build.Date).
		Str("build_commit", build.Commit).
		Msg("serving build")

	return &appInfoService{build: build}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.build
}

func orUnknown(value string) string {
	if value == "" {
		return unknownBuildValue
	}
	return value
}
