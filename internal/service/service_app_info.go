package service

import (
	"context"

	"github.com/MKhiriev/go-books-api/internal/config"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/store"
	"github.com/MKhiriev/go-books-api/models"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo
	pinger     store.Pinger

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version unless the binary was stamped with a
// build version at link time.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, pinger store.Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	version := s.buildInfo.VersionResponse()
	if version.Version == "" || version.Version == models.NotAvailable {
		version.Version = s.appVersion
	}

	return version
}

// Health is UP only when the store answers a ping.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	if s.pinger == nil {
		return models.HealthResponse{Status: StatusDown, Storage: StatusDown}
	}

	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("storage ping failed")
		return models.HealthResponse{Status: StatusDown, Storage: StatusDown}
	}

	return models.HealthResponse{Status: StatusUp, Storage: StatusUp}
}
