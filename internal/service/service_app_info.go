package service

import (
	"context"

	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService reporting info. Missing fields
// are reported as "N/A".
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: models.NewAppBuildInfo(info.Version, info.Date, info.Commit),
		logger:    logger,
	}
}

func (s *appInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return s.buildInfo
}
