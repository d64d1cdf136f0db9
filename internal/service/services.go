package service

import (
	"github.com/MKhiriev/music-auth/internal/adapter"
	"github.com/MKhiriev/music-auth/internal/config"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/metrics"
	"github.com/MKhiriev/music-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the service layer. When m is non-nil the auth service
// is wrapped with metrics recording.
func NewServices(storages *store.Storages, resolver adapter.IdentityResolver, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Services {
	var auth AuthService = NewAuthService(storages.UserRepository, resolver, cfg.App, logger)
	if m != nil {
		auth = NewAuthMetricsService(m).Wrap(auth)
	}

	return &Services{
		AuthService:    auth,
		AppInfoService: NewAppInfoService(cfg.App.Build, logger),
	}
}
