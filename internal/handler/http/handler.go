package http

import (
	"time"

	"github.com/MKhiriev/music-auth/internal/config"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/metrics"
	"github.com/MKhiriev/music-auth/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics is optional; nil disables the metrics middleware and endpoint.
	metrics *metrics.Metrics

	corsAllowedOrigins []string
	requestTimeout     time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		metrics:            m,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		requestTimeout:     cfg.RequestTimeout,
		logger:             logger,
	}
}
