package grpc

import (
	"context"

	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/metrics"
	"github.com/MKhiriev/music-auth/internal/service"
	"github.com/MKhiriev/music-auth/models"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler.
//
// It implements [AuthServiceServer] by delegating to the service layer and
// translating service errors into gRPC status codes. A handler instance is
// created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// metrics is optional; nil disables the metrics interceptor.
	metrics *metrics.Metrics

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// optional metrics and logger.
func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}

// NewServer returns a *grpc.Server with the interceptor chain installed and
// AuthService registered. opts are applied before the interceptors.
func (h *Handler) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{h.withRecovery, h.withTraceID, h.withLogging}
	if h.metrics != nil {
		interceptors = append(interceptors, h.withMetrics)
	}

	opts = append(opts, grpc.ChainUnaryInterceptor(interceptors...))
	s := grpc.NewServer(opts...)
	RegisterAuthServiceServer(s, h)

	return s
}

func (h *Handler) Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error) {
	resp, err := h.services.AuthService.Signup(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (h *Handler) Signin(ctx context.Context, req *models.SigninRequest) (*models.AccessTokenResponse, error) {
	resp, err := h.services.AuthService.Signin(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func (h *Handler) FederatedRegister(ctx context.Context, req *models.FederatedRegisterRequest) (*models.FederatedRegisterResponse, error) {
	resp, err := h.services.AuthService.FederatedRegister(ctx, req.SpotifyToken)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}
