package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/music-auth/internal/config"
	myGRPC "github.com/MKhiriev/music-auth/internal/handler/grpc"
	"github.com/MKhiriev/music-auth/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	return &grpcServer{
		server:          handler.NewServer(),
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("Launching GRPC server")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight RPCs and falls back to a hard stop when ctx
// expires first.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}
