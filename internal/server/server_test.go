package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/music-auth/internal/adapter"
	"github.com/MKhiriev/music-auth/internal/config"
	"github.com/MKhiriev/music-auth/internal/handler"
	myGRPC "github.com/MKhiriev/music-auth/internal/handler/grpc"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/service"
	"github.com/MKhiriev/music-auth/internal/store"
	"github.com/MKhiriev/music-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	log := logger.Nop()
	storages := &store.Storages{UserRepository: store.NewMemoryUserRepository(log)}
	services := service.NewServices(storages, adapter.NewSimulatedResolver(), config.StructuredConfig{
		App: config.App{TokenSignKey: "test-key", TokenIssuer: "music-auth", TokenDuration: time.Minute, BcryptCost: 4},
	}, nil, log)

	handlers, err := handler.NewHandlers(services, nil, cfg, log)
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_BusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, s)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	httpAddr := srv.httpServer.listener.Addr().String()
	grpcAddr := srv.gRPCServer.gRPCNetListener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	resp, err := http.Get("http://" + httpAddr + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	reg, err := myGRPC.NewAuthServiceClient(conn).FederatedRegister(context.Background(), &models.FederatedRegisterRequest{SpotifyToken: "sp"})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.UserToken)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + httpAddr + "/healthz")
	assert.Error(t, err)
}
