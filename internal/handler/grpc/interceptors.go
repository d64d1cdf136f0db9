package grpc

import (
	"context"
	"path"
	"time"

	"github.com/MKhiriev/music-auth/internal/app"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// traceIDKey is the metadata counterpart of the HTTP X-Trace-ID header.
	traceIDKey = "x-trace-id"

	maxTraceIDLength = 128
)

func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Str("method", info.FullMethod).Interface("panic", r).Msg("gRPC handler panicked")
			err = status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()
	return handler(ctx, req)
}

// withTraceID attaches a child logger carrying the caller's trace id (or a
// fresh one) to ctx and echoes the id back in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(traceIDKey); len(v) > 0 {
			traceID = v[0]
		}
	}
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))
	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	h.metrics.GRPCRequestsTotal.WithLabelValues(path.Base(info.FullMethod), status.Code(err).String()).Inc()
	return resp, err
}
