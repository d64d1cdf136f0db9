package grpc

import (
	"errors"

	"github.com/MKhiriev/music-auth/internal/app"
	"github.com/MKhiriev/music-auth/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type grpcError struct {
	code    codes.Code
	message string
}

var errorCodeMap = map[error]grpcError{
	service.ErrInvalidDataProvided:     {codes.InvalidArgument, app.MsgInvalidDataProvided},
	service.ErrDuplicateAccount:        {codes.AlreadyExists, app.MsgEmailAlreadyRegistered},
	service.ErrInvalidCredentials:      {codes.Unauthenticated, app.MsgInvalidCredentials},
	service.ErrMissingCredential:       {codes.InvalidArgument, app.MsgMissingSpotifyToken},
	service.ErrExternalIdentity:        {codes.Unavailable, app.MsgSpotifyIdentityUnavailable},
	service.ErrTokenIsExpiredOrInvalid: {codes.Unauthenticated, app.MsgCouldNotValidateCredentials},
	service.ErrUserNotFound:            {codes.NotFound, app.MsgUserNotFound},
}

// toStatus converts a service error into a gRPC status error. Unmapped
// errors become Internal without their text.
func toStatus(err error) error {
	for target, ge := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(ge.code, ge.message)
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}
