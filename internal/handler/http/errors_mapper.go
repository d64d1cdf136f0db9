package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/music-auth/internal/app"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/service"
	"github.com/MKhiriev/music-auth/internal/utils"
)

// httpError is the status and client-facing detail of a service error.
type httpError struct {
	status int
	detail string
}

var errorStatusMap = map[error]httpError{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrDuplicateAccount:        {http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
	service.ErrInvalidCredentials:      {http.StatusBadRequest, app.MsgInvalidCredentials},
	service.ErrMissingCredential:       {http.StatusBadRequest, app.MsgMissingSpotifyToken},
	service.ErrExternalIdentity:        {http.StatusBadGateway, app.MsgSpotifyIdentityUnavailable},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	service.ErrUserNotFound:            {http.StatusNotFound, app.MsgUserNotFound},
}

var internalError = httpError{http.StatusInternalServerError, app.MsgInternalServerError}

func statusFromError(err error) httpError {
	for target, he := range errorStatusMap {
		if errors.Is(err, target) {
			return he
		}
	}
	return internalError
}

// writeServiceError maps err to a {"detail": ...} response. Unmapped errors
// are logged and reported as 500 without leaking their text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	he := statusFromError(err)
	log := logger.FromRequest(r)
	if he.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Info().Str("reason", err.Error()).Int("status", he.status).Msg("request rejected")
	}

	utils.WriteError(w, he.detail, he.status)
}
