package http

import (
	"net/http"

	"github.com/MKhiriev/music-auth/internal/app"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and on success stores the token's
// subject in the request context under [utils.UserIDCtxKey].
//
// Requests without a header, with a malformed header, or with an expired or
// invalid token are rejected with 401 and a WWW-Authenticate challenge.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, app.MsgCouldNotValidateCredentials, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "Bearer <token>".
//
// It returns [ErrEmptyAuthorizationHeader] for an empty value and
// [ErrInvalidAuthorizationHeader] for anything else that is not a bearer
// credential.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
