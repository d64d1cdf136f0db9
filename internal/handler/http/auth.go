package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/music-auth/internal/app"
	"github.com/MKhiriev/music-auth/internal/logger"
	"github.com/MKhiriev/music-auth/internal/utils"
	"github.com/MKhiriev/music-auth/models"
)

// signup handles POST /auth/signup with a JSON body
// {email, password, name, profile_name}.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// signin handles POST /auth/signin with form-encoded "username" (the email)
// and "password".
func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		utils.WriteError(w, app.MsgInvalidForm, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Signin(r.Context(), models.SigninRequest{
		Email:    r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// spotifyRegister handles POST /auth/spotify/register. The Spotify access
// token is taken from the JSON body field "spotify_token" or, when absent,
// from an "Authorization: Bearer" header.
func (h *Handler) spotifyRegister(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.FederatedRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token := req.SpotifyToken
	if token == "" {
		token, _ = utils.ParseBearerToken(r.Header.Get("Authorization"))
	}

	resp, err := h.services.AuthService.FederatedRegister(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
