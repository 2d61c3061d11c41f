package http

import (
	"encoding/json"
	"net/http"

	"github.com/gduarte/cadastro-api/internal/logger"
	"github.com/gduarte/cadastro-api/internal/utils"
	"github.com/gduarte/cadastro-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.writeError(w, err)
		return
	}

	log.Debug().Str("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user registered")

	// Full record including the stored hash — see the exposure note on models.User.
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.User
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.writeError(w, err)
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, err)
		return
	}

	// The body is the bare token as a JSON string.
	utils.WriteJSON(w, token.SignedString, http.StatusOK)
}
