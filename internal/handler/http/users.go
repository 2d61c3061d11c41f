package http

import (
	"encoding/json"
	"net/http"

	"github.com/gduarte/cadastro-api/internal/logger"
	"github.com/gduarte/cadastro-api/internal/utils"
	"github.com/gduarte/cadastro-api/models"
	"github.com/go-chi/chi/v5"
)

const usersListedMessage = "Usuários listados com sucesso"

func (h *Handler) listPublicUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListPublicUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing public users failed")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.PublicUsersResponse{
		Message: usersListedMessage,
		Users:   users,
	}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		h.writeError(w, err)
		return
	}

	// Full records including stored hashes — see the exposure note on models.User.
	utils.WriteJSON(w, models.UsersResponse{
		Message: usersListedMessage,
		Users:   users,
	}, http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	user, err := h.services.UserService.GetUserByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user lookup failed")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// Only a non-empty check; the id shape is deliberately not validated.
	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error().Msg("empty user id in update request")
		utils.WriteJSON(w, models.ErrorResponse{Message: "ID inválido"}, http.StatusBadRequest)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, id, req)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user update failed")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UpdateUserResponse{
		Message:     "Usuário atualizado com sucesso",
		UpdatedUser: updatedUser,
	}, http.StatusOK)
}
