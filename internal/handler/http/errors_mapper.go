package http

import (
	"errors"
	"net/http"

	"github.com/gduarte/cadastro-api/internal/service"
	"github.com/gduarte/cadastro-api/internal/store"
	"github.com/gduarte/cadastro-api/internal/utils"
	"github.com/gduarte/cadastro-api/models"
)

// errorStatusMap is the single classification layer between internal errors
// and HTTP status codes. Handlers never pick status codes themselves; they
// hand any error to writeError.
//
// store.ErrEmailAlreadyExists maps to 500 on purpose: the deployed API has
// no dedicated duplicate-key handling and surfaces the condition as a
// generic server error. The sentinel exists so logs stay precise.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing messages for well-known errors.
// Messages are in Portuguese, matching the deployed API; anything not
// listed collapses into the generic server-error message.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "Dados inválidos",
	service.ErrWrongPassword:       "Senha inválida",
	store.ErrNoUserWasFound:        "Usuário não encontrado",
}

const genericServerErrorMessage = "Erro no servidor"

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return genericServerErrorMessage
}

// writeError maps err to a status code and client-facing message and writes
// the error envelope. Diagnostic detail stays in the server-side logs only.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Message: messageFromError(err)}, statusFromError(err))
}
