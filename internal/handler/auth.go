package handler

import (
	"errors"
	"net/http"

	"github.com/c0d3g3n/codegen-api/internal/payload"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	_, token, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}

		h.logger.Error().Err(err).Msg("failed to register user")
		writeError(w, http.StatusInternalServerError, "something went wrong")

		return
	}

	writeJSON(w, http.StatusCreated, payload.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}

		h.logger.Error().Err(err).Msg("failed to log in user")
		writeError(w, http.StatusInternalServerError, "something went wrong")

		return
	}

	writeJSON(w, http.StatusOK, payload.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
