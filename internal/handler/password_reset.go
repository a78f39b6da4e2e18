package handler

import (
	"errors"
	"net/http"

	"github.com/c0d3g3n/codegen-api/internal/auth"
	"github.com/c0d3g3n/codegen-api/internal/payload"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
)

func (h *Handler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req payload.PasswordResetRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.passwordResetUsecase.Request(r.Context(), req.Email); err != nil {
		h.logger.Error().Err(err).Msg("failed to request password reset")
		writeError(w, http.StatusInternalServerError, "something went wrong")

		return
	}

	// The response is identical whether or not the email exists.
	writeJSON(w, http.StatusOK, payload.MessageResponse{
		Message: "if the email is registered, a reset link has been sent",
	})
}

func (h *Handler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req payload.PasswordResetConfirmRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.passwordResetUsecase.Confirm(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrExpired):
			writeError(w, http.StatusUnauthorized, "password reset token has expired")
		case errors.Is(err, auth.ErrInvalidToken):
			writeError(w, http.StatusUnauthorized, "invalid password reset token")
		case errors.Is(err, usecase.ErrResetTokenNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, usecase.ErrResetTokenAlreadyUsed):
			writeError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error().Err(err).Msg("failed to reset password")
			writeError(w, http.StatusInternalServerError, "something went wrong")
		}

		return
	}

	writeJSON(w, http.StatusOK, payload.MessageResponse{Message: "password changed successfully"})
}
