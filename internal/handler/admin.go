package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/c0d3g3n/codegen-api/internal/payload"
	"github.com/c0d3g3n/codegen-api/internal/repository"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
)

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.adminUsecase.DeleteUser(r.Context(), callerID, targetID); err != nil {
		h.writeAdminError(w, err, "failed to delete user")
		return
	}

	writeJSON(w, http.StatusOK, payload.MessageResponse{Message: "user deleted"})
}

func (h *Handler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	callerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req payload.SetAdminRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.adminUsecase.SetAdmin(r.Context(), callerID, targetID, *req.IsAdmin); err != nil {
		h.writeAdminError(w, err, "failed to set admin flag")
		return
	}

	writeJSON(w, http.StatusOK, payload.MessageResponse{Message: "admin flag updated"})
}

func (h *Handler) writeAdminError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}
