package handler

import (
	"net/http"

	"github.com/c0d3g3n/codegen-api/internal/payload"
)

func (h *Handler) Healthcheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, payload.MessageResponse{Message: "API is working correctly!"})
}
