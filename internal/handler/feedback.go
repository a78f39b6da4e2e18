package handler

import (
	"net/http"

	"github.com/c0d3g3n/codegen-api/internal/payload"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
)

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req payload.FeedbackRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.feedbackUsecase.Submit(r.Context(), userID, usecase.FeedbackParams{
		OriginalCode:  req.OriginalCode,
		ConvertedCode: req.ConvertedCode,
		Rating:        req.Rating,
		Comments:      req.Comments,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to save feedback")
		writeError(w, http.StatusInternalServerError, "something went wrong")

		return
	}

	writeJSON(w, http.StatusCreated, payload.MessageResponse{Message: "feedback saved successfully"})
}
