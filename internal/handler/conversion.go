package handler

import (
	"net/http"

	"github.com/c0d3g3n/codegen-api/internal/model"
	"github.com/c0d3g3n/codegen-api/internal/payload"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
)

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req payload.ConvertRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	conversion, err := h.conversionUsecase.Convert(r.Context(), userID, usecase.ConvertParams{
		LegacyCode:     req.LegacyCode,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to convert code")
		writeError(w, http.StatusInternalServerError, "conversion failed")

		return
	}

	writeJSON(w, http.StatusOK, payload.ConvertResponse{ModernCode: conversion.ModernCode})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	conversions, err := h.conversionUsecase.History(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list conversion history")
		writeError(w, http.StatusInternalServerError, "something went wrong")

		return
	}

	if conversions == nil {
		conversions = []model.Conversion{}
	}

	writeJSON(w, http.StatusOK, payload.HistoryResponse{History: conversions})
}
