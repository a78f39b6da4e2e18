// Package handler exposes the HTTP surface of the conversion service.
package handler

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/c0d3g3n/codegen-api/internal/auth"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
)

// Handler bundles the usecases behind the HTTP endpoints.
type Handler struct {
	authUsecase          usecase.AuthUsecase
	passwordResetUsecase usecase.PasswordResetUsecase
	conversionUsecase    usecase.ConversionUsecase
	feedbackUsecase      usecase.FeedbackUsecase
	adminUsecase         usecase.AdminUsecase
	authority            *auth.Authority
	validate             *validator.Validate
	trans                ut.Translator
	logger               *zerolog.Logger
}

// New creates a Handler.
func New(
	authUsecase usecase.AuthUsecase,
	passwordResetUsecase usecase.PasswordResetUsecase,
	conversionUsecase usecase.ConversionUsecase,
	feedbackUsecase usecase.FeedbackUsecase,
	adminUsecase usecase.AdminUsecase,
	authority *auth.Authority,
	validate *validator.Validate,
	trans ut.Translator,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		authUsecase:          authUsecase,
		passwordResetUsecase: passwordResetUsecase,
		conversionUsecase:    conversionUsecase,
		feedbackUsecase:      feedbackUsecase,
		adminUsecase:         adminUsecase,
		authority:            authority,
		validate:             validate,
		trans:                trans,
		logger:               logger,
	}
}
