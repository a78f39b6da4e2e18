package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/c0d3g3n/codegen-api/internal/auth"
	"github.com/c0d3g3n/codegen-api/internal/config"
	"github.com/c0d3g3n/codegen-api/internal/converter"
	"github.com/c0d3g3n/codegen-api/internal/database"
	"github.com/c0d3g3n/codegen-api/internal/handler"
	"github.com/c0d3g3n/codegen-api/internal/mailer"
	"github.com/c0d3g3n/codegen-api/internal/repository"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
	"github.com/c0d3g3n/codegen-api/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply migrations")
	}

	smtpMailer, err := mailer.NewMailer()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure mailer")
	}

	conv, err := newConverter(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure converter")
	}

	validate, trans, err := validation.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure validator")
	}

	authority := auth.NewAuthority([]byte(cfg.JWTSecret), cfg.AccessTokenLifetime)

	userRepo := repository.NewUserPostgresRepository(db)
	conversionRepo := repository.NewConversionPostgresRepository(db)
	feedbackRepo := repository.NewFeedbackPostgresRepository(db)
	resetTokenRepo := repository.NewPasswordResetTokenPostgresRepository(db)

	go purgeExpiredResetTokens(ctx, resetTokenRepo, &logger)

	h := handler.New(
		usecase.NewAuthUsecase(userRepo, authority),
		usecase.NewPasswordResetUsecase(
			userRepo, resetTokenRepo, authority, smtpMailer,
			&logger, cfg.ResetTokenLifetime, cfg.PasswordResetBaseURL,
		),
		usecase.NewConversionUsecase(conversionRepo, conv),
		usecase.NewFeedbackUsecase(feedbackRepo),
		usecase.NewAdminUsecase(userRepo),
		authority,
		validate,
		trans,
		&logger,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler.NewRouter(h, &logger, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Port).Msg("starting server")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down gracefully")
	}
}

// purgeExpiredResetTokens periodically removes expired password reset token
// records so the table does not grow without bound.
func purgeExpiredResetTokens(
	ctx context.Context,
	repo repository.PasswordResetTokenRepository,
	logger *zerolog.Logger,
) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := repo.DeleteExpired(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("failed to purge expired reset tokens")
			} else if count > 0 {
				logger.Info().Int64("count", count).Msg("purged expired reset tokens")
			}
		}
	}
}

func newConverter(cfg *config.Config) (converter.Converter, error) {
	switch cfg.ConverterProvider {
	case "mock":
		return converter.NewMockConverter(), nil
	case "openai":
		return converter.NewOpenAIConverter()
	default:
		return nil, fmt.Errorf("unknown converter provider: %q", cfg.ConverterProvider)
	}
}
