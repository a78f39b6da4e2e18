package usecase

import (
	"context"
	"fmt"

	"github.com/c0d3g3n/codegen-api/internal/converter"
	"github.com/c0d3g3n/codegen-api/internal/model"
	"github.com/c0d3g3n/codegen-api/internal/repository"
)

// ConversionUsecase defines the business logic for code conversion.
type ConversionUsecase interface {
	Convert(ctx context.Context, userID int64, params ConvertParams) (*model.Conversion, error)
	History(ctx context.Context, userID int64) ([]model.Conversion, error)
}

// ConvertParams defines the parameters for a conversion call.
type ConvertParams struct {
	LegacyCode     string
	SourceLanguage string
	TargetLanguage string
}

type conversionUsecase struct {
	conversionRepo repository.ConversionRepository
	converter      converter.Converter
}

// NewConversionUsecase creates a new ConversionUsecase.
func NewConversionUsecase(
	conversionRepo repository.ConversionRepository,
	conv converter.Converter,
) ConversionUsecase {
	return &conversionUsecase{
		conversionRepo: conversionRepo,
		converter:      conv,
	}
}

func (u *conversionUsecase) Convert(
	ctx context.Context,
	userID int64,
	params ConvertParams,
) (*model.Conversion, error) {
	modernCode, err := u.converter.Convert(ctx, params.LegacyCode, params.SourceLanguage, params.TargetLanguage)
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	conversion, err := u.conversionRepo.Create(ctx, &model.Conversion{
		UserID:         userID,
		LegacyCode:     params.LegacyCode,
		SourceLanguage: params.SourceLanguage,
		TargetLanguage: params.TargetLanguage,
		ModernCode:     modernCode,
	})
	if err != nil {
		return nil, err
	}

	return conversion, nil
}

func (u *conversionUsecase) History(ctx context.Context, userID int64) ([]model.Conversion, error) {
	return u.conversionRepo.ListByUser(ctx, userID)
}
