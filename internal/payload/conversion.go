package payload

import "github.com/c0d3g3n/codegen-api/internal/model"

type ConvertRequest struct {
	LegacyCode     string `json:"legacy_code"     validate:"required"`
	SourceLanguage string `json:"source_language" validate:"required"`
	TargetLanguage string `json:"target_language" validate:"required"`
}

type ConvertResponse struct {
	ModernCode string `json:"modern_code"`
}

type HistoryResponse struct {
	History []model.Conversion `json:"history"`
}
