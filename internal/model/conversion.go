package model

import "time"

// Conversion records a single legacy-code translation performed for a user.
type Conversion struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	LegacyCode     string    `json:"legacy_code"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	ModernCode     string    `json:"modern_code"`
	CreatedAt      time.Time `json:"created_at"`
}
