// Package converter translates legacy code into a modern target language via
// an external text-generation service.
package converter

import "context"

// Converter is the external collaborator performing the actual translation.
// The service treats it as a black box.
type Converter interface {
	Convert(ctx context.Context, legacyCode, sourceLang, targetLang string) (string, error)
}
