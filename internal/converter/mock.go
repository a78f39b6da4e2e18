package converter

import (
	"context"
	"fmt"
)

// MockConverter returns a canned translation. It backs development setups
// without an API key and is the Converter used in tests.
type MockConverter struct{}

// NewMockConverter creates a MockConverter.
func NewMockConverter() *MockConverter {
	return &MockConverter{}
}

func (c *MockConverter) Convert(_ context.Context, legacyCode, sourceLang, targetLang string) (string, error) {
	return fmt.Sprintf("// converted from %s to %s\n%s", sourceLang, targetLang, legacyCode), nil
}
