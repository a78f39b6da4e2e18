package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c0d3g3n/codegen-api/internal/converter"
	"github.com/c0d3g3n/codegen-api/internal/usecase"
)

type failingConverter struct{}

func (failingConverter) Convert(context.Context, string, string, string) (string, error) {
	return "", errors.New("model unavailable")
}

func TestConversionUsecase_ConvertPersistsHistory(t *testing.T) {
	ctx := context.Background()
	repo := &fakeConversionRepo{}
	u := usecase.NewConversionUsecase(repo, converter.NewMockConverter())

	conversion, err := u.Convert(ctx, 1, usecase.ConvertParams{
		LegacyCode:     "DISPLAY 'Hello, World!'",
		SourceLanguage: "COBOL",
		TargetLanguage: "Python",
	})
	require.NoError(t, err)
	assert.Contains(t, conversion.ModernCode, "DISPLAY 'Hello, World!'")

	history, err := u.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "COBOL", history[0].SourceLanguage)
	assert.Equal(t, conversion.ModernCode, history[0].ModernCode)

	// History is scoped to the caller.
	other, err := u.History(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestConversionUsecase_ConverterFailureNotPersisted(t *testing.T) {
	ctx := context.Background()
	repo := &fakeConversionRepo{}
	u := usecase.NewConversionUsecase(repo, failingConverter{})

	_, err := u.Convert(ctx, 1, usecase.ConvertParams{
		LegacyCode:     "MOVE 5 TO X.",
		SourceLanguage: "COBOL",
		TargetLanguage: "Python",
	})
	require.Error(t, err)

	history, err := u.History(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestFeedbackUsecase_Submit(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFeedbackRepo{}
	u := usecase.NewFeedbackUsecase(repo)

	saved, err := u.Submit(ctx, 1, usecase.FeedbackParams{
		OriginalCode:  "MOVE 5 TO X.",
		ConvertedCode: "x = 5",
		Rating:        5,
		Comments:      "spot on",
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	entries, err := u.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Rating)
}
