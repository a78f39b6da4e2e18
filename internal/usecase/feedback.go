package usecase

import (
	"context"

	"github.com/c0d3g3n/codegen-api/internal/model"
	"github.com/c0d3g3n/codegen-api/internal/repository"
)

// FeedbackUsecase defines the business logic for conversion feedback.
type FeedbackUsecase interface {
	Submit(ctx context.Context, userID int64, params FeedbackParams) (*model.Feedback, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Feedback, error)
}

// FeedbackParams defines the parameters for submitting feedback.
type FeedbackParams struct {
	OriginalCode  string
	ConvertedCode string
	Rating        int
	Comments      string
}

type feedbackUsecase struct {
	feedbackRepo repository.FeedbackRepository
}

// NewFeedbackUsecase creates a new FeedbackUsecase.
func NewFeedbackUsecase(feedbackRepo repository.FeedbackRepository) FeedbackUsecase {
	return &feedbackUsecase{feedbackRepo: feedbackRepo}
}

func (u *feedbackUsecase) Submit(
	ctx context.Context,
	userID int64,
	params FeedbackParams,
) (*model.Feedback, error) {
	return u.feedbackRepo.Create(ctx, &model.Feedback{
		UserID:        userID,
		OriginalCode:  params.OriginalCode,
		ConvertedCode: params.ConvertedCode,
		Rating:        params.Rating,
		Comments:      params.Comments,
	})
}

func (u *feedbackUsecase) ListByUser(ctx context.Context, userID int64) ([]model.Feedback, error) {
	return u.feedbackRepo.ListByUser(ctx, userID)
}
