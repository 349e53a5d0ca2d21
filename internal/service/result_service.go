package service

import (
	"context"
	"errors"
	"fmt"

	"quizhub/internal/models"
	"quizhub/internal/scoring"

	"go.mongodb.org/mongo-driver/mongo"
)

type ResultService struct {
	Quizzes QuizStore
	Results ResultStore
}

func NewResultService(quizzes QuizStore, results ResultStore) *ResultService {
	return &ResultService{Quizzes: quizzes, Results: results}
}

// SubmitQuiz scores a submission against the quiz snapshot fetched for this
// call and persists exactly one result document. Scoring itself is pure;
// concurrent submissions never interact.
func (s *ResultService) SubmitQuiz(ctx context.Context, quizID string, answers []scoring.SubmittedAnswer, submitter models.User) (*models.Result, error) {
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: quiz %s", ErrNotFound, quizID)
		}
		return nil, err
	}

	scored := scoring.Score(quiz, answers)

	result := &models.Result{
		UserID:         submitter.ID,
		Username:       submitter.Username,
		QuizID:         quizID,
		Score:          scored.Score,
		TotalQuestions: scored.TotalQuestions,
		CorrectAnswers: scored.CorrectAnswers,
		Answers:        scored.Answers,
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ResultService) ResultsForUser(ctx context.Context, userID string) ([]models.Result, error) {
	return s.Results.FindByUser(ctx, userID)
}

func (s *ResultService) GetResult(ctx context.Context, id string, requester models.User) (*models.Result, error) {
	result, err := s.Results.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: result %s", ErrNotFound, id)
		}
		return nil, err
	}
	if result.UserID != requester.ID {
		return nil, fmt.Errorf("%w: result %s belongs to another user", ErrForbidden, id)
	}
	return result, nil
}
