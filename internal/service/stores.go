package service

import (
	"context"

	"quizhub/internal/models"
)

// QuizStore is the persistence surface the quiz service needs; satisfied by
// repository.QuizRepository.
type QuizStore interface {
	FindAll(ctx context.Context) ([]models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id string) error
}

// ResultStore is the persistence surface for submission results; satisfied
// by repository.ResultRepository.
type ResultStore interface {
	Create(ctx context.Context, result *models.Result) error
	FindByID(ctx context.Context, id string) (*models.Result, error)
	FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error)
	FindByUser(ctx context.Context, userID string) ([]models.Result, error)
	DeleteAllForQuiz(ctx context.Context, quizID string) (int64, error)
}
