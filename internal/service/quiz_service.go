package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"quizhub/internal/analytics"
	"quizhub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizService struct {
	Quizzes QuizStore
	Results ResultStore
}

func NewQuizService(quizzes QuizStore, results ResultStore) *QuizService {
	return &QuizService{Quizzes: quizzes, Results: results}
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	return s.Quizzes.FindAll(ctx)
}

func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.Quizzes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: quiz %s", ErrNotFound, id)
		}
		return nil, err
	}
	return quiz, nil
}

// CreateQuiz validates the definition and stores it as one document. A quiz
// either lands whole or not at all; there is no partial write to clean up.
func (s *QuizService) CreateQuiz(ctx context.Context, quiz *models.Quiz, creator models.User) error {
	quiz.CreatedBy = creator.ID
	if err := quiz.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == "" {
			quiz.Questions[i].ID = primitive.NewObjectID().Hex()
		}
	}
	return s.Quizzes.Create(ctx, quiz)
}

// DeleteQuiz removes a quiz owned by the requester, then sweeps its
// results. The sweep is deliberately best-effort: a failure leaves orphaned
// results, which is tolerated but never silent.
func (s *QuizService) DeleteQuiz(ctx context.Context, id string, requester models.User) error {
	quiz, err := s.GetQuiz(ctx, id)
	if err != nil {
		return err
	}
	if quiz.CreatedBy != requester.ID {
		return fmt.Errorf("%w: user %s does not own quiz %s", ErrForbidden, requester.ID, id)
	}
	if err := s.Quizzes.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: quiz %s", ErrNotFound, id)
		}
		return err
	}
	if _, err := s.Results.DeleteAllForQuiz(ctx, id); err != nil {
		log.Printf("quiz %s deleted but result cleanup failed: %v", id, err)
	}
	return nil
}

// QuizAnalytics recomputes the aggregate from the full result set on every
// call, so it always reflects the latest persisted results. A quiz nobody
// has attempted, or one already deleted, reports the zero state.
func (s *QuizService) QuizAnalytics(ctx context.Context, quizID string) (analytics.QuizAnalytics, error) {
	results, err := s.Results.FindByQuiz(ctx, quizID)
	if err != nil {
		return analytics.QuizAnalytics{}, err
	}
	return analytics.Aggregate(results), nil
}
