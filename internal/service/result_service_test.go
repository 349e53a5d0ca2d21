package service

import (
	"context"
	"errors"
	"testing"

	"quizhub/internal/models"
	"quizhub/internal/scoring"
)

var student = models.User{ID: "s1", Username: "alex", Role: models.RoleStudent}

func seedQuiz(t *testing.T, quizzes *fakeQuizStore) *models.Quiz {
	t.Helper()
	quiz := &models.Quiz{
		Title:       "Capitals",
		Description: "Two questions",
		Questions: []models.Question{
			{ID: "q1", Text: "Capital of France?", Options: []models.Option{
				{Text: "Lyon"}, {Text: "Paris", IsCorrect: true},
			}},
			{ID: "q2", Text: "Capital of Japan?", Options: []models.Option{
				{Text: "Tokyo", IsCorrect: true}, {Text: "Kyoto"},
			}},
		},
	}
	if err := NewQuizService(quizzes, &fakeResultStore{}).CreateQuiz(context.Background(), quiz, teacher); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	return quiz
}

func TestSubmitQuizPersistsScoredResult(t *testing.T) {
	quizzes := newFakeQuizStore()
	results := &fakeResultStore{}
	quiz := seedQuiz(t, quizzes)
	svc := NewResultService(quizzes, results)

	result, err := svc.SubmitQuiz(context.Background(), quiz.ID, []scoring.SubmittedAnswer{
		{QuestionID: "q1", SelectedOptions: []int{1}},
		{QuestionID: "q2", SelectedOptions: []int{1}},
	}, student)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.Score != 50.00 {
		t.Errorf("expected score 50.00, got %v", result.Score)
	}
	if result.CorrectAnswers != 1 || result.TotalQuestions != 2 {
		t.Errorf("expected 1/2 correct, got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
	if result.ID == "" || result.AttemptedAt.IsZero() {
		t.Errorf("expected store to assign id and timestamp")
	}
	if result.Username != "alex" {
		t.Errorf("expected submitter username snapshot, got %q", result.Username)
	}
	if len(results.results) != 1 {
		t.Errorf("expected exactly one persisted result, got %d", len(results.results))
	}
}

func TestSubmitQuizUnknownQuiz(t *testing.T) {
	svc := NewResultService(newFakeQuizStore(), &fakeResultStore{})
	_, err := svc.SubmitQuiz(context.Background(), "missing", nil, student)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetResultOwnership(t *testing.T) {
	quizzes := newFakeQuizStore()
	results := &fakeResultStore{}
	quiz := seedQuiz(t, quizzes)
	svc := NewResultService(quizzes, results)

	result, err := svc.SubmitQuiz(context.Background(), quiz.ID, nil, student)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := svc.GetResult(context.Background(), result.ID, student); err != nil {
		t.Errorf("owner should read their result: %v", err)
	}

	other := models.User{ID: "s2", Username: "sam", Role: models.RoleStudent}
	if _, err := svc.GetResult(context.Background(), result.ID, other); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for another user, got %v", err)
	}

	if _, err := svc.GetResult(context.Background(), "missing", student); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
