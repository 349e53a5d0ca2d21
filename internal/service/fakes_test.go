package service

import (
	"context"
	"fmt"
	"time"

	"quizhub/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeQuizStore struct {
	quizzes   map[string]models.Quiz
	deleteErr error
	nextID    int
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: make(map[string]models.Quiz)}
}

func (f *fakeQuizStore) FindAll(ctx context.Context) ([]models.Quiz, error) {
	var out []models.Quiz
	for _, q := range f.quizzes {
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeQuizStore) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &q, nil
}

func (f *fakeQuizStore) Create(ctx context.Context, quiz *models.Quiz) error {
	f.nextID++
	quiz.ID = fmt.Sprintf("quiz%d", f.nextID)
	quiz.CreatedAt = time.Now()
	quiz.UpdatedAt = quiz.CreatedAt
	f.quizzes[quiz.ID] = *quiz
	return nil
}

func (f *fakeQuizStore) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.quizzes[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.quizzes, id)
	return nil
}

type fakeResultStore struct {
	results    []models.Result
	deleteErr  error
	deletedFor []string
	nextID     int
}

func (f *fakeResultStore) Create(ctx context.Context, result *models.Result) error {
	f.nextID++
	result.ID = fmt.Sprintf("result%d", f.nextID)
	result.AttemptedAt = time.Now()
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeResultStore) FindByID(ctx context.Context, id string) (*models.Result, error) {
	for _, r := range f.results {
		if r.ID == id {
			res := r
			return &res, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeResultStore) FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range f.results {
		if r.QuizID == quizID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultStore) FindByUser(ctx context.Context, userID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultStore) DeleteAllForQuiz(ctx context.Context, quizID string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deletedFor = append(f.deletedFor, quizID)
	var kept []models.Result
	var removed int64
	for _, r := range f.results {
		if r.QuizID == quizID {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.results = kept
	return removed, nil
}
