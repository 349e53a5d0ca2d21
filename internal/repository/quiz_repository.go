package repository

import (
	"context"
	"time"

	"quizhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindAll(ctx context.Context) ([]models.Quiz, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Create assigns the document id and timestamps before the single insert.
// Ids are stored as ObjectID hex strings so embedded question ids and
// result references share one representation.
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	now := time.Now().UTC()
	quiz.ID = primitive.NewObjectID().Hex()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
