package repository

import (
	"context"
	"time"

	"quizhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

// Create assigns the result id and attempt timestamp; a result is a single
// self-contained document, so this one insert is the whole write.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	result.ID = primitive.NewObjectID().Hex()
	result.AttemptedAt = time.Now().UTC()
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (*models.Result, error) {
	var result models.Result
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error) {
	return r.find(ctx, bson.M{"quiz_id": quizID}, nil)
}

// FindByUser returns the user's attempts newest first.
func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "attempted_at", Value: -1}})
	return r.find(ctx, bson.M{"user_id": userID}, opts)
}

func (r *ResultRepository) DeleteAllForQuiz(ctx context.Context, quizID string) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *ResultRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Result, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.Col.Find(ctx, filter, opts)
	} else {
		cur, err = r.Col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.Result
	for cur.Next(ctx) {
		var res models.Result
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}
