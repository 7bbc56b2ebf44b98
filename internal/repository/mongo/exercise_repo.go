package mongo

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new exercise into the database.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("exercise user ID is required")
	}

	exercise.ID = primitive.NewObjectID()
	exercise.Date = domain.NormalizeDate(exercise.Date)

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// Find returns the exercises matching filter. No sort is applied, so the
// order is whatever the server returns.
func (r *mongoExerciseRepository) Find(ctx context.Context, filter repository.ExerciseFilter) ([]domain.Exercise, error) {
	cursor, err := r.collection.Find(ctx, buildExerciseFilter(filter), buildFindOptions(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []domain.Exercise{}
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// buildExerciseFilter matches on userId and adds a single date range clause
// when either bound is present.
func buildExerciseFilter(f repository.ExerciseFilter) bson.M {
	filter := bson.M{"userId": f.UserID}
	if f.From == nil && f.To == nil {
		return filter
	}

	dateRange := bson.M{}
	if f.From != nil {
		dateRange["$gte"] = *f.From
	}
	if f.To != nil {
		dateRange["$lte"] = *f.To
	}
	filter["date"] = dateRange
	return filter
}

func buildFindOptions(f repository.ExerciseFilter) *options.FindOptions {
	findOptions := options.Find()
	// Negative limits mean "single batch" to the server; never forward them.
	if f.Limit > 0 {
		findOptions.SetLimit(f.Limit)
	}
	return findOptions
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Log queries filter by owner and date range
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("exercise_user_date"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
