package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	log "github.com/sirupsen/logrus"
)

const plannedWorkoutCollectionName = "planned_workouts"

type mongoPlannedWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoPlannedWorkoutRepository creates a new PlannedWorkout repository.
func NewMongoPlannedWorkoutRepository(db *mongo.Database) repository.PlannedWorkoutRepository {
	return &mongoPlannedWorkoutRepository{
		collection: db.Collection(plannedWorkoutCollectionName),
	}
}

func (r *mongoPlannedWorkoutRepository) Put(ctx context.Context, planned *domain.PlannedWorkout) error {
	if planned.ID == "" || planned.UserID == "" {
		return errors.New("planned workout requires id and user_id")
	}
	filter := bson.M{"_id": planned.ID}
	_, err := r.collection.ReplaceOne(ctx, filter, planned, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoPlannedWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.PlannedWorkout, error) {
	var planned domain.PlannedWorkout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&planned)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &planned, nil
}

// ListByUser returns the user's planned workouts ordered by date and time.
func (r *mongoPlannedWorkoutRepository) ListByUser(ctx context.Context, userID string) ([]domain.PlannedWorkout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "planned_date", Value: 1}, {Key: "planned_time", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	planned := []domain.PlannedWorkout{}
	if err = cursor.All(ctx, &planned); err != nil {
		return nil, err
	}
	return planned, nil
}

func (r *mongoPlannedWorkoutRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePlannedWorkoutIndexes creates necessary indexes. Call during startup.
func EnsurePlannedWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "planned_date", Value: 1}},
			Options: options.Index(),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", collection.Name(), err)
	}
}
