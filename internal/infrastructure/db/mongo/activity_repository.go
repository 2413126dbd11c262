package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhive/task-system/internal/core/domain"
)

const activityCollection = "task_activity"

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	TaskID    string    `bson:"task_id"`
	OwnerID   string    `bson:"owner_id"`
	ActorID   string    `bson:"actor_id"`
	Action    string    `bson:"action"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *MongoActivityRepository) Insert(ctx context.Context, entry *domain.TaskActivity) error {
	doc := mongoActivity{
		TaskID:    entry.TaskID,
		OwnerID:   entry.OwnerID,
		ActorID:   entry.ActorID,
		Action:    string(entry.Action),
		Timestamp: entry.Timestamp.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *MongoActivityRepository) FindRecent(ctx context.Context, limit int64) ([]domain.TaskActivity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.TaskActivity
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, domain.TaskActivity{
			TaskID:    ma.TaskID,
			OwnerID:   ma.OwnerID,
			ActorID:   ma.ActorID,
			Action:    domain.ActivityAction(ma.Action),
			Timestamp: ma.Timestamp.UTC(),
		})
	}
	return entries, cur.Err()
}
