package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/task-system/internal/core/domain"
)

const tasksCollection = "tasks"

type MongoTaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *MongoTaskRepository {
	return &MongoTaskRepository{coll: db.Collection(tasksCollection)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	DueDate     time.Time          `bson:"due_date"`
	Priority    string             `bson:"priority"`
	Status      string             `bson:"status"`
	UserID      string             `bson:"user_id"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (mt mongoTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		DueDate:     mt.DueDate.UTC(),
		Priority:    domain.TaskPriority(mt.Priority),
		Status:      domain.TaskStatus(mt.Status),
		UserID:      mt.UserID,
		CreatedAt:   unixToTime(mt.CreatedAt),
		UpdatedAt:   unixToTime(mt.UpdatedAt),
	}
}

func fromDomainTask(task *domain.Task) mongoTask {
	return mongoTask{
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate.UTC(),
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt.Unix(),
		UpdatedAt:   task.UpdatedAt.Unix(),
	}
}

func (r *MongoTaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	res, err := r.coll.InsertOne(ctx, fromDomainTask(task))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *task
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoTaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	var mt mongoTask
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *MongoTaskRepository) FindByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MongoTaskRepository) FindAll(ctx context.Context) ([]domain.Task, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoTaskRepository) find(ctx context.Context, filter bson.M) ([]domain.Task, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []domain.Task
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, *mt.toDomain())
	}
	return tasks, cur.Err()
}

func (r *MongoTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	oid, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       task.Title,
		"description": task.Description,
		"due_date":    task.DueDate.UTC(),
		"priority":    string(task.Priority),
		"status":      string(task.Status),
		"updated_at":  task.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *MongoTaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
