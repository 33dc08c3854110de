package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/charly15/back-task/models"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskRepository stores every group's tasks in one collection keyed by groupId.
type TaskRepository struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewTaskRepository(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *TaskRepository {
	return &TaskRepository{collection: collection, breaker: breaker}
}

func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "groupId", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("group_tasks"),
	})
	if err != nil {
		return fmt.Errorf("failed to create task indexes: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByGroup(ctx context.Context, groupID string) ([]models.Task, error) {
	tasks := []models.Task{}
	err := guard(r.breaker, func() error {
		opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
		cursor, err := r.collection.Find(ctx, bson.M{"groupId": groupID}, opts)
		if err != nil {
			return fmt.Errorf("failed to retrieve tasks: %w", err)
		}
		defer cursor.Close(ctx)

		for cursor.Next(ctx) {
			var task models.Task
			if err := cursor.Decode(&task); err != nil {
				return fmt.Errorf("failed to decode task: %w", err)
			}
			tasks = append(tasks, task)
		}
		if err := cursor.Err(); err != nil {
			return fmt.Errorf("cursor error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, groupID, taskID string) (*models.Task, error) {
	var task models.Task
	err := guard(r.breaker, func() error {
		err := r.collection.FindOne(ctx, bson.M{"_id": taskID, "groupId": groupID}).Decode(&task)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ErrTaskNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to fetch task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = newID()
	}
	if task.AssignedTo == nil {
		task.AssignedTo = []string{}
	}
	return guard(r.breaker, func() error {
		if _, err := r.collection.InsertOne(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return nil
	})
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, groupID, taskID, status string) error {
	return guard(r.breaker, func() error {
		filter := bson.M{"_id": taskID, "groupId": groupID}
		result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}})
		if err != nil {
			return fmt.Errorf("failed to update task status: %w", err)
		}
		if result.MatchedCount == 0 {
			return models.ErrTaskNotFound
		}
		return nil
	})
}
