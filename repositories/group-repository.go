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

type GroupRepository struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewGroupRepository(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *GroupRepository {
	return &GroupRepository{collection: collection, breaker: breaker}
}

func (r *GroupRepository) FindAll(ctx context.Context) ([]models.Group, error) {
	groups := []models.Group{}
	err := guard(r.breaker, func() error {
		cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return fmt.Errorf("unsuccessful procurement of groups: %w", err)
		}
		defer cursor.Close(ctx)

		if err := cursor.All(ctx, &groups); err != nil {
			return fmt.Errorf("unsuccessful decoding of groups: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id string) (*models.Group, error) {
	if id == "" {
		return nil, models.ErrGroupNotFound
	}

	var group models.Group
	err := guard(r.breaker, func() error {
		err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ErrGroupNotFound
		}
		if err != nil {
			return fmt.Errorf("error fetching group: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Create assigns an id when the group has none and inserts it.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = newID()
	}
	if group.Members == nil {
		group.Members = []models.Member{}
	}
	return guard(r.breaker, func() error {
		if _, err := r.collection.InsertOne(ctx, group); err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}
		return nil
	})
}

func (r *GroupRepository) UpdateStatus(ctx context.Context, id, estatus string) error {
	return guard(r.breaker, func() error {
		result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"estatus": estatus}})
		if err != nil {
			return fmt.Errorf("failed to update group status: %w", err)
		}
		if result.MatchedCount == 0 {
			return models.ErrGroupNotFound
		}
		return nil
	})
}
