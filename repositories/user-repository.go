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

type UserRepository struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func NewUserRepository(collection *mongo.Collection, breaker *gobreaker.CircuitBreaker) *UserRepository {
	return &UserRepository{collection: collection, breaker: breaker}
}

// EnsureIndexes makes usernames unique and allows at most one document with role "admin".
// The second index is what keeps concurrent promotions from producing two admins.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"username": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}},
			Options: options.Index().
				SetName("single_admin").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"role": string(models.RoleAdmin)}),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := guard(r.breaker, func() error {
		cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"password": 0}))
		if err != nil {
			return fmt.Errorf("failed to find users: %w", err)
		}
		defer cursor.Close(ctx)

		if err := cursor.All(ctx, &users); err != nil {
			return fmt.Errorf("failed to decode users: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, models.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := guard(r.breaker, func() error {
		err := r.collection.FindOne(ctx, filter).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to fetch user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = newID()
	}
	return guard(r.breaker, func() error {
		_, err := r.collection.InsertOne(ctx, user)
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrUsernameTaken
		}
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	var count int64
	err := guard(r.breaker, func() error {
		n, err := r.collection.CountDocuments(ctx, bson.M{"role": string(role)})
		if err != nil {
			return fmt.Errorf("failed to count users by role: %w", err)
		}
		count = n
		return nil
	})
	return count, err
}

// UpdateRole sets the role field only. A duplicate key on the single_admin index
// is reported as ErrAdminExists.
func (r *UserRepository) UpdateRole(ctx context.Context, id string, role models.Role) error {
	return guard(r.breaker, func() error {
		result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": string(role)}})
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrAdminExists
		}
		if err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}
		if result.MatchedCount == 0 {
			return models.ErrUserNotFound
		}
		return nil
	})
}
