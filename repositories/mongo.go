package repositories

import (
	"context"
	"fmt"

	"github.com/charly15/back-task/config"
	"github.com/charly15/back-task/logging"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore owns the client shared by every collection repository.
type MongoStore struct {
	client  *mongo.Client
	db      *mongo.Database
	breaker *gobreaker.CircuitBreaker
	cfg     *config.Config
}

// NewMongoStore connects and pings the server before returning.
func NewMongoStore(ctx context.Context, cfg *config.Config) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetTimeout(cfg.StoreTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB database %s", cfg.MongoDBName)

	return &MongoStore{
		client:  client,
		db:      client.Database(cfg.MongoDBName),
		breaker: NewStoreBreaker("mongo-store", uint32(cfg.BreakerMaxFailures), cfg.BreakerTimeout),
		cfg:     cfg,
	}, nil
}

func (s *MongoStore) Users() *UserRepository {
	return NewUserRepository(s.db.Collection(s.cfg.UsersCollectionName), s.breaker)
}

func (s *MongoStore) Groups() *GroupRepository {
	return NewGroupRepository(s.db.Collection(s.cfg.GroupsCollectionName), s.breaker)
}

func (s *MongoStore) Tasks() *TaskRepository {
	return NewTaskRepository(s.db.Collection(s.cfg.TasksCollectionName), s.breaker)
}

// EnsureIndexes creates the indexes the repositories rely on for uniqueness and lookups.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	if err := s.Users().EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := s.Tasks().EnsureIndexes(ctx); err != nil {
		return err
	}
	logging.Logger.Info("Event ID: DB_INDEXES_READY, Description: MongoDB indexes verified")
	return nil
}

// Ping checks the store through the breaker so health checks see an open circuit too.
func (s *MongoStore) Ping(ctx context.Context) error {
	return guard(s.breaker, func() error {
		return s.client.Ping(ctx, readpref.Primary())
	})
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
