package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"student-management-api/config"
	"student-management-api/model"
)

const (
	studentCollection = "students"
	courseCollection  = "courses"
	taskCollection    = "tasks"
	userCollection    = "users"
)

// Store owns the MongoDB client for the lifetime of the process.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger

	Students *Students
	Courses  *Courses
	Tasks    *Tasks
	Users    *Users
}

// Connect opens the client, pings the primary and selects the database.
func Connect(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Store, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	logger.Info("mongodb connected", zap.String("database", cfg.Database))
	return New(client, cfg.Database, logger), nil
}

// New wraps an already connected client.
func New(client *mongo.Client, database string, logger *zap.Logger) *Store {
	db := client.Database(database)
	return &Store{
		client:   client,
		db:       db,
		logger:   logger,
		Students: &Students{coll: collection[model.Student]{c: db.Collection(studentCollection), kind: "Student"}},
		Courses:  &Courses{coll: collection[model.Course]{c: db.Collection(courseCollection), kind: "Course"}},
		Tasks:    &Tasks{coll: collection[model.Task]{c: db.Collection(taskCollection), kind: "Task"}},
		Users:    &Users{coll: collection[model.User]{c: db.Collection(userCollection), kind: "User"}},
	}
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting mongodb: %w", err)
	}
	s.logger.Info("mongodb disconnected")
	return nil
}

// EnsureIndexes creates the unique and text indexes the record kinds rely on.
// Creating an index that already exists is a no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		studentCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		courseCollection: {
			{Keys: bson.D{{Key: "courseName", Value: "text"}}},
		},
		userCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, models := range indexes {
		created, err := s.db.Collection(name).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("creating indexes on %s: %w", name, err)
		}
		s.logger.Info("indexes ensured", zap.String("collection", name), zap.Strings("indexes", created))
	}
	return nil
}

// Drop removes the whole database.
func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}
