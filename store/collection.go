package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection holds the operations every record kind shares.
type collection[T any] struct {
	c    *mongo.Collection
	kind string
}

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	_, err := c.c.InsertOne(ctx, doc)
	return classify(c.kind, "insert", err)
}

func (c collection[T]) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, classify(c.kind, "find", err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, classify(c.kind, "decode", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c collection[T]) findAll(ctx context.Context) ([]T, error) {
	return c.find(ctx, bson.D{})
}

func (c collection[T]) findByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(c.kind, id)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := c.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, classify(c.kind, "find "+id, err)
	}
	return &doc, nil
}

func (c collection[T]) deleteByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(c.kind, id)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := c.c.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, classify(c.kind, "delete "+id, err)
	}
	return &doc, nil
}
