package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"student-management-api/model"
)

type Courses struct {
	coll collection[model.Course]
}

func (c *Courses) Insert(ctx context.Context, course *model.Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	return c.coll.insert(ctx, course)
}

func (c *Courses) FindAll(ctx context.Context) ([]model.Course, error) {
	return c.coll.findAll(ctx)
}

func (c *Courses) FindByID(ctx context.Context, id string) (*model.Course, error) {
	return c.coll.findByID(ctx, id)
}

func (c *Courses) DeleteByID(ctx context.Context, id string) (*model.Course, error) {
	return c.coll.deleteByID(ctx, id)
}

// Search matches courseName against the text index, best match first.
func (c *Courses) Search(ctx context.Context, text string) ([]model.Course, error) {
	filter := bson.M{"$text": bson.M{"$search": text}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	return c.coll.find(ctx, filter, opts)
}
