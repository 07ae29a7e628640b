package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-management-api/model"
)

type Tasks struct {
	coll collection[model.Task]
}

func (t *Tasks) Insert(ctx context.Context, task *model.Task) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	return t.coll.insert(ctx, task)
}

func (t *Tasks) FindAll(ctx context.Context) ([]model.Task, error) {
	return t.coll.findAll(ctx)
}

func (t *Tasks) FindByID(ctx context.Context, id string) (*model.Task, error) {
	return t.coll.findByID(ctx, id)
}

func (t *Tasks) DeleteByID(ctx context.Context, id string) (*model.Task, error) {
	return t.coll.deleteByID(ctx, id)
}
