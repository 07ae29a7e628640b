package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-management-api/model"
)

type Users struct {
	coll collection[model.User]
}

// Insert stores the user as given; hashing the password is the caller's
// decision. A reused username or email fails with ErrDuplicateKey.
func (u *Users) Insert(ctx context.Context, user *model.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	return u.coll.insert(ctx, user)
}

func (u *Users) FindAll(ctx context.Context) ([]model.User, error) {
	return u.coll.findAll(ctx)
}

func (u *Users) FindByID(ctx context.Context, id string) (*model.User, error) {
	return u.coll.findByID(ctx, id)
}

func (u *Users) DeleteByID(ctx context.Context, id string) (*model.User, error) {
	return u.coll.deleteByID(ctx, id)
}
