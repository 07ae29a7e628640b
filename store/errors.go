package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidID    = errors.New("invalid identifier")
)

func parseID(kind, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: cast to ObjectId failed for value %q at path \"_id\" for model %q", ErrInvalidID, id, kind)
	}
	return oid, nil
}

// classify maps driver errors onto the package's error kinds.
func classify(kind, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s %s: %w", kind, op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %s", ErrDuplicateKey, err.Error())
	default:
		return fmt.Errorf("%s %s: %w", kind, op, err)
	}
}
