package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidRef = errors.New("invalid reference")

// Ref is a weak reference to another record: the record's identifier and
// nothing else. The target may have been deleted; resolving a Ref is always
// an explicit lookup that is allowed to come back empty.
type Ref primitive.ObjectID

func NewRef(id primitive.ObjectID) Ref {
	return Ref(id)
}

// ParseRef parses the 24 character hex form of an identifier.
func ParseRef(s string) (Ref, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRef, s)
	}
	return Ref(id), nil
}

func (r Ref) ObjectID() primitive.ObjectID {
	return primitive.ObjectID(r)
}

func (r Ref) Hex() string {
	return primitive.ObjectID(r).Hex()
}

func (r Ref) String() string {
	return r.Hex()
}

// IsZero also makes omitempty work for the bson encoder.
func (r Ref) IsZero() bool {
	return primitive.ObjectID(r).IsZero()
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(r.Hex())
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRef, data)
	}
	ref, err := ParseRef(s)
	if err != nil {
		return err
	}
	*r = ref
	return nil
}

func (r Ref) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.IsZero() {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(primitive.ObjectID(r))
}

func (r *Ref) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*r = Ref{}
		return nil
	case bsontype.ObjectID:
		var id primitive.ObjectID
		if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&id); err != nil {
			return err
		}
		*r = Ref(id)
		return nil
	default:
		return fmt.Errorf("%w: cannot decode bson %s into Ref", ErrInvalidRef, t)
	}
}
