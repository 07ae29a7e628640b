package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"student-management-api/model"
)

type Students struct {
	coll collection[model.Student]
}

// Insert stores a new student and fills in its generated id. A reused email
// fails with ErrDuplicateKey.
func (s *Students) Insert(ctx context.Context, student *model.Student) error {
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	if student.EnrolledCourses == nil {
		student.EnrolledCourses = []model.Ref{}
	}
	return s.coll.insert(ctx, student)
}

func (s *Students) FindAll(ctx context.Context) ([]model.Student, error) {
	return s.coll.findAll(ctx)
}

func (s *Students) FindByID(ctx context.Context, id string) (*model.Student, error) {
	return s.coll.findByID(ctx, id)
}

// UpdateByID sets name, email and age, and enrolledCourses when it is
// non-nil. It returns the document as it is after the update.
func (s *Students) UpdateByID(ctx context.Context, id string, student model.Student) (*model.Student, error) {
	oid, err := parseID(s.coll.kind, id)
	if err != nil {
		return nil, err
	}
	set := bson.M{
		"name":  student.Name,
		"email": student.Email,
		"age":   student.Age,
	}
	if student.EnrolledCourses != nil {
		set["enrolledCourses"] = student.EnrolledCourses
	}
	update := bson.M{"$set": set}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Student
	err = s.coll.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		return nil, classify(s.coll.kind, "update "+id, err)
	}
	return &updated, nil
}

func (s *Students) DeleteByID(ctx context.Context, id string) (*model.Student, error) {
	return s.coll.deleteByID(ctx, id)
}

// ListWithCourses joins every student with the courses its enrolledCourses
// resolve to. Ids without a matching course drop out of courseDetails.
func (s *Students) ListWithCourses(ctx context.Context) ([]model.StudentWithCourses, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: courseCollection},
			{Key: "localField", Value: "enrolledCourses"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "courseDetails"},
		}}},
	}

	cursor, err := s.coll.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, classify(s.coll.kind, "aggregate", err)
	}
	defer cursor.Close(ctx)

	out := []model.StudentWithCourses{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, classify(s.coll.kind, "decode", err)
	}
	if out == nil {
		out = []model.StudentWithCourses{}
	}
	return out, nil
}
