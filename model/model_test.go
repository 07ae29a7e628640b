package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidate_StudentMissingFields(t *testing.T) {
	err := Validate("Student", StudentRequest{Email: "a@b.c"})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, []FieldError{
		{Field: "name", Message: "Path `name` is required."},
		{Field: "age", Message: "Path `age` is required."},
	}, ve.Fields)
	require.Equal(t, "Student validation failed: name: Path `name` is required., age: Path `age` is required.", err.Error())
}

func TestValidate_ZeroAgeIsPresent(t *testing.T) {
	err := Validate("Student", StudentRequest{Name: "Ann", Email: "ann@example.com", Age: floatPtr(0)})
	require.NoError(t, err)
}

func TestValidate_Course(t *testing.T) {
	credits := 3.0
	require.NoError(t, Validate("Course", CourseRequest{CourseName: "Go", Instructor: "Rob", Credits: &credits}))

	err := Validate("Course", CourseRequest{})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Fields, 3)
	require.Equal(t, "courseName", ve.Fields[0].Field)
	require.Equal(t, "credits", ve.Fields[2].Field)
}

func TestValidate_NoRequiredFields(t *testing.T) {
	require.NoError(t, Validate("Task", TaskRequest{}))
	require.NoError(t, Validate("User", UserRequest{}))
}

func TestRef_JSON(t *testing.T) {
	id := primitive.NewObjectID()
	ref := NewRef(id)

	data, err := json.Marshal(ref)
	require.NoError(t, err)
	require.Equal(t, `"`+id.Hex()+`"`, string(data))

	var back Ref
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, ref, back)

	data, err = json.Marshal(Ref{})
	require.NoError(t, err)
	require.Equal(t, "null", string(data))
}

func TestRef_InvalidJSON(t *testing.T) {
	var ref Ref
	err := json.Unmarshal([]byte(`"not-an-id"`), &ref)
	require.ErrorIs(t, err, ErrInvalidRef)

	err = json.Unmarshal([]byte(`42`), &ref)
	require.ErrorIs(t, err, ErrInvalidRef)

	_, err = ParseRef("zzz")
	require.ErrorIs(t, err, ErrInvalidRef)
}

func TestRef_BSONStoresObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	s := Student{ID: primitive.NewObjectID(), Name: "Ann", EnrolledCourses: []Ref{NewRef(id)}}

	raw, err := bson.Marshal(s)
	require.NoError(t, err)

	var doc struct {
		EnrolledCourses []primitive.ObjectID `bson:"enrolledCourses"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))
	require.Equal(t, []primitive.ObjectID{id}, doc.EnrolledCourses)

	var back Student
	require.NoError(t, bson.Unmarshal(raw, &back))
	require.Equal(t, s.EnrolledCourses, back.EnrolledCourses)
}

func TestTask_OmitsAbsentRefs(t *testing.T) {
	raw, err := bson.Marshal(Task{Title: "Read"})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.NotContains(t, doc, "assignedCourse")
	assert.NotContains(t, doc, "student")
	assert.NotContains(t, doc, "_id")
}

func TestStudent_JSONEnrolledCoursesNeverNull(t *testing.T) {
	data, err := json.Marshal(Student{Name: "Ann"})
	require.NoError(t, err)
	require.Contains(t, string(data), `"enrolledCourses":[]`)

	data, err = json.Marshal(StudentWithCourses{Student: Student{Name: "Ann"}})
	require.NoError(t, err)
	require.Contains(t, string(data), `"courseDetails":[]`)
}

func TestStudentRequest_Student(t *testing.T) {
	s := StudentRequest{Name: "Ann", Email: "ann@example.com", Age: floatPtr(20)}.Student()
	require.Equal(t, float64(20), s.Age)
	require.NotNil(t, s.EnrolledCourses)
	require.Empty(t, s.EnrolledCourses)
}

func TestTaskRequest_DueDate(t *testing.T) {
	due := "2024-05-01"
	task, err := TaskRequest{Title: "Essay", DueDate: &due}.Task()
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *task.DueDate)

	bad := "next tuesday"
	_, err = TaskRequest{DueDate: &bad}.Task()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "dueDate", ve.Fields[0].Field)
}

func TestUser_PasswordNotSerialized(t *testing.T) {
	data, err := json.Marshal(User{Username: "ann", Password: "secret"})
	require.NoError(t, err)
	require.NotContains(t, string(data), "secret")
	require.NotContains(t, string(data), "password")
}
