package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Email           string             `json:"email" bson:"email"`
	Age             float64            `json:"age" bson:"age"`
	EnrolledCourses []Ref              `json:"enrolledCourses" bson:"enrolledCourses"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

// MarshalJSON keeps enrolledCourses an array even when nothing was stored.
func (s Student) MarshalJSON() ([]byte, error) {
	type student Student
	if s.EnrolledCourses == nil {
		s.EnrolledCourses = []Ref{}
	}
	return json.Marshal(student(s))
}

// StudentWithCourses is a student joined with the courses its
// enrolledCourses still resolve to.
type StudentWithCourses struct {
	Student       `bson:",inline"`
	CourseDetails []Course `json:"courseDetails" bson:"courseDetails"`
}

func (s StudentWithCourses) MarshalJSON() ([]byte, error) {
	type joined struct {
		ID              primitive.ObjectID `json:"_id"`
		Name            string             `json:"name"`
		Email           string             `json:"email"`
		Age             float64            `json:"age"`
		EnrolledCourses []Ref              `json:"enrolledCourses"`
		CreatedAt       time.Time          `json:"createdAt"`
		CourseDetails   []Course           `json:"courseDetails"`
	}
	out := joined{
		ID:              s.ID,
		Name:            s.Name,
		Email:           s.Email,
		Age:             s.Age,
		EnrolledCourses: s.EnrolledCourses,
		CreatedAt:       s.CreatedAt,
		CourseDetails:   s.CourseDetails,
	}
	if out.EnrolledCourses == nil {
		out.EnrolledCourses = []Ref{}
	}
	if out.CourseDetails == nil {
		out.CourseDetails = []Course{}
	}
	return json.Marshal(out)
}

// StudentRequest is the body of POST /api/students and PUT /api/students/{id}.
type StudentRequest struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required"`
	Age             *float64 `json:"age" validate:"required"`
	EnrolledCourses []Ref    `json:"enrolledCourses"`
}

func (r StudentRequest) Student() Student {
	s := Student{
		Name:            r.Name,
		Email:           r.Email,
		EnrolledCourses: r.EnrolledCourses,
	}
	if r.Age != nil {
		s.Age = *r.Age
	}
	if s.EnrolledCourses == nil {
		s.EnrolledCourses = []Ref{}
	}
	return s
}
