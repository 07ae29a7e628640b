package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Course struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CourseName string             `json:"courseName" bson:"courseName"`
	Instructor string             `json:"instructor" bson:"instructor"`
	Credits    float64            `json:"credits" bson:"credits"`
}

type CourseRequest struct {
	CourseName string   `json:"courseName" validate:"required"`
	Instructor string   `json:"instructor" validate:"required"`
	Credits    *float64 `json:"credits" validate:"required"`
}

func (r CourseRequest) Course() Course {
	c := Course{CourseName: r.CourseName, Instructor: r.Instructor}
	if r.Credits != nil {
		c.Credits = *r.Credits
	}
	return c
}
