package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title          string             `json:"title,omitempty" bson:"title,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	DueDate        *time.Time         `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	AssignedCourse *Ref               `json:"assignedCourse,omitempty" bson:"assignedCourse,omitempty"`
	Student        *Ref               `json:"student,omitempty" bson:"student,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

type TaskRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	DueDate        *string `json:"dueDate"`
	AssignedCourse *Ref    `json:"assignedCourse"`
	Student        *Ref    `json:"student"`
}

// dateLayouts are tried in order when parsing dueDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps and plain calendar dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}

// Task converts the request, failing with a *ValidationError when dueDate
// is not a date.
func (r TaskRequest) Task() (Task, error) {
	t := Task{
		Title:          r.Title,
		Description:    r.Description,
		AssignedCourse: r.AssignedCourse,
		Student:        r.Student,
	}
	if r.DueDate != nil && *r.DueDate != "" {
		due, err := ParseDate(*r.DueDate)
		if err != nil {
			return Task{}, &ValidationError{
				Kind: "Task",
				Fields: []FieldError{{
					Field:   "dueDate",
					Message: fmt.Sprintf("Cast to date failed for value %q at path `dueDate`", *r.DueDate),
				}},
			}
		}
		t.DueDate = &due
	}
	if t.AssignedCourse != nil && t.AssignedCourse.IsZero() {
		t.AssignedCourse = nil
	}
	if t.Student != nil && t.Student.IsZero() {
		t.Student = nil
	}
	return t, nil
}
