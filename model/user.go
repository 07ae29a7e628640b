package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record. Password holds whatever the user service
// decided to persist and is never serialized to JSON.
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username  string             `json:"username,omitempty" bson:"username,omitempty"`
	Password  string             `json:"-" bson:"password,omitempty"`
	Role      string             `json:"role,omitempty" bson:"role,omitempty"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

func (r UserRequest) User() User {
	return User{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
		Email:    r.Email,
	}
}
