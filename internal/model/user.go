package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a stored user account. The password hash never leaves the
// process: it is excluded from JSON and stripped from document reads.
type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	FirstName  string             `json:"firstName" bson:"firstName"`
	LastName   string             `json:"lastName" bson:"lastName"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"-" bson:"password"`
	Phone      float64            `json:"phone" bson:"phone"`
	Birthday   time.Time          `json:"birthday" bson:"birthday"`
	Role       string             `json:"role" bson:"role"`
	UserStatus string             `json:"userStatus" bson:"userStatus"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateUser struct {
	FirstName  string    `json:"firstName" bson:"firstName" validate:"required"`
	LastName   string    `json:"lastName" bson:"lastName" validate:"required"`
	Email      string    `json:"email" bson:"email" validate:"required,email"`
	Password   string    `json:"password" bson:"password" validate:"required,min=8"`
	Phone      *float64  `json:"phone" bson:"phone" validate:"required"`
	Birthday   time.Time `json:"birthday" bson:"birthday" validate:"required"`
	Role       *string   `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,oneof=admin manager operator"`
	UserStatus *string   `json:"userStatus,omitempty" bson:"userStatus,omitempty" validate:"omitempty,oneof=active inactive"`
}

// UpdateUser deliberately omits email and password: neither is editable
// through the general update route.
type UpdateUser struct {
	FirstName  *string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName   *string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Phone      *float64   `json:"phone,omitempty" bson:"phone,omitempty"`
	Birthday   *time.Time `json:"birthday,omitempty" bson:"birthday,omitempty"`
	Role       *string    `json:"role,omitempty" bson:"role,omitempty" validate:"omitempty,oneof=admin manager operator"`
	UserStatus *string    `json:"userStatus,omitempty" bson:"userStatus,omitempty" validate:"omitempty,oneof=active inactive"`
}

type LoginUser struct {
	Email    string `json:"email" bson:"email" validate:"required"`
	Password string `json:"password" bson:"password" validate:"required"`
}
