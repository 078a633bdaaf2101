package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserName       string    `json:"userName" gorm:"uniqueIndex"` // Unique across all users
	Email          string    `json:"email" gorm:"uniqueIndex"`    // Unique across all users
	HashedPassword string    `json:"-"`                           // Never serialized
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Bio            string    `json:"bio"`
	ProfilePicPath string    `json:"profilePicPath"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserSummary is the projection used in follower/following listings.
type UserSummary struct {
	ID       uint   `json:"id"`
	UserName string `json:"userName"`
}

type RegisterRequest struct {
	UserName       string `json:"userName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Bio            string `json:"bio"`
	ProfilePicPath string `json:"profilePicPath"`
	Age            int    `json:"age" validate:"omitempty,min=0,max=150"`
	Gender         string `json:"gender"`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is a partial patch: zero-valued fields are left untouched.
type UpdateUserRequest struct {
	UserName       string `json:"userName,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicPath string `json:"profilePicPath,omitempty"`
	Age            int    `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	Gender         string `json:"gender,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
