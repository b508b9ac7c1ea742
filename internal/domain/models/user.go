package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles supported by the platform.
const (
	RoleFarmer           = "farmer"
	RoleExtensionOfficer = "extension_officer"
	RoleBuyer            = "buyer"
)

// User is a registered account. Crops holds the ids the user selected for
// personalized advisories.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Crops        []string           `bson:"crops" json:"crops"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Phone    string   `json:"phone"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     string   `json:"role"`
	Crops    []string `json:"crops"`
}

// LoginRequest carries credentials for token issuance.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateCropsRequest replaces the user's selected crop list.
type UpdateCropsRequest struct {
	Crops []string `json:"crops" binding:"required"`
}
