package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered account in the system
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"` // Not serialized
}

// UserSummary is what login returns to the caller: identity fields only
type UserSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
